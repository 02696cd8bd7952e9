package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"clipper/config"
	"clipper/models"
	"clipper/services"
	"clipper/utils"

	"github.com/gin-gonic/gin"
)

var pagination = config.PaginationConfig{DefaultLimit: 20, MaxLimit: 100}

func SetPagination(cfg config.PaginationConfig) {
	pagination = cfg
}

type createJobForm struct {
	SourceType         string `form:"source_type"`
	YoutubeURL         string `form:"youtube_url"`
	DurationSeconds    int    `form:"duration_seconds" binding:"required,min=5,max=180"`
	SubtitleMode       string `form:"subtitle_mode"`
	CustomSubtitleText string `form:"custom_subtitle_text"`
	Language           string `form:"language"`
	StyleTemplate      string `form:"style_template"`
	SubtitlePosition   string `form:"subtitle_position"`
	SubtitleOffset     int    `form:"subtitle_offset"`
	Effects            string `form:"effects"`
	AspectRatio        string `form:"aspect_ratio"`
	Resolution         string `form:"resolution"`
	BurnSubtitles      bool   `form:"burn_subtitles"`
}

// CreateJob accepts the multipart submission, validates the option enums at
// the boundary, and hands the rest to the intake pipeline.
func CreateJob(c *gin.Context) {
	var form createJobForm
	if err := c.ShouldBind(&form); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid form: "+err.Error())
		return
	}

	if form.SourceType == "" {
		form.SourceType = models.SourceUpload
	}
	if form.SubtitleMode == "" {
		form.SubtitleMode = models.SubtitleNone
	}
	if form.AspectRatio == "" {
		form.AspectRatio = models.DefaultAspectRatio
	}
	if form.Resolution == "" {
		form.Resolution = models.DefaultResolution
	}

	if !models.IsValidSubtitleMode(form.SubtitleMode) {
		utils.Error(c, http.StatusBadRequest, "Invalid subtitle_mode")
		return
	}
	if !models.IsValidSourceType(form.SourceType) {
		utils.Error(c, http.StatusBadRequest, "Invalid source_type")
		return
	}
	if !models.IsValidAspectRatio(form.AspectRatio) {
		utils.Error(c, http.StatusBadRequest, "Invalid aspect_ratio")
		return
	}
	if !models.IsValidResolution(form.Resolution) {
		utils.Error(c, http.StatusBadRequest, "Invalid resolution")
		return
	}

	in := services.CreateJobInput{
		SourceType:         form.SourceType,
		YoutubeURL:         strings.TrimSpace(form.YoutubeURL),
		DurationSeconds:    form.DurationSeconds,
		SubtitleMode:       form.SubtitleMode,
		CustomSubtitleText: form.CustomSubtitleText,
		Language:           form.Language,
		StyleTemplate:      form.StyleTemplate,
		SubtitlePosition:   form.SubtitlePosition,
		SubtitleOffset:     form.SubtitleOffset,
		Effects:            splitEffects(form.Effects),
		AspectRatio:        form.AspectRatio,
		Resolution:         form.Resolution,
		BurnSubtitles:      form.BurnSubtitles,
	}

	switch form.SourceType {
	case models.SourceUpload:
		file, err := c.FormFile("file")
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "No file uploaded")
			return
		}
		in.File = file
	case models.SourceYoutube:
		if in.YoutubeURL == "" {
			utils.Error(c, http.StatusBadRequest, "Missing youtube_url")
			return
		}
	}

	resp, err := getServices().Job.CreateJob(c.Request.Context(), in)
	if respondServiceError(c, err) {
		return
	}
	c.JSON(http.StatusOK, resp)
}

func splitEffects(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var effects []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			effects = append(effects, part)
		}
	}
	return effects
}

func DownloadOutput(c *gin.Context) {
	jobID := c.Param("job_id")
	path, err := getServices().Job.ResolveOutput(jobID)
	if respondServiceError(c, err) {
		return
	}
	c.Header("Content-Type", "video/mp4")
	c.FileAttachment(path, "clip_"+jobID+".mp4")
}

func DownloadSubtitles(c *gin.Context) {
	jobID := c.Param("job_id")
	path, err := getServices().Job.ResolveSubtitles(jobID)
	if respondServiceError(c, err) {
		return
	}
	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.FileAttachment(path, "subs_"+jobID+".srt")
}

func GetThumbnail(c *gin.Context) {
	jobID := c.Param("job_id")
	path, err := getServices().Job.ResolveThumbnail(jobID)
	if respondServiceError(c, err) {
		return
	}
	c.Header("Content-Type", "image/jpeg")
	c.FileAttachment(path, "thumb_"+jobID+".jpg")
}

func ListJobs(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(pagination.DefaultLimit)))
	if err != nil || limit < 1 {
		limit = pagination.DefaultLimit
	}
	if limit > pagination.MaxLimit {
		limit = pagination.MaxLimit
	}

	records, err := getServices().Job.ListJobs(c.Request.Context(), limit)
	if respondServiceError(c, err) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": records})
}
