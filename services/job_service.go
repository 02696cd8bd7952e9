package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"clipper/config"
	"clipper/models"
	"clipper/repositories"

	"github.com/google/uuid"
)

// placeholderPayload stands in for encoded video bytes. The output artifact
// is a metadata line describing the requested transform followed by this
// payload; no real transcoding happens anywhere in the demo.
const placeholderPayload = "FAKE_MP4_DATA"

type CreateJobInput struct {
	SourceType         string
	File               *multipart.FileHeader
	YoutubeURL         string
	DurationSeconds    int
	SubtitleMode       string
	CustomSubtitleText string
	Language           string
	StyleTemplate      string
	SubtitlePosition   string
	SubtitleOffset     int
	Effects            []string
	AspectRatio        string
	Resolution         string
	BurnSubtitles      bool
}

type JobResponse struct {
	ID          string  `json:"id"`
	Status      string  `json:"status"`
	ViralScore  float64 `json:"viral_score"`
	DownloadURL string  `json:"download_url"`
	SubtitleURL *string `json:"subtitle_url"`
}

type JobService interface {
	CreateJob(ctx context.Context, in CreateJobInput) (JobResponse, error)
	ResolveOutput(jobID string) (string, error)
	ResolveSubtitles(jobID string) (string, error)
	ResolveThumbnail(jobID string) (string, error)
	ListJobs(ctx context.Context, limit int) ([]models.JobRecord, error)
	PingStore(ctx context.Context) error
}

type jobService struct {
	jobs  repositories.JobRepository
	cache repositories.JobCache

	uploadDir    string
	outputDir    string
	subtitleDir  string
	thumbnailDir string
}

// NewJobService wires the intake pipeline. jobs may be nil when the
// persistence collaborator is not configured; intake then runs file-only
// and listing reports the store as unavailable.
func NewJobService(jobs repositories.JobRepository, cache repositories.JobCache, storage config.StorageConfig) JobService {
	return &jobService{
		jobs:         jobs,
		cache:        cache,
		uploadDir:    filepath.Join(storage.BasePath, storage.UploadDir),
		outputDir:    filepath.Join(storage.BasePath, storage.OutputDir),
		subtitleDir:  filepath.Join(storage.BasePath, storage.SubtitleDir),
		thumbnailDir: filepath.Join(storage.BasePath, storage.ThumbnailDir),
	}
}

func (s *jobService) CreateJob(ctx context.Context, in CreateJobInput) (JobResponse, error) {
	jobID := uuid.New().String()
	position := models.NormalizePosition(in.SubtitlePosition)

	sourceName, storedPath, err := s.acquireSource(jobID, in)
	if err != nil {
		return JobResponse{}, err
	}

	outputPath := filepath.Join(s.outputDir, jobID+".mp4")
	if err := s.writeOutput(outputPath, position, in); err != nil {
		return JobResponse{}, err
	}

	subtitlePath := ""
	if in.SubtitleMode != models.SubtitleNone {
		subtitlePath = filepath.Join(s.subtitleDir, jobID+".srt")
		if err := s.writeSubtitles(subtitlePath, position, in); err != nil {
			return JobResponse{}, err
		}
	}

	thumbnailPath := filepath.Join(s.thumbnailDir, jobID+".jpg")
	if err := GenerateThumbnail(thumbnailPath, jobID, in.AspectRatio); err != nil {
		return JobResponse{}, newAppError(http.StatusInternalServerError, "failed to write thumbnail", err)
	}

	score := ComputeViralScore(sourceName, in.DurationSeconds)

	job := models.Job{
		JobID:              jobID,
		SourceType:         in.SourceType,
		Filename:           sourceName,
		YoutubeURL:         in.YoutubeURL,
		StoredPath:         storedPath,
		OutputPath:         outputPath,
		SubtitlePath:       subtitlePath,
		ThumbnailPath:      thumbnailPath,
		DurationSeconds:    in.DurationSeconds,
		SubtitleMode:       in.SubtitleMode,
		CustomSubtitleText: in.CustomSubtitleText,
		Language:           in.Language,
		StyleTemplate:      in.StyleTemplate,
		SubtitlePosition:   position,
		SubtitleOffset:     in.SubtitleOffset,
		Effects:            in.Effects,
		AspectRatio:        in.AspectRatio,
		Resolution:         in.Resolution,
		BurnSubtitles:      in.BurnSubtitles,
		Status:             models.StatusDone,
		ViralScore:         &score,
		DownloadURL:        "/api/download/" + jobID,
		CreatedAt:          time.Now().UTC(),
	}
	if subtitlePath != "" {
		job.SubtitleURL = "/api/subtitles/" + jobID
	}

	if s.jobs != nil {
		if err := s.jobs.Insert(ctx, &job); err != nil {
			return JobResponse{}, newAppError(http.StatusInternalServerError, "failed to persist job", err)
		}
	}

	resp := JobResponse{
		ID:          jobID,
		Status:      job.Status,
		ViralScore:  score,
		DownloadURL: job.DownloadURL,
	}
	if job.SubtitleURL != "" {
		resp.SubtitleURL = &job.SubtitleURL
	}
	return resp, nil
}

func (s *jobService) acquireSource(jobID string, in CreateJobInput) (sourceName, storedPath string, err error) {
	switch in.SourceType {
	case models.SourceUpload:
		storedPath = filepath.Join(s.uploadDir, jobID+"_"+sanitizeFilename(in.File.Filename))
		if err := saveUpload(in.File, storedPath); err != nil {
			return "", "", newAppError(http.StatusInternalServerError, "failed to store upload", err)
		}
		return in.File.Filename, storedPath, nil

	case models.SourceYoutube:
		// Stand-in for a real fetch: record the reference so the stored
		// source is traceable.
		storedPath = filepath.Join(s.uploadDir, jobID+"_youtube.txt")
		if err := os.WriteFile(storedPath, []byte(in.YoutubeURL+"\n"), 0o644); err != nil {
			return "", "", newAppError(http.StatusInternalServerError, "failed to store source reference", err)
		}
		return in.YoutubeURL, storedPath, nil

	default:
		return "", "", newAppError(http.StatusBadRequest, "invalid source_type", nil)
	}
}

func saveUpload(header *multipart.FileHeader, dstPath string) error {
	src, err := header.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

func (s *jobService) writeOutput(path, position string, in CreateJobInput) error {
	meta := fmt.Sprintf("ratio=%s res=%s effects=%s burn=%t pos=%s offset=%d template=%s\n",
		in.AspectRatio, in.Resolution, strings.Join(in.Effects, ","),
		in.BurnSubtitles, position, in.SubtitleOffset, in.StyleTemplate)

	if err := os.WriteFile(path, []byte(meta+placeholderPayload), 0o644); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to write output", err)
	}
	return nil
}

func (s *jobService) writeSubtitles(path, position string, in CreateJobInput) error {
	text := in.CustomSubtitleText
	if text == "" {
		lang := in.Language
		if lang == "" {
			lang = "auto"
		}
		text = fmt.Sprintf("Auto-generated subtitles [%s]", lang)
	}

	var b strings.Builder
	b.WriteString("1\n00:00:00,000 --> 00:00:02,000\n")
	b.WriteString(text)
	b.WriteString("\n")
	fmt.Fprintf(&b, "; template=%s position=%s offset=%d\n", in.StyleTemplate, position, in.SubtitleOffset)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return newAppError(http.StatusInternalServerError, "failed to write subtitles", err)
	}
	return nil
}

func (s *jobService) ResolveOutput(jobID string) (string, error) {
	path := resolveArtifact(s.outputDir, jobID+".mp4", jobID)
	if path == "" {
		return "", newAppError(http.StatusNotFound, "File not found", nil)
	}
	return path, nil
}

func (s *jobService) ResolveSubtitles(jobID string) (string, error) {
	path := resolveArtifact(s.subtitleDir, jobID+".srt", jobID)
	if path == "" {
		return "", newAppError(http.StatusNotFound, "Subtitle not found", nil)
	}
	return path, nil
}

func (s *jobService) ResolveThumbnail(jobID string) (string, error) {
	path := resolveArtifact(s.thumbnailDir, jobID+".jpg", jobID)
	if path == "" {
		return "", newAppError(http.StatusNotFound, "Thumbnail not found", nil)
	}
	return path, nil
}

func (s *jobService) ListJobs(ctx context.Context, limit int) ([]models.JobRecord, error) {
	if s.cache != nil {
		if records, ok := s.cache.GetList(ctx, limit); ok {
			return records, nil
		}
	}

	if s.jobs == nil {
		return nil, newAppError(http.StatusInternalServerError, "persistence unavailable", nil)
	}

	jobs, err := s.jobs.List(ctx, limit)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, err.Error(), err)
	}

	records := make([]models.JobRecord, 0, len(jobs))
	for _, j := range jobs {
		records = append(records, models.JobRecord{ID: j.ID.Hex(), Job: j})
	}

	if s.cache != nil {
		s.cache.SetList(ctx, limit, records)
	}
	return records, nil
}

// ErrStoreNotConfigured distinguishes "no collaborator was ever configured"
// from a configured collaborator failing to answer.
var ErrStoreNotConfigured = errors.New("store not configured")

func (s *jobService) PingStore(ctx context.Context) error {
	if s.jobs == nil {
		return ErrStoreNotConfigured
	}
	return s.jobs.Ping(ctx)
}
