package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusDone       = "done"
	StatusError      = "error"
)

const (
	SourceUpload  = "upload"
	SourceYoutube = "youtube"
)

const (
	SubtitleNone   = "none"
	SubtitleAuto   = "auto"
	SubtitleCustom = "custom"
)

const (
	PositionTop    = "top"
	PositionMiddle = "middle"
	PositionBottom = "bottom"
)

const (
	DefaultAspectRatio = "9:16"
	DefaultResolution  = "1080p"
)

const (
	MinDurationSeconds = 5
	MaxDurationSeconds = 180
)

// Job is one document in the "job" collection: a single clip request, its
// options, and the artifacts the simulated pipeline produced for it.
type Job struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	JobID              string             `bson:"job_id" json:"job_id"`
	SourceType         string             `bson:"source_type" json:"source_type"`
	Filename           string             `bson:"filename" json:"filename"`
	YoutubeURL         string             `bson:"youtube_url,omitempty" json:"youtube_url,omitempty"`
	StoredPath         string             `bson:"stored_path" json:"stored_path"`
	OutputPath         string             `bson:"output_path,omitempty" json:"output_path,omitempty"`
	SubtitlePath       string             `bson:"subtitle_path,omitempty" json:"subtitle_path,omitempty"`
	ThumbnailPath      string             `bson:"thumbnail_path,omitempty" json:"thumbnail_path,omitempty"`
	DurationSeconds    int                `bson:"duration_seconds" json:"duration_seconds"`
	SubtitleMode       string             `bson:"subtitle_mode" json:"subtitle_mode"`
	CustomSubtitleText string             `bson:"custom_subtitle_text,omitempty" json:"custom_subtitle_text,omitempty"`
	Language           string             `bson:"language,omitempty" json:"language,omitempty"`
	StyleTemplate      string             `bson:"style_template,omitempty" json:"style_template,omitempty"`
	SubtitlePosition   string             `bson:"subtitle_position" json:"subtitle_position"`
	SubtitleOffset     int                `bson:"subtitle_offset" json:"subtitle_offset"`
	Effects            []string           `bson:"effects,omitempty" json:"effects,omitempty"`
	AspectRatio        string             `bson:"aspect_ratio" json:"aspect_ratio"`
	Resolution         string             `bson:"resolution" json:"resolution"`
	BurnSubtitles      bool               `bson:"burn_subtitles" json:"burn_subtitles"`
	Status             string             `bson:"status" json:"status"`
	ErrorMessage       string             `bson:"error_message,omitempty" json:"error_message,omitempty"`
	ViralScore         *float64           `bson:"viral_score,omitempty" json:"viral_score,omitempty"`
	DownloadURL        string             `bson:"download_url,omitempty" json:"download_url,omitempty"`
	SubtitleURL        string             `bson:"subtitle_url,omitempty" json:"subtitle_url,omitempty"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
}

// JobRecord is the listing view of a Job: the store's internal identifier
// normalized to a plain string id, everything else promoted unchanged.
type JobRecord struct {
	ID string `json:"id"`
	Job
}

var aspectRatios = map[string]bool{
	"9:16": true, "16:9": true, "1:1": true, "4:5": true,
}

var resolutions = map[string]bool{
	"720p": true, "1080p": true,
}

func IsValidSourceType(v string) bool {
	return v == SourceUpload || v == SourceYoutube
}

func IsValidSubtitleMode(v string) bool {
	return v == SubtitleNone || v == SubtitleAuto || v == SubtitleCustom
}

func IsValidAspectRatio(v string) bool {
	return aspectRatios[v]
}

func IsValidResolution(v string) bool {
	return resolutions[v]
}

// NormalizePosition maps anything outside the three allowed values to
// bottom. Position is the one field with a documented default-on-invalid
// policy; every other enum rejects unknown values at the boundary.
func NormalizePosition(v string) string {
	switch v {
	case PositionTop, PositionMiddle, PositionBottom:
		return v
	default:
		return PositionBottom
	}
}
