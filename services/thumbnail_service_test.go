package services

import (
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestGenerateThumbnailSizedToAspectRatio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job1.jpg")
	if err := GenerateThumbnail(path, "job1", "16:9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("thumbnail not decodable: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 320 || bounds.Dy() != 180 {
		t.Fatalf("expected 320x180, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestGenerateThumbnailUnknownRatioFallsBackToPortrait(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job2.jpg")
	if err := GenerateThumbnail(path, "job2", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("thumbnail not decodable: %v", err)
	}
	if img.Bounds().Dx() != 180 || img.Bounds().Dy() != 320 {
		t.Fatalf("expected portrait fallback, got %v", img.Bounds())
	}
}

func TestThumbnailColorStablePerJob(t *testing.T) {
	if thumbnailColor("job1") != thumbnailColor("job1") {
		t.Fatalf("expected deterministic color")
	}
	if thumbnailColor("job1") == thumbnailColor("job2") {
		t.Fatalf("expected different jobs to get different colors")
	}
}
