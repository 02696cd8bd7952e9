package services

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Frame sizes for the placeholder thumbnail, one per supported aspect
// ratio. The real pipeline would grab a frame from the output video; the
// demo renders a flat-color frame of the right shape instead.
var thumbnailSizes = map[string][2]int{
	"9:16": {180, 320},
	"16:9": {320, 180},
	"1:1":  {240, 240},
	"4:5":  {192, 240},
}

func thumbnailColor(jobID string) color.NRGBA {
	var sum uint32
	for _, b := range []byte(jobID) {
		sum = sum*31 + uint32(b)
	}
	return color.NRGBA{
		R: uint8(sum >> 16),
		G: uint8(sum >> 8),
		B: uint8(sum),
		A: 255,
	}
}

// GenerateThumbnail writes a placeholder JPEG frame for the job sized to
// its aspect ratio.
func GenerateThumbnail(dstPath, jobID, aspectRatio string) error {
	size, ok := thumbnailSizes[aspectRatio]
	if !ok {
		size = thumbnailSizes["9:16"]
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("create thumbnail dir: %w", err)
	}

	frame := imaging.New(size[0], size[1], thumbnailColor(jobID))
	return imaging.Save(frame, dstPath, imaging.JPEGQuality(80))
}
