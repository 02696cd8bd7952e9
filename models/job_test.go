package models

import "testing"

func TestIsValidSubtitleMode(t *testing.T) {
	for _, v := range []string{SubtitleNone, SubtitleAuto, SubtitleCustom} {
		if !IsValidSubtitleMode(v) {
			t.Fatalf("expected %q to be valid", v)
		}
	}
	if IsValidSubtitleMode("burn") {
		t.Fatalf("expected burn to be rejected")
	}
	if IsValidSubtitleMode("") {
		t.Fatalf("expected empty mode to be rejected")
	}
}

func TestIsValidSourceType(t *testing.T) {
	if !IsValidSourceType(SourceUpload) || !IsValidSourceType(SourceYoutube) {
		t.Fatalf("expected upload and youtube to be valid")
	}
	if IsValidSourceType("vimeo") {
		t.Fatalf("expected vimeo to be rejected")
	}
}

func TestIsValidAspectRatio(t *testing.T) {
	for _, v := range []string{"9:16", "16:9", "1:1", "4:5"} {
		if !IsValidAspectRatio(v) {
			t.Fatalf("expected %q to be valid", v)
		}
	}
	if IsValidAspectRatio("21:9") {
		t.Fatalf("expected 21:9 to be rejected")
	}
}

func TestIsValidResolution(t *testing.T) {
	if !IsValidResolution("720p") || !IsValidResolution("1080p") {
		t.Fatalf("expected both presets to be valid")
	}
	if IsValidResolution("4k") {
		t.Fatalf("expected 4k to be rejected")
	}
}

func TestNormalizePositionDefaultsToBottom(t *testing.T) {
	if got := NormalizePosition("sideways"); got != PositionBottom {
		t.Fatalf("expected bottom, got %s", got)
	}
	if got := NormalizePosition(""); got != PositionBottom {
		t.Fatalf("expected bottom for empty, got %s", got)
	}
	if got := NormalizePosition(PositionTop); got != PositionTop {
		t.Fatalf("expected top to pass through, got %s", got)
	}
}
