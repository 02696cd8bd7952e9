package services

import "testing"

func TestComputeViralScoreBase(t *testing.T) {
	cases := []struct {
		duration int
		want     float64
	}{
		{5, 25},
		{30, 50},
		{80, 100},
		{180, 100},
	}
	for _, tc := range cases {
		if got := ComputeViralScore("plain_clip.mp4", tc.duration); got != tc.want {
			t.Fatalf("duration %d: expected %v, got %v", tc.duration, tc.want, got)
		}
	}
}

func TestComputeViralScoreKeywordBonus(t *testing.T) {
	if got := ComputeViralScore("amazing_trick.mp4", 30); got != 65 {
		t.Fatalf("expected 65, got %v", got)
	}
	if got := ComputeViralScore("https://youtu.be/MONEY-tips", 10); got != 45 {
		t.Fatalf("expected case-insensitive keyword bonus 45, got %v", got)
	}
}

func TestComputeViralScoreBonusCappedAt100(t *testing.T) {
	if got := ComputeViralScore("viral.mp4", 180); got != 100 {
		t.Fatalf("expected cap at 100, got %v", got)
	}
	if got := ComputeViralScore("wow.mp4", 79); got != 100 {
		t.Fatalf("expected 99+15 capped to 100, got %v", got)
	}
}

func TestComputeViralScoreSingleBonusForMultipleKeywords(t *testing.T) {
	if got := ComputeViralScore("wow_amazing_hack.mp4", 10); got != 45 {
		t.Fatalf("expected one bonus only, got %v", got)
	}
}
