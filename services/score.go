package services

import "strings"

var viralKeywords = []string{"wow", "amazing", "hack", "viral", "money", "tips"}

// ComputeViralScore is the demo heuristic: 20 plus the requested duration,
// clamped to [0,100], with a +15 bonus (capped at 100) when the source name
// or URL contains a hype keyword.
func ComputeViralScore(sourceName string, durationSeconds int) float64 {
	base := 20 + durationSeconds
	if base < 0 {
		base = 0
	}
	if base > 100 {
		base = 100
	}

	lower := strings.ToLower(sourceName)
	for _, kw := range viralKeywords {
		if strings.Contains(lower, kw) {
			base += 15
			break
		}
	}

	if base > 100 {
		base = 100
	}
	return float64(base)
}
