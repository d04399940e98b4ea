package distortion

import (
	"math"
	"strings"
)

// ConfidenceStep is the confidence added per matched distortion.
const ConfidenceStep = 0.3

// Score converts a matched-distortion count into a confidence in [0,1]:
// min(matched * 0.3, 1.0). It is a coarse count-based proxy and ignores
// pattern specificity and text length.
func Score(matched int) float64 {
	if matched <= 0 {
		return 0
	}
	return math.Min(float64(matched)*ConfidenceStep, 1.0)
}

// Normalize prepares text for matching. Only case is folded; punctuation,
// accents and whitespace are left as they are.
func Normalize(text string) string {
	return strings.ToLower(text)
}

// Classify runs the catalog over text. Each distortion counts once no
// matter how many of its patterns fire, and results keep catalog order.
func Classify(text string) Result {
	if strings.TrimSpace(text) == "" {
		return emptyResult()
	}

	normalized := Normalize(text)
	result := emptyResult()
	for i := range catalog {
		if !catalog[i].Matches(normalized) {
			continue
		}
		d := clone(catalog[i])
		result.Distortions = append(result.Distortions, d)
		result.Suggestions = append(result.Suggestions, d.ReframeQuestions...)
	}

	result.Detected = len(result.Distortions) > 0
	result.Confidence = Score(len(result.Distortions))
	return result
}
