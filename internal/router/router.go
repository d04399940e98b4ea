package router

import (
	"fmt"
	"strings"

	"github.com/unholyblue/bloom/internal/distortion"
)

// ReframeThreshold is the minimum confidence (inclusive) that routes a
// message to a reframe. With the 0.3 confidence step this means two or
// more distinct distortions.
const ReframeThreshold = 0.5

// Decision is the routing outcome for one detection result.
type Decision struct {
	ShouldReframe   bool     `json:"shouldReframe" yaml:"should_reframe"`
	DistortionNames []string `json:"distortionNames" yaml:"distortion_names"`
	DistortionTypes []string `json:"distortionTypes" yaml:"distortion_types"`
	Confidence      float64  `json:"confidence" yaml:"confidence"`
	Explanation     string   `json:"explanation" yaml:"explanation"`
}

const multiPatternExplanation = "I noticed some patterns in your thinking that might be %s. " +
	"These thinking patterns can sometimes make situations feel more overwhelming than they need to be."

// defaultDecision is the pass-through decision.
func defaultDecision() Decision {
	return Decision{
		DistortionNames: []string{},
		DistortionTypes: []string{},
	}
}

// Route decides whether r should be answered with a reframe.
func Route(r distortion.Result) Decision {
	if !r.Detected || len(r.Distortions) == 0 {
		return defaultDecision()
	}

	names := r.Names()
	d := Decision{
		DistortionNames: names,
		DistortionTypes: r.Types(),
		Confidence:      r.Confidence,
		ShouldReframe:   r.Confidence >= ReframeThreshold,
	}

	if len(r.Distortions) == 1 {
		d.Explanation = r.Distortions[0].Explanation
	} else {
		d.Explanation = fmt.Sprintf(multiPatternExplanation, JoinNames(names))
	}
	return d
}

// ShouldRouteToReframe reports the gate for r. It always agrees with Route.
func ShouldRouteToReframe(r distortion.Result) bool {
	return Route(r).ShouldReframe
}

// JoinNames joins names as natural-language list: "A", "A and B",
// "A, B and C".
func JoinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
