package distortion

import "regexp"

// Definition describes one cognitive distortion in the catalog.
type Definition struct {
	Type             string   `json:"type" yaml:"type"`
	Name             string   `json:"name" yaml:"name"`
	Description      string   `json:"description" yaml:"description"`
	Patterns         []string `json:"-" yaml:"-"`
	Explanation      string   `json:"explanation" yaml:"explanation"`
	ReframeQuestions []string `json:"reframeQuestions" yaml:"reframe_questions"`
	Examples         []string `json:"-" yaml:"-"`

	// matchers holds Patterns compiled at init, same order.
	matchers []*regexp.Regexp
}

// Result is the output of classifying one piece of text.
type Result struct {
	Detected    bool         `json:"detected" yaml:"detected"`
	Distortions []Definition `json:"distortions" yaml:"distortions"`
	Confidence  float64      `json:"confidence" yaml:"confidence"` // 0.0–1.0
	Suggestions []string     `json:"suggestions" yaml:"suggestions"`
}

// DisplayedSuggestions is how many suggestions UI consumers show.
const DisplayedSuggestions = 3

// emptyResult returns the no-match result with non-nil slices so it
// serializes as [] rather than null.
func emptyResult() Result {
	return Result{
		Distortions: []Definition{},
		Suggestions: []string{},
	}
}

// TopSuggestions returns at most n suggestions from r, in order.
func TopSuggestions(r Result, n int) []string {
	if n <= 0 {
		return []string{}
	}
	if len(r.Suggestions) <= n {
		return append([]string{}, r.Suggestions...)
	}
	return append([]string{}, r.Suggestions[:n]...)
}

// Types returns the distortion types of r in catalog order.
func (r Result) Types() []string {
	out := make([]string, len(r.Distortions))
	for i, d := range r.Distortions {
		out[i] = d.Type
	}
	return out
}

// Names returns the display names of r in catalog order.
func (r Result) Names() []string {
	out := make([]string, len(r.Distortions))
	for i, d := range r.Distortions {
		out[i] = d.Name
	}
	return out
}
