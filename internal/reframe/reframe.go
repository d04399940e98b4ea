// Package reframe turns a detected distortion into a supportive message and
// a follow-up question.
package reframe

import (
	"context"

	"github.com/unholyblue/bloom/internal/distortion"
)

// Response is a generated reframe. Both fields are non-empty.
type Response struct {
	Message          string `json:"message" yaml:"message"`
	FollowUpQuestion string `json:"followUpQuestion" yaml:"follow_up_question"`
}

// Generator produces a reframe for input, focused on primary.
type Generator interface {
	Generate(ctx context.Context, input string, primary distortion.Definition) (Response, error)
}

// Primary returns the distortion a reframe should address: the first match
// in catalog order.
func Primary(r distortion.Result) (distortion.Definition, bool) {
	if len(r.Distortions) == 0 {
		return distortion.Definition{}, false
	}
	return r.Distortions[0], true
}

// Format renders resp as the single string shown to the user.
func Format(resp Response) string {
	return resp.Message + "\n\n" + resp.FollowUpQuestion
}
