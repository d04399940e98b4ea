package reframe

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/unholyblue/bloom/internal/distortion"
)

// snippetRunes is how much of the input a template quotes back.
const snippetRunes = 50

type template struct {
	message  string // one %s verb for the snippet
	question string
}

var templates = map[string]template{
	"catastrophizing": {
		message: "When you say \"%s\", it sounds like your mind might be jumping to the worst possible outcome. " +
			"That's a very human reaction to stress, and it can make a situation feel much bigger than it is.",
		question: "If a good friend were in this exact situation, what do you think the most realistic outcome would be for them?",
	},
	"all_or_nothing": {
		message: "I hear you saying \"%s\". It seems like this might be landing as all good or all bad, " +
			"with nothing in between. Most situations have more shades of grey than they first appear to.",
		question: "What would a partly successful version of this look like?",
	},
	"mind_reading": {
		message: "You mentioned \"%s\". It sounds like you might be filling in what others are thinking. " +
			"We can't actually see inside anyone's head, and our guesses are often harsher than the truth.",
		question: "What is one other explanation for how they acted that doesn't involve them thinking badly of you?",
	},
	"overgeneralization": {
		message: "When you say \"%s\", it sounds like one experience might be turning into a rule about how things always go. " +
			"A single event, or even a few, rarely tells the whole story.",
		question: "Can you remember a time when things went differently than this?",
	},
	"personalization": {
		message: "You said \"%s\". It sounds like you might be carrying the blame for something that wasn't entirely in your hands. " +
			"Most outcomes depend on many people and circumstances, not just one person.",
		question: "What other factors, apart from you, might have played a part in how this turned out?",
	},
	"emotional_reasoning": {
		message: "I notice you said \"%s\". Feelings are real and worth listening to, " +
			"but a strong feeling isn't always reliable evidence of what is actually true.",
		question: "If you set the feeling aside for a moment, what facts do you actually have about this?",
	},
	"fortune_telling": {
		message: "When you say \"%s\", it sounds like you might be predicting how this will end before it has happened. " +
			"The future is usually more open than our worries suggest.",
		question: "What are two or three other ways this could realistically turn out?",
	},
	"filtering": {
		message: "You mentioned \"%s\". It sounds like the difficult parts might be crowding out everything else. " +
			"It's easy for one negative detail to colour the whole picture.",
		question: "What is one thing, even a small one, that went okay or better than expected?",
	},
}

var genericTemplate = template{
	message: "When you say \"%s\", I notice a thinking pattern that might be influencing your perspective. " +
		"It can help to step back and look at the situation from a few different angles.",
	question: "What might be another way of looking at this situation?",
}

// TemplateGenerator answers from canned templates keyed by distortion type.
// It never fails.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

func (g *TemplateGenerator) Generate(_ context.Context, input string, primary distortion.Definition) (Response, error) {
	t := lookupTemplate(primary.Type)
	return Response{
		Message:          fmt.Sprintf(t.message, Snippet(input)),
		FollowUpQuestion: t.question,
	}, nil
}

func lookupTemplate(distortionType string) template {
	if t, ok := templates[NormalizeKey(distortionType)]; ok {
		return t
	}
	return genericTemplate
}

// NormalizeKey lowercases s and replaces spaces and hyphens with
// underscores, so "All-or-Nothing" and "all or nothing" both become
// "all_or_nothing".
func NormalizeKey(s string) string {
	return strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(s))
}

// Snippet returns input unchanged when it has at most 50 runes, otherwise
// its first 50 runes followed by "…".
func Snippet(input string) string {
	if utf8.RuneCountInString(input) <= snippetRunes {
		return input
	}
	return string([]rune(input)[:snippetRunes]) + "…"
}
