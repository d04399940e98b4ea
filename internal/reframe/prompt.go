package reframe

import (
	"fmt"
	"strings"

	"github.com/unholyblue/bloom/internal/distortion"
)

const systemPrompt = `You are a warm, supportive companion trained in cognitive behavioural techniques.
Someone has shared a thought that shows a common thinking pattern (a cognitive distortion).

Rules:
- Do not diagnose, lecture or use clinical jargon.
- Acknowledge the feeling first, then gently offer a more balanced perspective.
- Refer to what they actually said; quote a short part of it if it helps.
- Keep the message to two or three sentences.
- End with exactly one open-ended follow-up question, returned separately from the message.
- Never repeat the message as the question.
- If the text suggests the person may be in danger, encourage them to reach out to someone they trust or a local crisis line.`

// buildUserMessage describes the input and the distortion to address. The
// canned template for the distortion is included as a style example.
func buildUserMessage(input string, primary distortion.Definition) string {
	example := lookupTemplate(primary.Type)

	var b strings.Builder
	fmt.Fprintf(&b, "What they said:\n%s\n\n", input)
	fmt.Fprintf(&b, "Thinking pattern: %s (%s)\n", primary.Name, primary.Type)
	fmt.Fprintf(&b, "Description: %s\n", primary.Description)
	if len(primary.ReframeQuestions) > 0 {
		b.WriteString("Questions that often help:\n")
		for _, q := range primary.ReframeQuestions {
			fmt.Fprintf(&b, "- %s\n", q)
		}
	}
	b.WriteString("\nExample of the tone to aim for:\n")
	fmt.Fprintf(&b, "Message: %s\n", fmt.Sprintf(example.message, Snippet(input)))
	fmt.Fprintf(&b, "Question: %s", example.question)
	return b.String()
}
