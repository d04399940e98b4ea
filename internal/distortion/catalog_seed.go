package distortion

// seedDistortions defines the distortion catalog. Order is significant:
// detection results, router lists and suggestions all follow it.
var seedDistortions = []Definition{
	{
		Type:        "catastrophizing",
		Name:        "Catastrophic Thinking",
		Description: "Expecting the worst possible outcome and treating it as certain",
		Patterns: []string{
			`\bdisast(er|ers|rous)\b`,
			`\bterribl[ey]\b`,
			`\bworst[- ]case\b`,
			`\bdoomed\b`,
			`\bnever (going to |gonna )?recover\b`,
			`\bend of the world\b`,
		},
		Explanation: "It sounds like you might be imagining the worst possible outcome and treating it as if it's certain to happen.",
		ReframeQuestions: []string{
			"What is the most likely outcome, rather than the worst one?",
			"If the worst did happen, how might you cope with it?",
			"Have you faced something like this before and come through it?",
		},
		Examples: []string{
			"This is going to be a total disaster",
			"If I fail this test my life is over",
			"It's the end of the world",
		},
	},
	{
		Type:        "all_or_nothing",
		Name:        "Black-and-White Thinking",
		Description: "Seeing things in absolute, all-or-nothing categories",
		Patterns: []string{
			`\balways\b`,
			`\bnever\b`,
			`\beveryone\b`,
			`\bno one\b`,
			`\bperfect(ly|ion)?\b`,
			`\bfailures?\b`,
			`\beither\b.*\bor\b`,
			`\b100 ?%`,
			`\b0 ?%`,
		},
		Explanation: "You might be seeing this situation in all-or-nothing terms, where anything short of perfect feels like total failure.",
		ReframeQuestions: []string{
			"Is there a middle ground between these two extremes?",
			"What would a partial success look like here?",
			"Would you judge a friend this strictly in the same situation?",
		},
		Examples: []string{
			"If it isn't perfect, it's a failure",
			"Everyone always ignores me",
			"I never get anything right",
		},
	},
	{
		Type:        "mind_reading",
		Name:        "Mind Reading",
		Description: "Assuming you know what others are thinking without evidence",
		Patterns: []string{
			`\bthey (all )?think\b`,
			`\b(they|he|she) (all )?hates? me\b`,
			`\bobviously thinks?\b`,
			`\bclearly believes?\b`,
			`\bi (just )?know (they|he|she) (thinks?|feels?)\b`,
		},
		Explanation: "You may be assuming you know what others are thinking, without clear evidence to support it.",
		ReframeQuestions: []string{
			"What evidence do you have about what they are actually thinking?",
			"What else might explain how they acted?",
			"How could you find out what they really think?",
		},
		Examples: []string{
			"They think I'm stupid",
			"She obviously thinks I'm boring",
			"They hate me, I can tell",
		},
	},
	{
		Type:        "overgeneralization",
		Name:        "Overgeneralizing",
		Description: "Drawing broad conclusions from a single event or a few events",
		Patterns: []string{
			`\balways happens\b`,
			`\bnever works\b`,
			`\bevery (single )?time\b`,
			`\bwithout fail\b`,
		},
		Explanation: "It seems like you might be taking one or two experiences and turning them into a rule about how things always go.",
		ReframeQuestions: []string{
			"Can you think of a time when this didn't happen?",
			"Is this one situation really proof of a pattern?",
		},
		Examples: []string{
			"This always happens to me",
			"Nothing ever works out",
			"Every time I try, I fail",
		},
	},
	{
		Type:        "personalization",
		Name:        "Personalizing",
		Description: "Blaming yourself for events outside your control",
		Patterns: []string{
			`\bit['’]?s (all )?my fault\b`,
			`\bbecause of me\b`,
			`\bi should('?ve| have)\b`,
			`\bi ruined\b`,
		},
		Explanation: "You might be taking responsibility for things that aren't entirely within your control.",
		ReframeQuestions: []string{
			"What other factors might have contributed to this situation?",
			"How much of this was really within your control?",
			"What would you say to a friend who blamed themselves for this?",
		},
		Examples: []string{
			"It's my fault the project failed",
			"They broke up because of me",
			"I should have seen it coming",
		},
	},
	{
		Type:        "emotional_reasoning",
		Name:        "Emotional Reasoning",
		Description: "Treating feelings as proof of what is true",
		Patterns: []string{
			`\bi feel\b[^.!?]*\bso it must\b`,
			`\bfeels (so )?true\b`,
			`\bgut feeling (says|tells)\b`,
		},
		Explanation: "It sounds like you might be treating a strong feeling as proof that something is true.",
		ReframeQuestions: []string{
			"What facts support this, apart from how it feels?",
			"Have your feelings ever told you something that turned out not to be true?",
		},
		Examples: []string{
			"I feel stupid, so it must be true",
			"It feels true that nobody likes me",
			"My gut feeling says this will go wrong",
		},
	},
	{
		Type:        "fortune_telling",
		Name:        "Fortune Telling",
		Description: "Predicting a negative future as if it were already decided",
		Patterns: []string{
			`\bwill definitely\b`,
			`\bbound to\b`,
			`\binevitabl[ey]\b`,
			`\bdestined to fail\b`,
		},
		Explanation: "You may be predicting the future as though it's already decided, when the outcome is still open.",
		ReframeQuestions: []string{
			"What evidence do you have that this outcome is certain?",
			"What are some other ways this could turn out?",
			"Have your predictions always come true in the past?",
		},
		Examples: []string{
			"I will definitely mess this up",
			"It's bound to go wrong",
			"I'm destined to fail",
		},
	},
	{
		Type:        "filtering",
		Name:        "Mental Filter",
		Description: "Focusing only on the negatives while ignoring the positives",
		Patterns: []string{
			`\bonly\b`,
			`\bnothing but\b`,
			`\ball i (can )?see\b`,
			`\bfocus(ing)? on (the )?bad\b`,
			`\bno positives?\b`,
		},
		Explanation: "It seems like you might be focusing on the negative details while filtering out the positive ones.",
		ReframeQuestions: []string{
			"What went well, even if it seems small?",
			"If you looked at the whole picture, what else would you notice?",
		},
		Examples: []string{
			"The only thing I remember is the mistake",
			"It was nothing but problems",
			"All I see is what went wrong",
		},
	},
}
