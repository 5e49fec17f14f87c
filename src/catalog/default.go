package catalog

import "project/models"

// Default returns the built-in relationship assessment catalog. Content is
// hardcoded here the same way the questionnaire definitions are; deployments
// that author their own content load it through LoadFromFile instead.
func Default() (Catalog, error) {
	return New(defaultScenarios(), "s_first_date", defaultArchetypes(), defaultPersonas())
}

func defaultScenarios() []models.Scenario {
	return []models.Scenario{
		{
			ID:            "s_first_date",
			Prompt:        "You matched with someone interesting and they suggest meeting this week. What drives your reply?",
			SelectionMode: models.SelectionSingle,
			Context:       "opening",
			Options: []models.AnswerOption{
				{ID: "a", Text: "Excitement. I say yes right away, this could be something special.", Delta: models.ScoreDelta{Emotional: 2}, Next: "s_heart_pace"},
				{ID: "b", Text: "I check my week first and suggest a time that actually works.", Delta: models.ScoreDelta{Logical: 2}, Next: "s_plan_depth"},
				{ID: "c", Text: "I counter with somewhere neither of us has been before.", Delta: models.ScoreDelta{Exploratory: 2}, Next: "s_new_ground"},
			},
		},
		{
			ID:            "s_heart_pace",
			Prompt:        "Three dates in, they say they have never felt this way about anyone. How does that land?",
			SelectionMode: models.SelectionSingle,
			Options: []models.AnswerOption{
				{ID: "a", Text: "It matches what I feel. I tell them so.", Delta: models.ScoreDelta{Emotional: 3}, Next: "s_values"},
				{ID: "b", Text: "It feels fast. Words are easy this early.", Delta: models.ScoreDelta{Logical: 2}, Next: "s_values"},
				{ID: "c", Text: "I enjoy it for what it is and see where it goes.", Delta: models.ScoreDelta{Emotional: 1, Exploratory: 2}, Next: "s_values"},
			},
		},
		{
			ID:            "s_plan_depth",
			Prompt:        "They ask what you are looking for. You answer honestly with:",
			SelectionMode: models.SelectionSingle,
			Options: []models.AnswerOption{
				{ID: "a", Text: "A clear picture: shared goals, compatible plans, no surprises.", Delta: models.ScoreDelta{Logical: 3}, Next: "s_values"},
				{ID: "b", Text: "A real connection first. The plans can follow.", Delta: models.ScoreDelta{Emotional: 2, Logical: 1}, Next: "s_values"},
				{ID: "c", Text: "Honestly? To find out. That's half the point.", Delta: models.ScoreDelta{Exploratory: 2, Logical: 1}, Next: "s_values"},
			},
		},
		{
			ID:            "s_new_ground",
			Prompt:        "The first date went well and they propose the exact same place next time. You:",
			SelectionMode: models.SelectionSingle,
			Options: []models.AnswerOption{
				{ID: "a", Text: "Suggest something different. Repetition this early feels like settling.", Delta: models.ScoreDelta{Exploratory: 3}, Next: "s_values"},
				{ID: "b", Text: "Go along. Familiar ground makes it easier to actually talk.", Delta: models.ScoreDelta{Emotional: 2}, Next: "s_values"},
				{ID: "c", Text: "Agree, but pick a better day and time for both of us.", Delta: models.ScoreDelta{Logical: 2}, Next: "s_values"},
			},
		},
		{
			ID:            "s_values",
			Prompt:        "A month in, which of these do you find yourself weighing? Pick the two that pull hardest.",
			SelectionMode: models.SelectionMulti,
			MinSelections: 2,
			Options: []models.AnswerOption{
				{ID: "a", Text: "How safe and understood I feel around them.", Delta: models.ScoreDelta{Emotional: 2}, Next: "s_conflict"},
				{ID: "b", Text: "Whether our day-to-day lives are actually compatible.", Delta: models.ScoreDelta{Logical: 2}, Next: "s_conflict"},
				{ID: "c", Text: "Whether we keep surprising each other.", Delta: models.ScoreDelta{Exploratory: 2}, Next: "s_conflict"},
				{ID: "d", Text: "How they treat people they don't need anything from.", Delta: models.ScoreDelta{Emotional: 1, Logical: 1}, Next: "s_conflict"},
			},
		},
		{
			ID:            "s_conflict",
			Prompt:        "You disagree about something that matters. Mid-argument, what are you actually doing?",
			SelectionMode: models.SelectionSingle,
			Options: []models.AnswerOption{
				{ID: "a", Text: "Reading their face. The relationship matters more than the point.", Delta: models.ScoreDelta{Emotional: 2}, Next: "s_repair"},
				{ID: "b", Text: "Keeping score of the facts. Feelings can't settle this.", Delta: models.ScoreDelta{Logical: 2}, Next: "s_standstill"},
				{ID: "c", Text: "Wondering whether fights like this are telling me to move on.", Delta: models.ScoreDelta{Exploratory: 2}, Next: "s_standstill"},
			},
		},
		{
			ID:            "s_repair",
			Prompt:        "After the argument they apologize with a grand gesture instead of words. You:",
			SelectionMode: models.SelectionSingle,
			Options: []models.AnswerOption{
				{ID: "a", Text: "Melt. The effort says more than any conversation could.", Delta: models.ScoreDelta{Emotional: 3}, Next: "s_future"},
				{ID: "b", Text: "Accept it, but still want the conversation we didn't have.", Delta: models.ScoreDelta{Emotional: 1, Logical: 2}, Next: "s_future"},
				{ID: "c", Text: "Notice the pattern: gestures whenever words get hard.", Delta: models.ScoreDelta{Logical: 2, Exploratory: 1}, Next: "s_future"},
			},
		},
		{
			ID:            "s_standstill",
			Prompt:        "The argument ends in a standstill. That night, you mostly:",
			SelectionMode: models.SelectionSingle,
			Options: []models.AnswerOption{
				{ID: "a", Text: "Replay what they must be feeling and draft an apology.", Delta: models.ScoreDelta{Emotional: 2}, Next: "s_future"},
				{ID: "b", Text: "Write down what was actually said so tomorrow stays factual.", Delta: models.ScoreDelta{Logical: 3}, Next: "s_future"},
				{ID: "c", Text: "Go out. Distance clears my head faster than rehashing.", Delta: models.ScoreDelta{Exploratory: 3}, Next: "s_future"},
			},
		},
		{
			ID:            "s_future",
			Prompt:        "Six months in, they ask where you see this going. Your honest answer:",
			SelectionMode: models.SelectionSingle,
			Context:       "closing",
			Options: []models.AnswerOption{
				{ID: "a", Text: "All the way. When it feels like this, you don't hedge.", Delta: models.ScoreDelta{Emotional: 3}, Next: models.TerminalNext},
				{ID: "b", Text: "Forward, on a timeline we actually plan together.", Delta: models.ScoreDelta{Logical: 3}, Next: models.TerminalNext},
				{ID: "c", Text: "Wherever it goes. Naming it now would shrink it.", Delta: models.ScoreDelta{Exploratory: 3}, Next: models.TerminalNext},
			},
		},
	}
}

func defaultArchetypes() []models.ArchetypeProfile {
	return []models.ArchetypeProfile{
		{
			ID:          "heart_led",
			Name:        "The Heart-Led Romantic",
			Description: "Leads with feeling, commits early, and reads the relationship through emotional closeness.",
			Ideal:       models.ScoreVector{Emotional: 12, Logical: 2, Exploratory: 2},
		},
		{
			ID:          "strategist",
			Name:        "The Deliberate Strategist",
			Description: "Treats compatibility as something to verify. Plans, compares, and decides on evidence.",
			Ideal:       models.ScoreVector{Emotional: 2, Logical: 12, Exploratory: 2},
		},
		{
			ID:          "wanderer",
			Name:        "The Open-Road Wanderer",
			Description: "Values novelty and autonomy; keeps options open and resists early definition.",
			Ideal:       models.ScoreVector{Emotional: 2, Logical: 2, Exploratory: 12},
		},
		{
			ID:          "anchor",
			Name:        "The Steady Anchor",
			Description: "Balances feeling and judgment; neither rushes in nor keeps score.",
			Ideal:       models.ScoreVector{Emotional: 6, Logical: 6, Exploratory: 4},
		},
	}
}

func defaultPersonas() []models.PersonaProfile {
	return []models.PersonaProfile{
		{
			ID:           "love_bombing",
			Name:         "Love Bombing",
			Description:  "Overwhelming early affection used to accelerate commitment before judgment catches up.",
			Guidance:     "Pace that only ever accelerates is a signal in itself. Let consistency, not intensity, earn trust.",
			Severity:     models.RiskLevelHigh,
			ArchetypeIDs: []string{"heart_led"},
		},
		{
			ID:           "guilt_leverage",
			Name:         "Guilt Leverage",
			Description:  "Manufactured obligation: your empathy is turned into the reason you can't say no.",
			Guidance:     "Notice when apologies flow in only one direction.",
			Severity:     models.RiskLevelMedium,
			ArchetypeIDs: []string{"heart_led", "anchor"},
		},
		{
			ID:           "spreadsheet_blindness",
			Name:         "Checklist Blindness",
			Description:  "A partner who performs well against criteria while the criteria miss how they actually treat you.",
			Guidance:     "Audit behavior under stress, not attributes on paper.",
			Severity:     models.RiskLevelLow,
			ArchetypeIDs: []string{"strategist"},
		},
		{
			ID:           "future_faking",
			Name:         "Future Faking",
			Description:  "Detailed promises about a shared future used as currency for compliance today.",
			Guidance:     "Weigh delivered commitments, not described ones.",
			Severity:     models.RiskLevelMedium,
			ArchetypeIDs: []string{"strategist", "heart_led"},
		},
		{
			ID:           "novelty_hook",
			Name:         "The Novelty Hook",
			Description:  "Intermittent excitement dosed precisely enough to keep leaving feel like a loss.",
			Guidance:     "Variable rewards are a mechanic, not chemistry. Watch what the quiet weeks feel like.",
			Severity:     models.RiskLevelMedium,
			ArchetypeIDs: []string{"wanderer"},
		},
		{
			ID:           "isolation_drift",
			Name:         "Isolation Drift",
			Description:  "Gradual separation from friends and routine framed as spontaneity or 'us time'.",
			Guidance:     "Keep the parts of your life that existed before them.",
			Severity:     models.RiskLevelHigh,
			ArchetypeIDs: []string{"wanderer"},
		},
	}
}
