package models

// SelectionMode defines how many options a scenario accepts in one answer.
type SelectionMode string

const (
	SelectionSingle SelectionMode = "single" // Exactly one option
	SelectionMulti  SelectionMode = "multi"  // MinSelections..len(Options) options
)

// TerminalNext is the sentinel value an option's Next field carries when
// choosing it ends the questionnaire instead of leading to another scenario.
const TerminalNext = ""

// AnswerOption is one selectable choice on a scenario. The identifier is a
// short label ("a", "b", ...) unique within its scenario.
type AnswerOption struct {
	ID    string     `json:"id" yaml:"id"`
	Text  string     `json:"text" yaml:"text"`
	Delta ScoreDelta `json:"delta" yaml:"delta"`
	// Next is the scenario this option transitions to, or TerminalNext.
	Next string `json:"next,omitempty" yaml:"next,omitempty"`
}

// Scenario is one immutable question node in the branching questionnaire.
type Scenario struct {
	ID            string         `json:"id" yaml:"id"`
	Prompt        string         `json:"prompt" yaml:"prompt"`
	Options       []AnswerOption `json:"options" yaml:"options"`
	SelectionMode SelectionMode  `json:"selection_mode" yaml:"selection_mode"`
	// MinSelections only applies to multi-select scenarios. A zero value is
	// normalized to 1 at catalog load.
	MinSelections int `json:"min_selections,omitempty" yaml:"min_selections,omitempty"`
	// Context is optional display metadata passed through to the UI layer.
	Context string `json:"context,omitempty" yaml:"context,omitempty"`
}

// OptionByID returns the option with the given identifier, or nil.
func (s *Scenario) OptionByID(id string) *AnswerOption {
	for i := range s.Options {
		if s.Options[i].ID == id {
			return &s.Options[i]
		}
	}
	return nil
}

// IsBranchingPoint reports whether different choices on this scenario can lead
// to different subsequent scenarios.
func (s *Scenario) IsBranchingPoint() bool {
	if len(s.Options) == 0 {
		return false
	}
	first := s.Options[0].Next
	for _, opt := range s.Options[1:] {
		if opt.Next != first {
			return true
		}
	}
	return false
}

// RequiredSelections returns the minimum number of options a valid answer to
// this scenario must carry.
func (s *Scenario) RequiredSelections() int {
	if s.SelectionMode == SelectionMulti {
		if s.MinSelections > 0 {
			return s.MinSelections
		}
		return 1
	}
	return 1
}
