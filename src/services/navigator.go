package services

import (
	"fmt"

	"project/catalog"
	"project/models"
)

// NextState is the navigator's verdict for one submitted answer: either the
// identifier of the next scenario or a terminal signal.
type NextState struct {
	NextScenarioID string
	Terminal       bool
}

// Navigator resolves branching transitions and derives path bookkeeping.
// All methods are pure with respect to session state; validation failures
// are reported before anything is mutated.
type Navigator interface {
	ValidateSelections(scenario *models.Scenario, optionIDs []string) error
	ResolveNext(scenario *models.Scenario, optionIDs []string) (NextState, error)
	EstimateProgress(answered int, currentScenarioID string, complete bool) float64
	BuildPath(answers []models.Answer) (*models.UserPath, error)
}

type navigator struct {
	catalog catalog.Catalog
}

// NewNavigator creates a Navigator over the given catalog.
func NewNavigator(cat catalog.Catalog) Navigator {
	return &navigator{catalog: cat}
}

// ValidateSelections is the side-effect-free pre-check run before any state
// mutation. It enforces selection cardinality and option existence.
func (n *navigator) ValidateSelections(scenario *models.Scenario, optionIDs []string) error {
	if len(optionIDs) == 0 {
		return fmt.Errorf("%w: scenario %q requires at least %d selection(s), got 0",
			models.ErrSelectionCount, scenario.ID, scenario.RequiredSelections())
	}

	switch scenario.SelectionMode {
	case models.SelectionSingle:
		if len(optionIDs) != 1 {
			return fmt.Errorf("%w: scenario %q is single-select, got %d selections",
				models.ErrSelectionCount, scenario.ID, len(optionIDs))
		}
	case models.SelectionMulti:
		min := scenario.RequiredSelections()
		if len(optionIDs) < min || len(optionIDs) > len(scenario.Options) {
			return fmt.Errorf("%w: scenario %q accepts %d..%d selections, got %d",
				models.ErrSelectionCount, scenario.ID, min, len(scenario.Options), len(optionIDs))
		}
	default:
		return fmt.Errorf("%w: scenario %q has selection mode %q", models.ErrCatalogIntegrity, scenario.ID, scenario.SelectionMode)
	}

	seen := make(map[string]bool, len(optionIDs))
	for _, id := range optionIDs {
		if seen[id] {
			return fmt.Errorf("%w: %q on scenario %q", models.ErrDuplicateSelection, id, scenario.ID)
		}
		seen[id] = true
		if scenario.OptionByID(id) == nil {
			return fmt.Errorf("%w: %q on scenario %q", models.ErrUnknownOption, id, scenario.ID)
		}
	}
	return nil
}

// ResolveNext determines the transition for a validated answer.
//
// Single-select takes the chosen option's next pointer directly. Multi-select
// uses a deterministic combination rule: if every chosen option agrees on
// next, that target wins; otherwise the chosen option that appears first in
// the scenario's declared option order decides. Catalog authors therefore
// control the tie-break by ordering options.
func (n *navigator) ResolveNext(scenario *models.Scenario, optionIDs []string) (NextState, error) {
	if err := n.ValidateSelections(scenario, optionIDs); err != nil {
		return NextState{}, err
	}

	next := ""
	if scenario.SelectionMode == models.SelectionSingle || len(optionIDs) == 1 {
		next = scenario.OptionByID(optionIDs[0]).Next
	} else {
		// When the chosen options agree on next this picks that shared
		// target; when they disagree, declaration order decides.
		chosen := make(map[string]bool, len(optionIDs))
		for _, id := range optionIDs {
			chosen[id] = true
		}
		for _, opt := range scenario.Options {
			if chosen[opt.ID] {
				next = opt.Next
				break
			}
		}
	}

	if next == models.TerminalNext {
		return NextState{Terminal: true}, nil
	}
	if _, err := n.catalog.GetScenario(next); err != nil {
		// Dangling pointers are caught at catalog load; hitting one here
		// means the session outlived the catalog that produced it.
		return NextState{}, fmt.Errorf("%w: scenario %q option transition targets %q",
			models.ErrCatalogIntegrity, scenario.ID, next)
	}
	return NextState{NextScenarioID: next}, nil
}

// EstimateProgress returns a percentage estimate in [0,100]. The graph is
// branching, so this is a heuristic: answered steps over answered steps plus
// the longest chain still reachable from the current scenario. Callers keep
// a high-water mark to guarantee monotonicity across rewinds.
func (n *navigator) EstimateProgress(answered int, currentScenarioID string, complete bool) float64 {
	if complete {
		return 100
	}
	if answered < 0 {
		answered = 0
	}
	remaining := n.catalog.RemainingDepth(currentScenarioID)
	if remaining <= 0 {
		remaining = 1
	}
	pct := float64(answered) / float64(answered+remaining) * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}

// BuildPath recomputes the derived path analytics from the answer history.
func (n *navigator) BuildPath(answers []models.Answer) (*models.UserPath, error) {
	path := &models.UserPath{
		VisitedScenarios: make([]string, 0, len(answers)),
		TotalSteps:       len(answers),
	}
	for _, ans := range answers {
		scenario, err := n.catalog.GetScenario(ans.ScenarioID)
		if err != nil {
			return nil, err
		}
		path.VisitedScenarios = append(path.VisitedScenarios, ans.ScenarioID)
		if scenario.IsBranchingPoint() {
			path.BranchingPoints++
		}
	}
	return path, nil
}
