// Package catalog supplies the read-only scenario graph and the archetype and
// persona reference profiles. The core never mutates catalog data; every
// entry is validated once at load and immutable afterwards.
package catalog

import (
	"fmt"
	"log"

	"project/models"
)

// Catalog is the read boundary the assessment core consumes.
type Catalog interface {
	GetScenario(id string) (*models.Scenario, error)
	StartScenarioID() string
	GetArchetypeProfiles() []models.ArchetypeProfile
	GetPersonaProfiles() []models.PersonaProfile
	// RemainingDepth returns the longest chain of scenarios still ahead of
	// the given scenario, inclusive of itself. Used by the progress estimate.
	RemainingDepth(scenarioID string) int
	Summary() models.CatalogSummary
}

type memoryCatalog struct {
	scenarios  map[string]*models.Scenario
	order      []string // declaration order, for stable iteration
	startID    string
	archetypes []models.ArchetypeProfile
	personas   []models.PersonaProfile
	depthByID  map[string]int
}

// New builds a validated in-memory catalog. It fails loudly on integrity
// violations: dangling next pointers, duplicate ids, unreachable selection
// bounds, or an empty archetype list.
func New(scenarios []models.Scenario, startID string, archetypes []models.ArchetypeProfile, personas []models.PersonaProfile) (Catalog, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("%w: no scenarios", models.ErrEmptyCatalog)
	}
	if len(archetypes) == 0 {
		return nil, fmt.Errorf("%w: no archetype profiles", models.ErrEmptyCatalog)
	}

	c := &memoryCatalog{
		scenarios:  make(map[string]*models.Scenario, len(scenarios)),
		order:      make([]string, 0, len(scenarios)),
		startID:    startID,
		archetypes: archetypes,
		personas:   personas,
		depthByID:  make(map[string]int, len(scenarios)),
	}

	// Stable copy so the map points into memory the caller can't mutate.
	store := make([]models.Scenario, len(scenarios))
	copy(store, scenarios)
	for i := range store {
		s := &store[i]
		if s.ID == "" {
			return nil, fmt.Errorf("%w: scenario %d has an empty id", models.ErrCatalogIntegrity, i)
		}
		if _, dup := c.scenarios[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate scenario id %q", models.ErrCatalogIntegrity, s.ID)
		}
		if s.SelectionMode == "" {
			s.SelectionMode = models.SelectionSingle
		}
		if s.SelectionMode == models.SelectionMulti && s.MinSelections == 0 {
			s.MinSelections = 1
		}
		c.scenarios[s.ID] = s
		c.order = append(c.order, s.ID)
	}

	if c.startID == "" {
		c.startID = c.order[0]
	}
	if _, ok := c.scenarios[c.startID]; !ok {
		return nil, fmt.Errorf("%w: start scenario %q not in catalog", models.ErrCatalogIntegrity, c.startID)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	c.computeDepths()

	log.Printf("INFO: [Catalog] Loaded %d scenarios, %d archetypes, %d personas (start: %s).",
		len(c.scenarios), len(c.archetypes), len(c.personas), c.startID)
	return c, nil
}

// validate checks every option's next pointer, option uniqueness, selection
// bounds, and the archetype references of the persona association rules.
func (c *memoryCatalog) validate() error {
	archetypeIDs := make(map[string]bool, len(c.archetypes))
	for _, a := range c.archetypes {
		if a.ID == "" {
			return fmt.Errorf("%w: archetype with empty id", models.ErrCatalogIntegrity)
		}
		if archetypeIDs[a.ID] {
			return fmt.Errorf("%w: duplicate archetype id %q", models.ErrCatalogIntegrity, a.ID)
		}
		archetypeIDs[a.ID] = true
	}

	for _, id := range c.order {
		s := c.scenarios[id]
		if len(s.Options) == 0 {
			return fmt.Errorf("%w: scenario %q has no options", models.ErrCatalogIntegrity, id)
		}
		if s.SelectionMode != models.SelectionSingle && s.SelectionMode != models.SelectionMulti {
			return fmt.Errorf("%w: scenario %q has unknown selection mode %q", models.ErrCatalogIntegrity, id, s.SelectionMode)
		}
		if s.MinSelections > len(s.Options) {
			return fmt.Errorf("%w: scenario %q requires %d selections but has %d options",
				models.ErrCatalogIntegrity, id, s.MinSelections, len(s.Options))
		}
		seen := make(map[string]bool, len(s.Options))
		for _, opt := range s.Options {
			if opt.ID == "" {
				return fmt.Errorf("%w: scenario %q has an option with empty id", models.ErrCatalogIntegrity, id)
			}
			if seen[opt.ID] {
				return fmt.Errorf("%w: scenario %q has duplicate option id %q", models.ErrCatalogIntegrity, id, opt.ID)
			}
			seen[opt.ID] = true
			if opt.Next != models.TerminalNext {
				if _, ok := c.scenarios[opt.Next]; !ok {
					return fmt.Errorf("%w: scenario %q option %q points to missing scenario %q",
						models.ErrCatalogIntegrity, id, opt.ID, opt.Next)
				}
			}
		}
	}

	for _, p := range c.personas {
		if p.ID == "" {
			return fmt.Errorf("%w: persona with empty id", models.ErrCatalogIntegrity)
		}
		switch p.Severity {
		case models.RiskLevelLow, models.RiskLevelMedium, models.RiskLevelHigh:
		default:
			return fmt.Errorf("%w: persona %q has invalid severity %q", models.ErrCatalogIntegrity, p.ID, p.Severity)
		}
		for _, aid := range p.ArchetypeIDs {
			if !archetypeIDs[aid] {
				return fmt.Errorf("%w: persona %q references missing archetype %q",
					models.ErrCatalogIntegrity, p.ID, aid)
			}
		}
	}
	return nil
}

// computeDepths walks the graph once and records, for every scenario, the
// longest remaining chain including itself. Cycles would make the depth
// unbounded; they are treated as depth already-seen to keep the walk finite,
// which validate() has no reason to forbid for review-style graphs.
func (c *memoryCatalog) computeDepths() {
	var walk func(id string, visiting map[string]bool) int
	walk = func(id string, visiting map[string]bool) int {
		if d, ok := c.depthByID[id]; ok {
			return d
		}
		if visiting[id] {
			return 0
		}
		visiting[id] = true
		defer delete(visiting, id)

		longest := 0
		s := c.scenarios[id]
		for _, opt := range s.Options {
			if opt.Next == models.TerminalNext {
				continue
			}
			if d := walk(opt.Next, visiting); d > longest {
				longest = d
			}
		}
		c.depthByID[id] = longest + 1
		return longest + 1
	}
	for _, id := range c.order {
		walk(id, map[string]bool{})
	}
}

func (c *memoryCatalog) GetScenario(id string) (*models.Scenario, error) {
	s, ok := c.scenarios[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownScenario, id)
	}
	return s, nil
}

func (c *memoryCatalog) StartScenarioID() string {
	return c.startID
}

func (c *memoryCatalog) GetArchetypeProfiles() []models.ArchetypeProfile {
	out := make([]models.ArchetypeProfile, len(c.archetypes))
	copy(out, c.archetypes)
	return out
}

func (c *memoryCatalog) GetPersonaProfiles() []models.PersonaProfile {
	out := make([]models.PersonaProfile, len(c.personas))
	copy(out, c.personas)
	return out
}

func (c *memoryCatalog) RemainingDepth(scenarioID string) int {
	return c.depthByID[scenarioID]
}

func (c *memoryCatalog) Summary() models.CatalogSummary {
	return models.CatalogSummary{
		ScenarioCount:   len(c.scenarios),
		ArchetypeCount:  len(c.archetypes),
		PersonaCount:    len(c.personas),
		StartScenarioID: c.startID,
	}
}
