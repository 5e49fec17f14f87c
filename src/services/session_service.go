package services

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"project/catalog"
	"project/models"
	"project/repository"
)

// SubmitOutcome is what one accepted answer produces: the updated session,
// the next scenario (nil when the answer completed the assessment), and the
// final result on the completing transition.
type SubmitOutcome struct {
	Session      *models.AssessmentSession
	NextScenario *models.Scenario
	Completed    bool
	Progress     float64
	Result       *models.SessionResult
}

// SessionService owns the assessment session lifecycle and composes the
// navigator, accumulator, matcher, and persona selector. Sessions are
// mutated only through these operations.
type SessionService interface {
	Start(userID string) (*models.AssessmentSession, *models.Scenario, error)
	SubmitAnswer(userID, scenarioID string, optionIDs []string) (*SubmitOutcome, error)
	GoToPrevious(userID string) (*models.AssessmentSession, *models.Scenario, error)
	Reset(userID string) error
	GetSession(userID string) (*models.AssessmentSession, error)
	GetSessionByKey(sessionKey string) (*models.AssessmentSession, error)
	CurrentScenario(userID string) (*models.Scenario, *models.AssessmentSession, error)
	Progress(session *models.AssessmentSession) float64
	GetResult(userID string) (*models.SessionResult, error)
}

type sessionService struct {
	repo      repository.SessionRepository
	catalog   catalog.Catalog
	navigator Navigator
	scorer    ScoreAccumulator
	matcher   ArchetypeMatcher
	selector  PersonaSelector

	// inFlight guards against double submission: a submit arriving while a
	// previous submit's transition is still being applied is rejected, not
	// interleaved.
	mu       sync.Mutex
	inFlight map[string]bool
}

// NewSessionService wires the orchestrator over its four components.
func NewSessionService(
	repo repository.SessionRepository,
	cat catalog.Catalog,
	navigator Navigator,
	scorer ScoreAccumulator,
	matcher ArchetypeMatcher,
	selector PersonaSelector,
) SessionService {
	return &sessionService{
		repo:      repo,
		catalog:   cat,
		navigator: navigator,
		scorer:    scorer,
		matcher:   matcher,
		selector:  selector,
		inFlight:  make(map[string]bool),
	}
}

func (s *sessionService) beginMutation(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[userID] {
		return fmt.Errorf("%w: userID %s", models.ErrSubmissionInFlight, userID)
	}
	s.inFlight[userID] = true
	return nil
}

func (s *sessionService) endMutation(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, userID)
}

// Start finds the user's existing session or creates a fresh one at the
// catalog's start scenario. A completed session is returned as-is (with no
// scenario); only an explicit Reset discards it.
func (s *sessionService) Start(userID string) (*models.AssessmentSession, *models.Scenario, error) {
	if userID == "" {
		return nil, nil, errors.New("userID cannot be empty")
	}
	if err := s.beginMutation(userID); err != nil {
		return nil, nil, err
	}
	defer s.endMutation(userID)

	session, err := s.repo.GetSessionByUserID(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up session for userID %s: %w", userID, err)
	}

	if session == nil {
		now := time.Now()
		session = &models.AssessmentSession{
			SessionKey:        uuid.NewString(),
			UserID:            userID,
			Status:            models.SessionStatusInProgress,
			CurrentScenarioID: s.catalog.StartScenarioID(),
			Answers:           make([]models.Answer, 0),
			StartTime:         now,
			LastActivityTime:  now,
		}
		session, err = s.repo.CreateSession(session)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create session for userID %s: %w", userID, err)
		}
		log.Printf("INFO: [SessionService] Started session %s for userID '%s' at scenario '%s'.",
			session.SessionKey, userID, session.CurrentScenarioID)
	} else {
		log.Printf("INFO: [SessionService] UserID '%s' resumes session %s (status: %s, scenario: '%s').",
			userID, session.SessionKey, session.Status, session.CurrentScenarioID)
	}

	if session.IsComplete() {
		return session, nil, nil
	}

	scenario, err := s.catalog.GetScenario(session.CurrentScenarioID)
	if err != nil {
		// The persisted pointer no longer resolves; the catalog changed out
		// from under the session. Fatal for this session, surfaced loudly.
		return session, nil, fmt.Errorf("%w: persisted current scenario %q", models.ErrCatalogIntegrity, session.CurrentScenarioID)
	}
	return session, scenario, nil
}

// SubmitAnswer runs the full pipeline for one answer: validate, accumulate,
// resolve the transition, and on the completing transition classify and
// derive the vulnerability assessment. Validation failures reject before any
// state changes.
func (s *sessionService) SubmitAnswer(userID, scenarioID string, optionIDs []string) (*SubmitOutcome, error) {
	if err := s.beginMutation(userID); err != nil {
		return nil, err
	}
	defer s.endMutation(userID)

	session, err := s.repo.GetSessionByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session for userID %s: %w", userID, err)
	}
	if session == nil {
		return nil, fmt.Errorf("%w: userID %s", models.ErrNoActiveSession, userID)
	}
	if session.IsComplete() {
		return nil, fmt.Errorf("%w: userID %s", models.ErrSessionComplete, userID)
	}
	if scenarioID != session.CurrentScenarioID {
		return nil, fmt.Errorf("%w: got %q, current is %q", models.ErrWrongScenario, scenarioID, session.CurrentScenarioID)
	}

	scenario, err := s.catalog.GetScenario(scenarioID)
	if err != nil {
		return nil, err
	}

	// Pure pre-checks: nothing below mutates until both pass.
	if err := s.navigator.ValidateSelections(scenario, optionIDs); err != nil {
		return nil, err
	}
	next, err := s.navigator.ResolveNext(scenario, optionIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newScore, answer, err := s.scorer.ApplyAnswer(session.Score, scenario, optionIDs, now)
	if err != nil {
		return nil, err
	}

	session.Score = newScore
	session.Answers = append(session.Answers, answer)
	session.LastActivityTime = now

	outcome := &SubmitOutcome{Session: session}
	if next.Terminal {
		session.Status = models.SessionStatusComplete
		session.CurrentScenarioID = ""
		session.CompletedAt = &now
		session.ProgressHighWater = 100
		outcome.Completed = true
	} else {
		session.CurrentScenarioID = next.NextScenarioID
		if pct := s.navigator.EstimateProgress(len(session.Answers), next.NextScenarioID, false); pct > session.ProgressHighWater {
			session.ProgressHighWater = pct
		}
	}

	updated, err := s.repo.UpdateSession(session)
	if err != nil {
		return nil, fmt.Errorf("failed to persist session %s after answering '%s': %w", session.SessionKey, scenarioID, err)
	}
	session = updated
	outcome.Session = session
	outcome.Progress = s.Progress(session)

	if outcome.Completed {
		log.Printf("INFO: [SessionService] Session %s (userID '%s') completed with score %+v.",
			session.SessionKey, userID, session.Score)
		result, err := s.deriveResult(session)
		if err != nil {
			return nil, err
		}
		outcome.Result = result
		return outcome, nil
	}

	scenarioNext, err := s.catalog.GetScenario(session.CurrentScenarioID)
	if err != nil {
		return nil, fmt.Errorf("%w: transition target %q", models.ErrCatalogIntegrity, session.CurrentScenarioID)
	}
	outcome.NextScenario = scenarioNext
	log.Printf("INFO: [SessionService] UserID '%s' answered '%s', advancing to '%s' (progress %.1f%%).",
		userID, scenarioID, scenarioNext.ID, outcome.Progress)
	return outcome, nil
}

// GoToPrevious rewinds the last answer while in progress: the score drops by
// exactly the delta that answer added and the previous scenario becomes
// current again. The progress high-water mark survives, so the reported
// percentage never regresses.
func (s *sessionService) GoToPrevious(userID string) (*models.AssessmentSession, *models.Scenario, error) {
	if err := s.beginMutation(userID); err != nil {
		return nil, nil, err
	}
	defer s.endMutation(userID)

	session, err := s.repo.GetSessionByUserID(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up session for userID %s: %w", userID, err)
	}
	if session == nil {
		return nil, nil, fmt.Errorf("%w: userID %s", models.ErrNoActiveSession, userID)
	}
	if session.IsComplete() {
		return nil, nil, fmt.Errorf("%w: cannot rewind a complete session", models.ErrSessionComplete)
	}
	last := session.LastAnswer()
	if last == nil {
		return nil, nil, fmt.Errorf("%w: userID %s", models.ErrNothingToRewind, userID)
	}

	session.Score = s.scorer.RevertAnswer(session.Score, *last)
	session.CurrentScenarioID = last.ScenarioID
	session.Answers = session.Answers[:len(session.Answers)-1]
	session.LastActivityTime = time.Now()

	updated, err := s.repo.UpdateSession(session)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to persist rewind for session %s: %w", session.SessionKey, err)
	}
	session = updated

	scenario, err := s.catalog.GetScenario(session.CurrentScenarioID)
	if err != nil {
		return session, nil, fmt.Errorf("%w: rewound to %q", models.ErrCatalogIntegrity, session.CurrentScenarioID)
	}
	log.Printf("INFO: [SessionService] UserID '%s' rewound to scenario '%s' (score %+v).",
		userID, scenario.ID, session.Score)
	return session, scenario, nil
}

// Reset discards the user's session atomically: either the whole row goes or
// none of it does. Resetting a user with no session is a no-op.
func (s *sessionService) Reset(userID string) error {
	if err := s.beginMutation(userID); err != nil {
		return err
	}
	defer s.endMutation(userID)

	if err := s.repo.DeleteSessionByUserID(userID); err != nil {
		return fmt.Errorf("failed to reset session for userID %s: %w", userID, err)
	}
	log.Printf("INFO: [SessionService] Reset session state for userID '%s'.", userID)
	return nil
}

// GetSession returns the user's session, or nil when none exists.
func (s *sessionService) GetSession(userID string) (*models.AssessmentSession, error) {
	return s.repo.GetSessionByUserID(userID)
}

// GetSessionByKey resolves a session by its opaque key, for callers that hold
// the key a Start response handed out instead of the user identifier.
func (s *sessionService) GetSessionByKey(sessionKey string) (*models.AssessmentSession, error) {
	session, err := s.repo.GetSessionByKey(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session %s: %w", sessionKey, err)
	}
	if session == nil {
		return nil, fmt.Errorf("%w: session key %s", models.ErrNoActiveSession, sessionKey)
	}
	return session, nil
}

// CurrentScenario returns the scenario the session is awaiting a selection
// for, alongside the session itself.
func (s *sessionService) CurrentScenario(userID string) (*models.Scenario, *models.AssessmentSession, error) {
	session, err := s.repo.GetSessionByUserID(userID)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, fmt.Errorf("%w: userID %s", models.ErrNoActiveSession, userID)
	}
	if session.IsComplete() {
		return nil, session, nil
	}
	scenario, err := s.catalog.GetScenario(session.CurrentScenarioID)
	if err != nil {
		return nil, session, fmt.Errorf("%w: persisted current scenario %q", models.ErrCatalogIntegrity, session.CurrentScenarioID)
	}
	return scenario, session, nil
}

// Progress reports the monotone, clamped percentage estimate for a session.
func (s *sessionService) Progress(session *models.AssessmentSession) float64 {
	if session == nil {
		return 0
	}
	if session.IsComplete() {
		return 100
	}
	pct := s.navigator.EstimateProgress(len(session.Answers), session.CurrentScenarioID, false)
	if pct < session.ProgressHighWater {
		return session.ProgressHighWater
	}
	return pct
}

// GetResult re-derives the final classification for a complete session.
// Derived data is never trusted from storage; classification is a pure
// function of the persisted score, so recomputing is always safe.
func (s *sessionService) GetResult(userID string) (*models.SessionResult, error) {
	session, err := s.repo.GetSessionByUserID(userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w: userID %s", models.ErrNoActiveSession, userID)
	}
	if !session.IsComplete() {
		return nil, fmt.Errorf("%w: userID %s", models.ErrSessionNotComplete, userID)
	}
	return s.deriveResult(session)
}

// deriveResult runs the matcher, persona selector, and path analytics over a
// complete session's primitive state.
func (s *sessionService) deriveResult(session *models.AssessmentSession) (*models.SessionResult, error) {
	classification, err := s.matcher.Classify(session.Score)
	if err != nil {
		return nil, err
	}
	vulnerability := s.selector.SelectPersonas(classification, session.Score)
	path, err := s.navigator.BuildPath(session.Answers)
	if err != nil {
		return nil, err
	}
	return &models.SessionResult{
		Session:        session,
		Classification: classification,
		Vulnerability:  vulnerability,
		Path:           path,
	}, nil
}
