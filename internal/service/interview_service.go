package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"

	"teamsort/internal/cache"
	"teamsort/internal/engine"
	"teamsort/internal/model"
	"teamsort/internal/repository"

	"github.com/google/uuid"
)

// ErrUnknownSession is returned when the session ID is not tracked.
var ErrUnknownSession = errors.New("session not found")

// InterviewService runs the adaptive interview loop on top of the
// engine. It owns session storage, serializes mutation per session ID
// and reports finished games for the global statistics.
type InterviewService struct {
	catalog  *engine.Catalog
	sessions cache.SessionCache
	results  repository.ResultRepo
	stats    *StatsService
	rnd      func() float64

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewInterviewService creates a new interview service.
func NewInterviewService(
	catalog *engine.Catalog,
	sessions cache.SessionCache,
	results repository.ResultRepo,
	stats *StatsService,
) *InterviewService {
	return &InterviewService{
		catalog:  catalog,
		sessions: sessions,
		results:  results,
		stats:    stats,
		rnd:      rand.Float64,
		locks:    make(map[string]*sync.Mutex),
	}
}

// sessionLock returns the mutex serializing writes for one session.
func (s *InterviewService) sessionLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

func (s *InterviewService) dropLock(id string) {
	s.mu.Lock()
	delete(s.locks, id)
	s.mu.Unlock()
}

// Start opens a new interview. The opening question draw is biased by
// the balanced global weights, so teams under-predicted across recent
// games open the interview more often.
func (s *InterviewService) Start(ctx context.Context) (*model.StartSessionResponse, error) {
	weights := s.stats.BalancedWeights(ctx)

	idx, err := engine.ChooseStartingQuestion(s.catalog, weights, s.rnd)
	if err != nil {
		return nil, fmt.Errorf("choose starting question: %w", err)
	}
	question, err := s.catalog.Get(idx)
	if err != nil {
		return nil, err
	}

	session := model.NewSession(uuid.NewString(), weights)
	engine.RecordQuestion(session, idx, question)

	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return &model.StartSessionResponse{
		SessionID:     session.ID,
		QuestionIndex: 0,
		Question:      question.Text,
		Choices:       model.AnswerChoices(),
	}, nil
}

// SubmitAnswer applies one answer to the session and either returns the
// next question or finishes the interview with a verdict.
func (s *InterviewService) SubmitAnswer(ctx context.Context, sessionID string, answer model.AnswerLevel) (*model.NextResponse, error) {
	level, err := answer.Value()
	if err != nil {
		return nil, err
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return nil, ErrUnknownSession
	}
	if session.Status == model.SessionEnded {
		return nil, engine.ErrSessionEnded
	}

	question, err := s.catalog.Get(session.CurrentQuestionIndex)
	if err != nil {
		return nil, err
	}

	engine.ApplyAnswer(session, question, level)
	session.Status = model.SessionInProgress

	if engine.ShouldFinish(session.Scores, session.AskedCount) {
		return s.finish(ctx, session)
	}

	nextIdx, ok, err := engine.ChooseNextQuestion(s.catalog, session, s.rnd)
	if err != nil {
		return nil, fmt.Errorf("choose next question: %w", err)
	}
	if !ok {
		// Catalog exhausted: stop regardless of confidence.
		return s.finish(ctx, session)
	}

	next, err := s.catalog.Get(nextIdx)
	if err != nil {
		return nil, err
	}
	engine.RecordQuestion(session, nextIdx, next)

	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	idx := session.AskedCount
	return &model.NextResponse{
		Done:          false,
		QuestionIndex: &idx,
		Question:      next.Text,
		Choices:       model.AnswerChoices(),
	}, nil
}

func (s *InterviewService) finish(ctx context.Context, session *model.Session) (*model.NextResponse, error) {
	result, err := engine.Finalize(session)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Set(ctx, session); err != nil {
		log.Printf("interview: store ended session %s: %v", session.ID, err)
	}
	s.dropLock(session.ID)

	report := &model.GameResult{
		SessionID:       session.ID,
		PredictedClass:  result.Prediction,
		Confidences:     result.Confidences,
		AskedQuestions:  session.AskedQuestions,
		AreaCounts:      session.AreaCounts,
		PositiveAnswers: session.PositiveAnswerCount,
		TotalQuestions:  len(session.AskedQuestions),
		IsUncertain:     result.Uncertain,
	}
	if err := s.results.Save(ctx, report); err != nil {
		// The caller still gets the verdict; a lost report only
		// degrades the global statistics.
		log.Printf("interview: save game result for %s: %v", session.ID, err)
	}

	return &model.NextResponse{
		Done:        true,
		Prediction:  result.Prediction,
		Confidences: result.Confidences,
	}, nil
}
