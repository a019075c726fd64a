package practice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/simonggx/remword/internal/vocabulary"
)

// ErrNoVocabulary signals an empty practice batch. Callers show a
// "nothing to practice" state instead of starting a session.
var ErrNoVocabulary = errors.New("no vocabulary available for practice")

// ErrSessionCompleted is returned when grading is attempted after the last
// question has been answered.
var ErrSessionCompleted = errors.New("practice session already completed")

// ProgressRecorder is the slice of the vocabulary store a session needs to
// write grading outcomes back.
type ProgressRecorder interface {
	UpdateProgress(ctx context.Context, wordID int64, correct bool, exerciseType string) (*vocabulary.Progress, error)
	LogSession(ctx context.Context, exerciseType string) error
}

// State describes where a session is in its lifecycle.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted
)

// Session is an ephemeral ordered run of questions over a word batch,
// graded one at a time. Only progress updates outlive it.
type Session struct {
	ID        string
	Mode      Mode
	Questions []Question

	recorder ProgressRecorder
	state    State
	index    int
	score    int
}

// Result is the outcome of one grading event.
type Result struct {
	Correct       bool
	CorrectAnswer string
	Completed     bool
}

// NewSession generates questions for the batch and starts the session.
// An empty batch returns ErrNoVocabulary.
func NewSession(ctx context.Context, generator *Generator, mode Mode, batch []vocabulary.Entry, recorder ProgressRecorder) (*Session, error) {
	if len(batch) == 0 {
		return nil, ErrNoVocabulary
	}

	questions, err := generator.Generate(mode, batch)
	if err != nil {
		return nil, fmt.Errorf("generator.Generate() > %w", err)
	}

	if err := recorder.LogSession(ctx, string(mode)); err != nil {
		return nil, fmt.Errorf("recorder.LogSession() > %w", err)
	}

	return &Session{
		ID:        uuid.NewString(),
		Mode:      mode,
		Questions: questions,
		recorder:  recorder,
		state:     StateInProgress,
	}, nil
}

// CurrentState returns the session's lifecycle state.
func (s *Session) CurrentState() State {
	return s.state
}

// Current returns the question awaiting an answer, or nil once completed.
func (s *Session) Current() *Question {
	if s.state != StateInProgress {
		return nil
	}
	return &s.Questions[s.index]
}

// Index returns the zero-based position of the current question.
func (s *Session) Index() int {
	return s.index
}

// Score returns the count of correctly answered questions so far.
func (s *Session) Score() int {
	return s.score
}

// Grade grades the current question, records the outcome against the
// backing word, and advances the session by one question. Answering the
// last question moves the session to Completed.
func (s *Session) Grade(ctx context.Context, answer string) (Result, error) {
	if s.state != StateInProgress {
		return Result{}, ErrSessionCompleted
	}

	question := s.Questions[s.index]
	correct := question.Grade(answer)
	if correct {
		s.score++
	}

	// Every grading event writes back exactly once, right or wrong
	if _, err := s.recorder.UpdateProgress(ctx, question.Word.ID, correct, string(s.Mode)); err != nil {
		return Result{}, fmt.Errorf("recorder.UpdateProgress() > %w", err)
	}

	s.index++
	if s.index >= len(s.Questions) {
		s.state = StateCompleted
	}

	return Result{
		Correct:       correct,
		CorrectAnswer: question.CorrectAnswer,
		Completed:     s.state == StateCompleted,
	}, nil
}
