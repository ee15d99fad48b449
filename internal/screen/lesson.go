package screen

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/heartmarshall/cinefluent/internal/domain"
)

// lessonAPI defines the client operations needed by the Lesson screen.
type lessonAPI interface {
	GetLesson(ctx context.Context, id string) (domain.Lesson, error)
	UpdateProgress(ctx context.Context, p domain.Progress)
}

// QuizResult summarises a completed quiz.
type QuizResult struct {
	Correct  int
	Total    int
	Progress domain.Progress
}

// Lesson is the lesson player and quiz flow for one lesson.
type Lesson struct {
	api    lessonAPI
	id     string
	now    func() time.Time
	lesson *Loader[domain.Lesson]
	guard  guard

	mu      sync.Mutex
	answers map[string]string
	started time.Time
	result  *QuizResult
}

func NewLesson(api lessonAPI, lessonID string) *Lesson {
	s := &Lesson{api: api, id: lessonID, now: time.Now}
	s.lesson = NewLoader(func(ctx context.Context) (domain.Lesson, error) {
		return s.api.GetLesson(ctx, s.id)
	}, nil)
	return s
}

// Mount loads the lesson and starts a fresh attempt.
func (s *Lesson) Mount(ctx context.Context) View[domain.Lesson] {
	s.mu.Lock()
	s.answers = make(map[string]string)
	s.started = s.now()
	s.result = nil
	s.mu.Unlock()
	return s.lesson.Mount(ctx)
}

func (s *Lesson) Unmount() { s.lesson.Unmount() }

func (s *Lesson) Lesson() View[domain.Lesson] { return s.lesson.View() }

// Answer records the answer to a question and reports whether it is
// correct. Answering again replaces the previous answer.
func (s *Lesson) Answer(questionID, answer string) (bool, error) {
	q, err := s.question(questionID)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	s.answers[questionID] = answer
	s.mu.Unlock()
	return q.Check(answer), nil
}

func (s *Lesson) question(id string) (domain.QuizQuestion, error) {
	v := s.lesson.View()
	if v.Status != StatusLoaded {
		return domain.QuizQuestion{}, fmt.Errorf("screen.Lesson: lesson %s not loaded: %w", s.id, domain.ErrNotFound)
	}
	for _, q := range v.Data.Quiz {
		if q.ID == id {
			return q, nil
		}
	}
	return domain.QuizQuestion{}, fmt.Errorf("screen.Lesson: question %s: %w", id, domain.ErrNotFound)
}

// Complete scores the quiz and sends the progress record. Progress delivery
// is fire-and-forget; a second call returns the first result without
// resending. While a completion is running further calls fail with
// domain.ErrBusy.
func (s *Lesson) Complete(ctx context.Context) (QuizResult, error) {
	if err := s.guard.acquire(); err != nil {
		return QuizResult{}, err
	}
	defer s.guard.release()

	v := s.lesson.View()
	if v.Status != StatusLoaded {
		return QuizResult{}, fmt.Errorf("screen.Lesson: lesson %s not loaded: %w", s.id, domain.ErrNotFound)
	}

	s.mu.Lock()
	if s.result != nil {
		res := *s.result
		s.mu.Unlock()
		return res, nil
	}
	answers := make(map[string]string, len(s.answers))
	for k, a := range s.answers {
		answers[k] = a
	}
	elapsed := s.now().Sub(s.started)
	s.mu.Unlock()

	res := score(v.Data, answers, elapsed)
	s.api.UpdateProgress(ctx, res.Progress)

	s.mu.Lock()
	s.result = &res
	s.mu.Unlock()
	return res, nil
}

// Result returns the completed quiz, if any.
func (s *Lesson) Result() (QuizResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return QuizResult{}, false
	}
	return *s.result, true
}

// Completing reports whether a completion is in flight.
func (s *Lesson) Completing() bool { return s.guard.InFlight() }

func score(l domain.Lesson, answers map[string]string, elapsed time.Duration) QuizResult {
	correct := 0
	for _, q := range l.Quiz {
		if q.Check(answers[q.ID]) {
			correct++
		}
	}
	mastered := make([]string, 0, len(l.Vocabulary))
	for _, v := range l.Vocabulary {
		mastered = append(mastered, v.Word)
	}
	return QuizResult{
		Correct:  correct,
		Total:    len(l.Quiz),
		Progress: domain.NewProgress(l.ID, domain.ScoreQuiz(l.Quiz, answers), elapsed, mastered),
	}
}
