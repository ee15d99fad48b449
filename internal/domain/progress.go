package domain

import (
	"strings"
	"time"
)

// Progress is the outbound record sent after a lesson quiz completes.
// TimeSpent is in seconds.
type Progress struct {
	LessonID           string   `json:"lessonId"`
	Completed          bool     `json:"completed"`
	Score              int      `json:"score"`
	TimeSpent          int      `json:"timeSpent"`
	VocabularyMastered []string `json:"vocabularyMastered"`
}

// NewProgress builds a Progress record, clamping score to 0..100 and
// rounding the elapsed time down to whole seconds.
func NewProgress(lessonID string, score int, elapsed time.Duration, mastered []string) Progress {
	score = max(0, min(100, score))
	if mastered == nil {
		mastered = []string{}
	}
	return Progress{
		LessonID:           lessonID,
		Completed:          true,
		Score:              score,
		TimeSpent:          int(max(0, elapsed) / time.Second),
		VocabularyMastered: mastered,
	}
}

// Validate checks the fields the backend rejects outright.
func (p Progress) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(p.LessonID) == "" {
		errs = append(errs, FieldError{Field: "lessonId", Message: "required"})
	}
	if p.Score < 0 || p.Score > 100 {
		errs = append(errs, FieldError{Field: "score", Message: "must be between 0 and 100"})
	}
	if p.TimeSpent < 0 {
		errs = append(errs, FieldError{Field: "timeSpent", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// WeeklyActivity is one day of the activity heatmap. TimeSpent is in minutes.
type WeeklyActivity struct {
	Date             string `json:"date"`
	LessonsCompleted int    `json:"lessonsCompleted"`
	TimeSpent        int    `json:"timeSpent"`
}

// Achievement is a badge the learner has earned or is working towards.
type Achievement struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      AchievementStatus `json:"status"`
	Icon        string            `json:"icon"`
	Color       string            `json:"color"`
	Progress    *int              `json:"progress,omitempty"`
	EarnedDate  *string           `json:"earnedDate,omitempty"`
}
