package domain

// Lesson is a single learning unit cut from a movie scene.
type Lesson struct {
	ID          string           `json:"id"`
	MovieID     string           `json:"movieId"`
	Title       string           `json:"title"`
	Subtitle    string           `json:"subtitle"`
	Translation string           `json:"translation"`
	AudioURL    string           `json:"audioUrl"`
	Timestamp   string           `json:"timestamp"`
	Vocabulary  []VocabularyItem `json:"vocabulary"`
	Quiz        []QuizQuestion   `json:"quiz"`
	Completed   bool             `json:"completed"`
}

// VocabularyItem is immutable reference data attached to a lesson.
type VocabularyItem struct {
	Word          string `json:"word"`
	Translation   string `json:"translation"`
	Pronunciation string `json:"pronunciation"`
	Example       string `json:"example"`
}

// QuizQuestion is one question of a lesson quiz. Options is only set for
// multiple-choice questions.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Type          QuizType `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   *string  `json:"explanation,omitempty"`
}

// Check reports whether answer matches the correct answer.
// Comparison ignores case and surrounding or repeated whitespace.
func (q QuizQuestion) Check(answer string) bool {
	a := NormalizeText(answer)
	if a == "" {
		return false
	}
	return a == NormalizeText(q.CorrectAnswer)
}

// ScoreQuiz returns the percentage (0..100) of questions answered correctly.
// answers is keyed by question ID; unanswered questions count as wrong.
// An empty quiz scores 100.
func ScoreQuiz(questions []QuizQuestion, answers map[string]string) int {
	if len(questions) == 0 {
		return 100
	}
	correct := 0
	for _, q := range questions {
		if q.Check(answers[q.ID]) {
			correct++
		}
	}
	return correct * 100 / len(questions)
}
