package domain

// Difficulty is the tier a movie is rated at.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// QuizType is the variant of a quiz question.
type QuizType string

const (
	QuizTypeMultipleChoice QuizType = "multiple-choice"
	QuizTypeFillBlank      QuizType = "fill-blank"
	QuizTypeTranslation    QuizType = "translation"
)

func (q QuizType) String() string { return string(q) }

func (q QuizType) IsValid() bool {
	switch q {
	case QuizTypeMultipleChoice, QuizTypeFillBlank, QuizTypeTranslation:
		return true
	}
	return false
}

// AchievementStatus is the state of an achievement for the current user.
type AchievementStatus string

const (
	AchievementEarned     AchievementStatus = "Earned"
	AchievementInProgress AchievementStatus = "In Progress"
	AchievementLocked     AchievementStatus = "Locked"
)

func (s AchievementStatus) String() string { return string(s) }

// Theme is the persisted light/dark preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) String() string { return string(t) }

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}
