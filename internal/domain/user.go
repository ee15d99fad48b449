package domain

// User is the authenticated learner together with a snapshot of their
// learning profile. The client never mutates it locally.
type User struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Avatar     *string `json:"avatar,omitempty"`
	Level      string  `json:"level"`
	Streak     int     `json:"streak"`
	TotalWords int     `json:"totalWords"`
	StudyTime  string  `json:"studyTime"`
}

// AuthResult is the response to a successful login or registration.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// LanguageProgress is the learner's standing in one target language.
type LanguageProgress struct {
	Name          string `json:"name"`
	Level         string `json:"level"`
	Progress      int    `json:"progress"`
	Flag          string `json:"flag"`
	WordsLearned  int    `json:"wordsLearned"`
	NextMilestone string `json:"nextMilestone"`
}

// UserStats is the detailed statistics block shown on the profile.
type UserStats struct {
	Streak       StreakStats      `json:"streak"`
	Vocabulary   VocabularyStats  `json:"vocabulary"`
	Time         TimeStats        `json:"time"`
	Movies       MovieStats       `json:"movies"`
	Achievements AchievementStats `json:"achievements"`
	Ranking      RankingStats     `json:"ranking"`
}

type StreakStats struct {
	Current        int `json:"current"`
	Longest        int `json:"longest"`
	WeeklyGoal     int `json:"weeklyGoal"`
	WeeklyProgress int `json:"weeklyProgress"`
}

type VocabularyStats struct {
	TotalWords  int `json:"totalWords"`
	WeeklyWords int `json:"weeklyWords"`
	MasterLevel int `json:"masterLevel"`
}

type TimeStats struct {
	TotalTime   string `json:"totalTime"`
	WeeklyTime  string `json:"weeklyTime"`
	AverageTime string `json:"averageSession"`
}

type MovieStats struct {
	Completed      int `json:"completed"`
	InProgress     int `json:"inProgress"`
	TotalAvailable int `json:"totalAvailable"`
}

type AchievementStats struct {
	Earned     int `json:"earned"`
	InProgress int `json:"inProgress"`
	Total      int `json:"total"`
}

type RankingStats struct {
	CurrentRank    int `json:"currentRank"`
	Points         int `json:"points"`
	NextRankPoints int `json:"nextRankPoints"`
}
