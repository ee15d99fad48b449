package mockdata

import (
	"time"

	"github.com/heartmarshall/cinefluent/internal/domain"
)

func ptr[T any](v T) *T { return &v }

var movies = []domain.Movie{
	{ID: "1", Title: "Finding Nemo", Language: "Spanish", Difficulty: domain.DifficultyBeginner, Rating: 4.8, Duration: "100 min", Scenes: "12 scenes", Progress: 35, Thumbnail: "🐠", TotalLessons: 12, CompletedLessons: 4},
	{ID: "2", Title: "Toy Story", Language: "Spanish", Difficulty: domain.DifficultyBeginner, Rating: 4.9, Duration: "81 min", Scenes: "10 scenes", Progress: 100, Thumbnail: "🤠", TotalLessons: 10, CompletedLessons: 10},
	{ID: "3", Title: "Ratatouille", Language: "French", Difficulty: domain.DifficultyIntermediate, Rating: 4.7, Duration: "111 min", Scenes: "15 scenes", Progress: 0, Thumbnail: "🐭", TotalLessons: 15, CompletedLessons: 0},
	{ID: "4", Title: "The Incredibles", Language: "Spanish", Difficulty: domain.DifficultyIntermediate, Rating: 4.6, Duration: "115 min", Scenes: "14 scenes", Progress: 20, Thumbnail: "💪", TotalLessons: 14, CompletedLessons: 3},
	{ID: "5", Title: "Monsters, Inc.", Language: "German", Difficulty: domain.DifficultyBeginner, Rating: 4.5, Duration: "92 min", Scenes: "11 scenes", Progress: 0, Thumbnail: "👹", TotalLessons: 11, CompletedLessons: 0},
	{ID: "6", Title: "Coco", Language: "Spanish", Difficulty: domain.DifficultyIntermediate, Rating: 4.9, Duration: "105 min", Scenes: "13 scenes", Progress: 60, Thumbnail: "💀", TotalLessons: 13, CompletedLessons: 8},
	{ID: "7", Title: "Frozen", Language: "French", Difficulty: domain.DifficultyBeginner, Rating: 4.7, Duration: "102 min", Scenes: "12 scenes", Progress: 0, Thumbnail: "❄️", TotalLessons: 12, CompletedLessons: 0},
	{ID: "8", Title: "Moana", Language: "Spanish", Difficulty: domain.DifficultyIntermediate, Rating: 4.8, Duration: "107 min", Scenes: "14 scenes", Progress: 45, Thumbnail: "🌊", TotalLessons: 14, CompletedLessons: 6},
}

var vocabulary = []domain.VocabularyItem{
	{Word: "océano", Translation: "ocean", Pronunciation: "/oh-SEH-ah-no/", Example: "El pez vive en el océano."},
	{Word: "familia", Translation: "family", Pronunciation: "/fah-MEE-lee-ah/", Example: "Mi familia es muy grande."},
	{Word: "aventura", Translation: "adventure", Pronunciation: "/ah-ben-TOO-rah/", Example: "Esta es una gran aventura."},
	{Word: "amistad", Translation: "friendship", Pronunciation: "/ah-mees-TAHD/", Example: "La amistad es muy importante."},
}

var quiz = []domain.QuizQuestion{
	{
		ID: "1", Type: domain.QuizTypeMultipleChoice,
		Question:      "What does 'océano' mean?",
		Options:       []string{"river", "ocean", "lake", "sea"},
		CorrectAnswer: "ocean",
		Explanation:   ptr("'Océano' means ocean in Spanish."),
	},
	{
		ID: "2", Type: domain.QuizTypeMultipleChoice,
		Question:      "How do you say 'family' in Spanish?",
		Options:       []string{"amigo", "familia", "casa", "comida"},
		CorrectAnswer: "familia",
		Explanation:   ptr("'Familia' means family in Spanish."),
	},
	{
		ID: "3", Type: domain.QuizTypeFillBlank,
		Question:      "Complete: 'Mi _____ es grande.'",
		CorrectAnswer: "familia",
		Explanation:   ptr("The correct word is 'familia' (family)."),
	},
}

var lessons = []domain.Lesson{
	{
		ID: "1", MovieID: "1",
		Title:       "Meeting Nemo",
		Subtitle:    "Hola, soy Nemo. Vivo en el océano con mi familia.",
		Translation: "Hello, I am Nemo. I live in the ocean with my family.",
		AudioURL:    "/audio/lesson1.mp3",
		Timestamp:   "00:03:24",
		Vocabulary:  vocabulary[:3],
		Quiz:        quiz[:2],
	},
	{
		ID: "2", MovieID: "1",
		Title:       "The Great Barrier Reef",
		Subtitle:    "Este es nuestro hogar, el arrecife de coral.",
		Translation: "This is our home, the coral reef.",
		AudioURL:    "/audio/lesson2.mp3",
		Timestamp:   "00:05:12",
		Vocabulary: []domain.VocabularyItem{
			{Word: "hogar", Translation: "home", Pronunciation: "/oh-GAHR/", Example: "Mi hogar está en el océano."},
			{Word: "arrecife", Translation: "reef", Pronunciation: "/ah-reh-SEE-feh/", Example: "El arrecife es hermoso."},
		},
		Quiz: []domain.QuizQuestion{
			{
				ID: "4", Type: domain.QuizTypeMultipleChoice,
				Question:      "What does 'hogar' mean?",
				Options:       []string{"house", "home", "hotel", "hospital"},
				CorrectAnswer: "home",
				Explanation:   ptr("'Hogar' means home in Spanish."),
			},
		},
		Completed: true,
	},
}

var achievements = []domain.Achievement{
	{ID: "first_movie", Title: "First Movie", Description: "Complete your first movie", Status: domain.AchievementEarned, Icon: "🎬", Color: "primary", EarnedDate: ptr("2 days ago")},
	{ID: "week_warrior", Title: "Week Warrior", Description: "7-day learning streak", Status: domain.AchievementEarned, Icon: "🔥", Color: "warning", EarnedDate: ptr("1 week ago")},
	{ID: "vocabulary_master", Title: "Vocabulary Master", Description: "Learn 500 new words", Status: domain.AchievementInProgress, Icon: "📚", Color: "success", Progress: ptr(69)},
	{ID: "polyglot", Title: "Polyglot", Description: "Study 3 different languages", Status: domain.AchievementLocked, Icon: "🌍", Color: "muted"},
}

var seedPosts = []domain.CommunityPost{
	{ID: "1", User: "Sarah Chen", Initials: "SC", Time: "2m ago", Content: "Just finished Toy Story in Spanish! The vocabulary was perfect for beginners 🎬", Likes: 12, Badge: ptr("crown"), Streak: 28},
	{ID: "2", User: "Miguel Rodriguez", Initials: "MR", Time: "15m ago", Content: "Does anyone know where I can watch Finding Nemo with French subtitles?", Likes: 5, IsLiked: true, Badge: ptr("medal"), Streak: 21},
	{ID: "3", User: "Emma Thompson", Initials: "ET", Time: "1h ago", Content: "Tip: Use the 'Export to Anki' feature after each lesson. It's been a game changer for retention! 🧠", Likes: 23, Badge: ptr("award"), Streak: 19},
	{ID: "4", User: "Carlos Rodriguez", Initials: "CR", Time: "2h ago", Content: "Finished my first week on CineFluent! Already learned 50+ new words through movies 🚀", Likes: 8, Streak: 7},
}

var leaderboard = []domain.LeaderboardEntry{
	{Rank: 1, Name: "Sarah Chen", Points: 2847, Streak: 28, Change: "+5", Badge: ptr("crown"), Avatar: "SC", Level: "Expert"},
	{Rank: 2, Name: "Miguel Rodriguez", Points: 2651, Streak: 21, Change: "+2", Badge: ptr("medal"), Avatar: "MR", Level: "Advanced"},
	{Rank: 3, Name: "Emma Thompson", Points: 2398, Streak: 19, Change: "-1", Badge: ptr("award"), Avatar: "ET", Level: "Advanced"},
	{Rank: 4, Name: "You", Points: 1847, Streak: 12, Change: "+3", Avatar: "YU", Level: "Intermediate", IsCurrentUser: true},
	{Rank: 5, Name: "Akira Tanaka", Points: 1654, Streak: 15, Change: "0", Avatar: "AT", Level: "Intermediate"},
	{Rank: 6, Name: "Maria Garcia", Points: 1432, Streak: 9, Change: "+1", Avatar: "MG", Level: "Beginner"},
}

var languages = []domain.LanguageProgress{
	{Name: "Spanish", Level: "Intermediate B1", Progress: 65, Flag: "🇪🇸", WordsLearned: 847, NextMilestone: "Advanced"},
	{Name: "French", Level: "Beginner A2", Progress: 30, Flag: "🇫🇷", WordsLearned: 234, NextMilestone: "Intermediate"},
	{Name: "German", Level: "Beginner A1", Progress: 15, Flag: "🇩🇪", WordsLearned: 89, NextMilestone: "A2 Level"},
}

var stats = domain.UserStats{
	Streak:       domain.StreakStats{Current: 12, Longest: 28, WeeklyGoal: 5, WeeklyProgress: 3},
	Vocabulary:   domain.VocabularyStats{TotalWords: 1247, WeeklyWords: 47, MasterLevel: 892},
	Time:         domain.TimeStats{TotalTime: "47h 23m", WeeklyTime: "3h 45m", AverageTime: "23m"},
	Movies:       domain.MovieStats{Completed: 3, InProgress: 2, TotalAvailable: len(movies)},
	Achievements: domain.AchievementStats{Earned: 8, InProgress: 3, Total: 15},
	Ranking:      domain.RankingStats{CurrentRank: 4, Points: 1847, NextRankPoints: 2000},
}

// Seeded accounts. The demo account is the one offline mode signs in as.
const (
	DemoEmail    = "demo@cinefluent.com"
	DemoPassword = "demo123"
	DemoUserID   = "1"

	testPassword = "test123"
)

var demoUser = domain.User{
	ID: DemoUserID, Email: DemoEmail, Name: "Demo User",
	Level: "Intermediate B1", Streak: 12, TotalWords: 1247, StudyTime: "47h 23m",
}

var seedUsers = []struct {
	user     domain.User
	password string
}{
	{demoUser, DemoPassword},
	{domain.User{ID: "2", Email: "test@cinefluent.com", Name: "Test User", Level: "Beginner A1", Streak: 5, TotalWords: 234, StudyTime: "12h 45m"}, testPassword},
	{domain.User{ID: "3", Email: "sarah@cinefluent.com", Name: "Sarah Chen", Level: "Expert", Streak: 28, TotalWords: 2847, StudyTime: "156h 30m"}, testPassword},
}

// activityDays is the length of the activity history served.
const activityDays = 35

// weeklyActivity builds activityDays days of history ending the day before
// now. Every seventh day is a rest day; the others ramp from one to three lessons
// at twenty minutes each.
func weeklyActivity(now time.Time) []domain.WeeklyActivity {
	base := now.AddDate(0, 0, -activityDays)
	out := make([]domain.WeeklyActivity, 0, activityDays)
	for i := range activityDays {
		lessons := 0
		if i%7 != 0 {
			lessons = int(3 * (0.5 + 0.5*float64(i%7)/6))
		}
		out = append(out, domain.WeeklyActivity{
			Date:             base.AddDate(0, 0, i).Format(time.DateOnly),
			LessonsCompleted: lessons,
			TimeSpent:        lessons * 20,
		})
	}
	return out
}
