package domain

// Movie is a catalog item. Progress is computed server-side and only displayed.
type Movie struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Language         string     `json:"language"`
	Difficulty       Difficulty `json:"difficulty"`
	Rating           float64    `json:"rating"`
	Duration         string     `json:"duration"`
	Scenes           string     `json:"scenes"`
	Progress         int        `json:"progress"`
	Thumbnail        string     `json:"thumbnail"`
	TotalLessons     int        `json:"totalLessons"`
	CompletedLessons int        `json:"completedLessons"`
}

// InProgress reports whether the learner has started but not finished the movie.
func (m Movie) InProgress() bool {
	return m.Progress > 0 && m.Progress < 100
}

// Completed reports whether every lesson of the movie is done.
func (m Movie) Completed() bool {
	return m.Progress >= 100
}

// FilterByLanguage returns the movies in the given language.
// An empty language or "All" returns the input unchanged.
func FilterByLanguage(movies []Movie, language string) []Movie {
	if language == "" || language == "All" {
		return movies
	}
	out := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if m.Language == language {
			out = append(out, m)
		}
	}
	return out
}
