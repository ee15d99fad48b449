package domain

import "strings"

// MaxPostLength bounds the content of a community post.
const MaxPostLength = 1000

// CommunityPost is a message on the community feed.
type CommunityPost struct {
	ID       string  `json:"id"`
	User     string  `json:"user"`
	Initials string  `json:"initials"`
	Time     string  `json:"time"`
	Content  string  `json:"content"`
	Likes    int     `json:"likes"`
	IsLiked  bool    `json:"isLiked"`
	Badge    *string `json:"badge,omitempty"`
	Streak   int     `json:"streak"`
}

// LeaderboardEntry is one row of the weekly leaderboard.
type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	Name          string  `json:"name"`
	Points        int     `json:"points"`
	Streak        int     `json:"streak"`
	Change        string  `json:"change"`
	Badge         *string `json:"badge,omitempty"`
	Avatar        string  `json:"avatar"`
	Level         string  `json:"level"`
	IsCurrentUser bool    `json:"isCurrentUser"`
}

// ValidatePostContent trims content and rejects empty or oversized posts.
func ValidatePostContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", NewValidationError("content", "required")
	}
	if len([]rune(content)) > MaxPostLength {
		return "", NewValidationError("content", "too long")
	}
	return content, nil
}

// Initials returns up to two upper-case initials for a display name.
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
		if n++; n == 2 {
			break
		}
	}
	return b.String()
}
