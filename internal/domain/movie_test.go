package domain

import "testing"

func TestMovie_InProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		progress       int
		wantInProgress bool
		wantCompleted  bool
	}{
		{0, false, false},
		{1, true, false},
		{99, true, false},
		{100, false, true},
	}
	for _, tt := range tests {
		m := Movie{Progress: tt.progress}
		if got := m.InProgress(); got != tt.wantInProgress {
			t.Errorf("progress %d: InProgress() = %v, want %v", tt.progress, got, tt.wantInProgress)
		}
		if got := m.Completed(); got != tt.wantCompleted {
			t.Errorf("progress %d: Completed() = %v, want %v", tt.progress, got, tt.wantCompleted)
		}
	}
}

func TestFilterByLanguage(t *testing.T) {
	t.Parallel()

	movies := []Movie{
		{ID: "1", Language: "Spanish"},
		{ID: "3", Language: "French"},
		{ID: "4", Language: "Spanish"},
	}

	if got := FilterByLanguage(movies, ""); len(got) != 3 {
		t.Errorf("empty filter: got %d movies, want 3", len(got))
	}
	if got := FilterByLanguage(movies, "All"); len(got) != 3 {
		t.Errorf("All: got %d movies, want 3", len(got))
	}
	got := FilterByLanguage(movies, "Spanish")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "4" {
		t.Errorf("Spanish: got %+v", got)
	}
	if got := FilterByLanguage(movies, "German"); len(got) != 0 {
		t.Errorf("German: got %d movies, want 0", len(got))
	}
}
