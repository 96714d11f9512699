package commands

import (
	"testing"
)

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		query     string
		wantScore int
		wantMin   int // use this for relative comparisons
	}{
		{
			name:      "exact match",
			target:    "summary",
			query:     "summary",
			wantScore: 150, // 100 for contains + 50 for prefix
		},
		{
			name:      "prefix match",
			target:    "contact.email",
			query:     "contact",
			wantScore: 150,
		},
		{
			name:      "substring match",
			target:    "work[0].title",
			query:     "title",
			wantScore: 100, // contains only
		},
		{
			name:    "fuzzy match across separators",
			target:  "contact.social[1].url",
			query:   "csu",
			wantMin: 1,
		},
		{
			name:      "no match",
			target:    "summary",
			query:     "xyz",
			wantScore: 0,
		},
		{
			name:      "empty query",
			target:    "summary",
			query:     "",
			wantScore: 0,
		},
		{
			name:    "case insensitive",
			target:  "Senior Backend Engineer",
			query:   "backend",
			wantMin: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := FuzzyScore(tt.target, tt.query)

			if tt.wantScore > 0 {
				if score != tt.wantScore {
					t.Errorf("expected score %d, got %d", tt.wantScore, score)
				}
			} else if tt.wantMin > 0 {
				if score < tt.wantMin {
					t.Errorf("expected score >= %d, got %d", tt.wantMin, score)
				}
			} else if score != 0 {
				t.Errorf("expected score 0, got %d", score)
			}
		})
	}
}

func TestFuzzySort(t *testing.T) {
	fields := []FieldRef{
		{Key: "name", Text: "Alex Morgan"},
		{Key: "work[0].company", Text: "Northwind Logistics"},
		{Key: "work[0].title", Text: "Senior Backend Engineer"},
		{Key: "about", Text: "Backend Developer"},
	}

	sorted := FuzzySort(fields, "backend")

	if len(sorted) != 2 {
		t.Fatalf("expected 2 results, got %d", len(sorted))
	}
	if sorted[0].Key != "about" {
		t.Errorf("prefix match should rank first, got %s", sorted[0].Key)
	}

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Score > sorted[i-1].Score {
			t.Errorf("results not sorted by score at index %d", i)
		}
	}
}

func TestSearchCommand(t *testing.T) {
	store := newTestStore(t)

	if got := NewSearchCommand(store, "e").Execute(); got != nil {
		t.Errorf("single character query should return nil, got %d results", len(got))
	}

	results := NewSearchCommand(store, "email").Execute()
	if len(results) == 0 || results[0].Key != "contact.email" {
		t.Fatalf("expected contact.email first, got %+v", results)
	}
}
