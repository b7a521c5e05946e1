package domain

import "time"

// BirthDateLayout is the expected format of BirthData.BirthDate.
const BirthDateLayout = "2006-01-02"

// Clock abstracts the current time for deterministic testing.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// BirthData is the user-supplied input shared by readings and questions.
type BirthData struct {
	Name       string
	BirthDate  string
	BirthTime  string
	BirthPlace string
}

// ParseBirthDate parses BirthDate using BirthDateLayout.
func (b BirthData) ParseBirthDate() (time.Time, error) {
	t, err := time.Parse(BirthDateLayout, b.BirthDate)
	if err != nil {
		return time.Time{}, ErrInvalidBirthDate
	}
	return t, nil
}

// Snippet is a single piece of search context. Either field may be empty.
type Snippet struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

// SearchInfo is the per-request augmentation produced from web search.
// It is never persisted.
type SearchInfo struct {
	ZodiacSign    Sign
	Age           int
	SearchResults []Snippet
}
