package model

import "time"

// DeadlineLayout is the canonical calendar-date form. Lexicographic order of
// deadlines equals chronological order.
const DeadlineLayout = "2006-01-02"

type Task struct {
	ID          int64     `json:"id" yaml:"id" toml:"id"`
	Title       string    `json:"title" yaml:"title" toml:"title"`
	Description string    `json:"description" yaml:"description" toml:"description"`
	Deadline    string    `json:"deadline" yaml:"deadline" toml:"deadline"`
	Priority    int       `json:"priority" yaml:"priority" toml:"priority"`
	Completed   bool      `json:"completed" yaml:"completed" toml:"completed"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at" toml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at" toml:"updated_at"`
}

type StatusFilter int

const (
	StatusAll StatusFilter = iota
	StatusCompleted
	StatusIncomplete
)

// FilterState is session-local view state. Priority 0 means "all".
type FilterState struct {
	Status   StatusFilter
	Priority int
}

func (f FilterState) Matches(t Task) bool {
	switch f.Status {
	case StatusCompleted:
		if !t.Completed {
			return false
		}
	case StatusIncomplete:
		if t.Completed {
			return false
		}
	}
	return f.Priority == 0 || t.Priority == f.Priority
}

// ValidDeadline reports whether s is a calendar date in canonical YYYY-MM-DD
// form. Parseable but non-canonical input (e.g. "2024-1-2") is rejected so
// stored deadlines always compare correctly as strings.
func ValidDeadline(s string) bool {
	d, err := time.Parse(DeadlineLayout, s)
	return err == nil && d.Format(DeadlineLayout) == s
}

func ValidPriority(p int) bool {
	return p >= 1 && p <= 5
}
