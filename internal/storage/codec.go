package storage

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/mkarpenko/tasklist/internal/model"
)

// document is the serialized form shared by all adapters: field-named records
// under a "tasks" key, timestamps in RFC 3339, deadlines as YYYY-MM-DD.
type document struct {
	Tasks []model.Task `json:"tasks" yaml:"tasks" toml:"tasks"`
}

func encodeJSON(tasks []model.Task) ([]byte, error) {
	return json.MarshalIndent(document{Tasks: tasks}, "", "  ")
}

// decodeJSON reads a persisted document without trusting it. The top level
// failing to parse yields an empty collection; individual records that fail
// to parse are dropped.
func decodeJSON(data []byte) []model.Task {
	var doc struct {
		Tasks []json.RawMessage `json:"tasks"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}

	records := make([]model.Task, 0, len(doc.Tasks))
	for _, raw := range doc.Tasks {
		var t model.Task
		if err := json.Unmarshal(raw, &t); err != nil {
			continue
		}
		records = append(records, t)
	}
	return sanitize(records)
}

// sanitize enforces the collection invariants on loaded records: records
// without a usable identity are dropped, duplicate ids keep the first
// occurrence, and repairable fields are coerced rather than rejected.
func sanitize(records []model.Task) []model.Task {
	seen := make(map[int64]struct{}, len(records))
	tasks := make([]model.Task, 0, len(records))

	for _, t := range records {
		if t.ID <= 0 {
			continue
		}
		if strings.TrimSpace(t.Title) == "" {
			continue
		}
		if !model.ValidDeadline(t.Deadline) {
			continue
		}
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}

		if t.Priority < 1 {
			t.Priority = 1
		} else if t.Priority > 5 {
			t.Priority = 5
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = time.Now()
		}
		if t.UpdatedAt.Before(t.CreatedAt) {
			t.UpdatedAt = t.CreatedAt
		}
		tasks = append(tasks, t)
	}
	return tasks
}
