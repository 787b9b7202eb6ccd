// Package store implements the task state engine: it owns the in-memory
// collection and the id sequence, and keeps both consistent with durable
// state by persisting the whole collection after every successful mutation.
package store

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mkarpenko/tasklist/internal/model"
	"github.com/mkarpenko/tasklist/internal/storage"
)

// TaskParams carries the four caller-editable fields of a task.
type TaskParams struct {
	Title       string
	Description string
	Deadline    string
	Priority    int
}

// Store is the single owner of the collection. It is not safe for concurrent
// use; the system model is one logical actor issuing one command at a time.
type Store struct {
	adapter storage.Adapter
	logger  *zap.Logger
	tasks   []model.Task
	nextID  int64
	now     func() time.Time
}

// New loads the persisted collection and recomputes the id counter from it.
// Nothing stored, or nothing decodable, starts an empty collection. The
// counter is always derived from data so externally edited storage cannot
// push it below an existing id.
func New(ctx context.Context, adapter storage.Adapter, logger *zap.Logger) (*Store, error) {
	tasks, err := adapter.Load(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}

	var maxID int64
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}

	logger.Debug("collection loaded",
		zap.Int("tasks", len(tasks)),
		zap.Int64("next_id", maxID+1),
	)

	return &Store{
		adapter: adapter,
		logger:  logger,
		tasks:   tasks,
		nextID:  maxID + 1,
		now:     time.Now,
	}, nil
}

// Collection returns a copy of the full collection in creation order.
func (s *Store) Collection() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Create(ctx context.Context, p TaskParams) (model.Task, error) {
	p, err := validate(p)
	if err != nil {
		return model.Task{}, err
	}

	now := s.now()
	t := model.Task{
		ID:          s.nextID,
		Title:       p.Title,
		Description: p.Description,
		Deadline:    p.Deadline,
		Priority:    p.Priority,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.tasks = append(s.tasks, t)
	s.nextID++

	if err := s.persist(ctx, "create"); err != nil {
		return model.Task{}, err
	}

	s.logger.Debug("task created", zap.Int64("id", t.ID), zap.String("title", t.Title))
	return t, nil
}

func (s *Store) Update(ctx context.Context, id int64, p TaskParams) (model.Task, error) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, &NotFoundError{ID: id}
	}

	p, err := validate(p)
	if err != nil {
		return model.Task{}, err
	}

	t := &s.tasks[i]
	t.Title = p.Title
	t.Description = p.Description
	t.Deadline = p.Deadline
	t.Priority = p.Priority
	t.UpdatedAt = s.now()

	if err := s.persist(ctx, "update"); err != nil {
		return model.Task{}, err
	}

	s.logger.Debug("task updated", zap.Int64("id", id))
	return *t, nil
}

// SetCompleted sets the completion flag. Setting an already-equal value still
// refreshes UpdatedAt and persists.
func (s *Store) SetCompleted(ctx context.Context, id int64, completed bool) (model.Task, error) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, &NotFoundError{ID: id}
	}

	t := &s.tasks[i]
	t.Completed = completed
	t.UpdatedAt = s.now()

	if err := s.persist(ctx, "set_completed"); err != nil {
		return model.Task{}, err
	}

	s.logger.Debug("task completion set", zap.Int64("id", id), zap.Bool("completed", completed))
	return *t, nil
}

// Delete removes the task permanently. The id is never reused; the counter
// only ever moves forward.
func (s *Store) Delete(ctx context.Context, id int64) error {
	i := s.index(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)

	if err := s.persist(ctx, "delete"); err != nil {
		return err
	}

	s.logger.Debug("task deleted", zap.Int64("id", id))
	return nil
}

func (s *Store) index(id int64) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist(ctx context.Context, op string) error {
	if err := s.adapter.Save(ctx, s.tasks); err != nil {
		s.logger.Error("persist failed", zap.String("op", op), zap.Error(err))
		return &PersistenceError{Op: op, Err: err}
	}
	return nil
}

func validate(p TaskParams) (TaskParams, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return p, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	p.Description = strings.TrimSpace(p.Description)
	if p.Description == "" {
		return p, &ValidationError{Field: "description", Reason: "must not be empty"}
	}

	if !model.ValidDeadline(p.Deadline) {
		return p, &ValidationError{Field: "deadline", Reason: "must be a date in YYYY-MM-DD form"}
	}

	if !model.ValidPriority(p.Priority) {
		return p, &ValidationError{Field: "priority", Reason: "must be between 1 and 5"}
	}
	return p, nil
}
