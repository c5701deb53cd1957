// Package session holds the state of one quicktodo run: the task list and the
// text typed but not yet submitted. A Session has exactly one writer, the
// Bubble Tea update loop, so it carries no locking.
package session

import (
	"slices"

	"github.com/idilsaglam/quicktodo/internal/logging"
	"github.com/idilsaglam/quicktodo/internal/model"
)

type Session struct {
	tasks model.TaskList
	input string
	newID model.IDFunc
}

type Option func(*Session)

// WithIDFunc replaces the id generator (tests use a deterministic one).
func WithIDFunc(f model.IDFunc) Option {
	return func(s *Session) {
		if f != nil {
			s.newID = f
		}
	}
}

// WithTasks starts the session from an existing list. Ids must be unique:
// a task whose id was already seen is dropped, the first one wins.
func WithTasks(tasks model.TaskList) Option {
	return func(s *Session) {
		seen := make(map[string]bool, len(tasks))
		s.tasks = make(model.TaskList, 0, len(tasks))
		for _, t := range tasks {
			if seen[t.ID] {
				logging.Debugf("seed drop duplicate id=%s", t.ID)
				continue
			}
			seen[t.ID] = true
			s.tasks = append(s.tasks, t)
		}
	}
}

func New(opts ...Option) *Session {
	s := &Session{newID: model.NewID}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Input() string { return s.input }

func (s *Session) SetInput(v string) { s.input = v }

// Submit turns the input buffer into a task. Blank input changes nothing.
func (s *Session) Submit() bool {
	next, t, ok := s.tasks.Add(s.input, s.newID)
	if !ok {
		return false
	}
	s.tasks = next
	s.input = ""
	logging.Debugf("add id=%s total=%d", t.ID, next.Len())
	return true
}

// Toggle flips the completion flag of the task with the given id.
func (s *Session) Toggle(id string) bool {
	next, ok := s.tasks.Toggle(id)
	if !ok {
		return false
	}
	s.tasks = next
	if t, found := next.Find(id); found {
		logging.Debugf("toggle id=%s done=%t", id, t.Done)
	}
	return true
}

// Tasks returns a copy of the current list.
func (s *Session) Tasks() model.TaskList { return slices.Clone(s.tasks) }

func (s *Session) Counters() model.Counters { return s.tasks.Counters() }
