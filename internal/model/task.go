package model

import "strings"

// Task is the domain model for a todo entry.
type Task struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// TaskList is ordered most recent first. Mutating operations never touch the
// receiver; they return a new list.
type TaskList []Task

// Counters are derived from a TaskList on demand and never stored.
type Counters struct {
	Total     int
	Completed int
}

// Add trims input and, when something is left, returns a new list with the
// created task in front. Blank input returns the receiver and ok=false.
func (l TaskList) Add(input string, newID IDFunc) (TaskList, Task, bool) {
	text := strings.TrimSpace(input)
	if text == "" {
		return l, Task{}, false
	}
	if newID == nil {
		newID = NewID
	}
	t := Task{ID: newID(), Text: text}

	out := make(TaskList, 0, len(l)+1)
	out = append(out, t)
	out = append(out, l...)
	return out, t, true
}

// Toggle returns a new list where the task matching id has Done inverted.
// Unknown ids return the receiver and ok=false.
func (l TaskList) Toggle(id string) (TaskList, bool) {
	i := l.index(id)
	if i < 0 {
		return l, false
	}
	out := make(TaskList, len(l))
	copy(out, l)
	t := out[i]
	t.Done = !t.Done
	out[i] = t
	return out, true
}

// Find looks a task up by id.
func (l TaskList) Find(id string) (Task, bool) {
	if i := l.index(id); i >= 0 {
		return l[i], true
	}
	return Task{}, false
}

func (l TaskList) Len() int { return len(l) }

func (l TaskList) Counters() Counters {
	c := Counters{Total: len(l)}
	for _, t := range l {
		if t.Done {
			c.Completed++
		}
	}
	return c
}

func (l TaskList) index(id string) int {
	for i, t := range l {
		if t.ID == id {
			return i
		}
	}
	return -1
}
