package task

import (
	"fmt"
	"time"
)

const (
	EditMessage           = "Edit task:"
	ClearCompletedMessage = "Clear all completed tasks?"
)

// ConfirmFunc asks a yes/no question and blocks until answered.
type ConfirmFunc func(message string) bool

// PromptFunc asks for text, offering initial as the default. ok is false when
// the user cancelled, which is distinct from submitting an empty string.
type PromptFunc func(message, initial string) (value string, ok bool)

// Commands are the user-triggered operations over a State. Each returns the
// next state and whether anything changed; callers persist only on change.
type Commands struct {
	Confirm ConfirmFunc
	Prompt  PromptFunc
	Now     func() time.Time
	NewID   IDFunc
}

func DeleteMessage(t Task) string {
	return fmt.Sprintf("Delete task: \"%s\"?", t.Text)
}

func (c Commands) Add(s State, input string) (State, bool) {
	text := CleanText(input)
	if text == "" {
		return s, false
	}
	return s.Prepend(New(text, c.now(), c.NewID)), true
}

func (c Commands) Toggle(s State, id string) (State, bool) {
	return s.Toggled(id)
}

func (c Commands) Edit(s State, id string) (State, bool) {
	t, ok := s.Find(id)
	if !ok || c.Prompt == nil {
		return s, false
	}
	value, ok := c.Prompt(EditMessage, t.Text)
	if !ok {
		return s, false
	}
	text := CleanText(value)
	if text == "" || text == t.Text {
		return s, false
	}
	return s.Renamed(id, text)
}

func (c Commands) Delete(s State, id string) (State, bool) {
	t, ok := s.Find(id)
	if !ok {
		return s, false
	}
	if !c.confirm(DeleteMessage(t)) {
		return s, false
	}
	return s.Without(id)
}

func (c Commands) SetFilter(s State, f Filter) State {
	return s.WithFilter(f)
}

func (c Commands) ClearCompleted(s State) (State, bool) {
	if !s.HasCompleted() {
		return s, false
	}
	if !c.confirm(ClearCompletedMessage) {
		return s, false
	}
	return s.WithoutCompleted()
}

func (c Commands) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// confirm treats a missing capability as a decline.
func (c Commands) confirm(message string) bool {
	if c.Confirm == nil {
		return false
	}
	return c.Confirm(message)
}
