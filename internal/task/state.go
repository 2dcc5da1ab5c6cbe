package task

// State is the whole session: ordered tasks (newest first) and the active
// filter. Transitions never modify the receiver's slice.
type State struct {
	Tasks  []Task
	Filter Filter
}

func NewState(tasks []Task) State {
	return State{Tasks: tasks, Filter: FilterAll}
}

func (s State) Find(id string) (Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

func (s State) Visible() []Task {
	return s.Filter.Apply(s.Tasks)
}

// Remaining counts incomplete tasks across the whole store.
func (s State) Remaining() int {
	n := 0
	for _, t := range s.Tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

func (s State) HasCompleted() bool {
	return s.Remaining() < len(s.Tasks)
}

func (s State) Prepend(t Task) State {
	tasks := make([]Task, 0, len(s.Tasks)+1)
	tasks = append(tasks, t)
	tasks = append(tasks, s.Tasks...)
	s.Tasks = tasks
	return s
}

// Toggled flips completion of the task with id. ok is false when no task
// matched and the state is returned as is.
func (s State) Toggled(id string) (State, bool) {
	return s.replace(id, func(t Task) Task {
		t.Completed = !t.Completed
		return t
	})
}

// Renamed replaces the text of the task with id. text must already be
// trimmed and non-empty.
func (s State) Renamed(id, text string) (State, bool) {
	return s.replace(id, func(t Task) Task {
		t.Text = text
		return t
	})
}

func (s State) Without(id string) (State, bool) {
	if _, ok := s.Find(id); !ok {
		return s, false
	}
	s.Tasks = s.keep(func(t Task) bool { return t.ID != id })
	return s, true
}

func (s State) WithoutCompleted() (State, bool) {
	if !s.HasCompleted() {
		return s, false
	}
	s.Tasks = s.keep(func(t Task) bool { return !t.Completed })
	return s, true
}

func (s State) WithFilter(f Filter) State {
	s.Filter = f
	return s
}

func (s State) replace(id string, fn func(Task) Task) (State, bool) {
	found := false
	tasks := make([]Task, len(s.Tasks))
	for i, t := range s.Tasks {
		if t.ID == id {
			t = fn(t)
			found = true
		}
		tasks[i] = t
	}
	if !found {
		return s, false
	}
	s.Tasks = tasks
	return s, true
}

func (s State) keep(pred func(Task) bool) []Task {
	out := make([]Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}
