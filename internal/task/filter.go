package task

import (
	"fmt"
	"strings"
)

type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

var filterNames = map[Filter]string{
	FilterAll:       "all",
	FilterActive:    "active",
	FilterCompleted: "completed",
}

func (f Filter) String() string {
	if name, ok := filterNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// Filters lists every filter in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

func ParseFilter(v string) (Filter, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for f, name := range filterNames {
		if name == v {
			return f, nil
		}
	}
	return FilterAll, fmt.Errorf("unknown filter %q (want all, active or completed)", v)
}

// Match reports whether t is visible under f.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Apply returns the visible tasks in store order.
func (f Filter) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
