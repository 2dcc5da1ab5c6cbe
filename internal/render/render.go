// Package render projects task state into something a screen can show: a
// plain View for the terminal UI and an HTML fragment for export.
package render

import (
	"fmt"
	"strings"
	"time"

	"taskpad/internal/task"
)

// AddedLayout formats creation times as 2-digit hour and minute.
const AddedLayout = "03:04 PM"

const (
	EmptyIcon    = "☕"
	EmptyMessage = "No tasks here. Add one to get started."
)

type Row struct {
	ID        string
	Text      string
	Completed bool
	Added     string
}

type View struct {
	Filter  task.Filter
	Rows    []Row
	Empty   bool
	Summary string
}

// Project builds the view for s. Creation times are shown in loc; a nil loc
// means local time.
func Project(s task.State, loc *time.Location) View {
	if loc == nil {
		loc = time.Local
	}
	visible := s.Visible()
	rows := make([]Row, 0, len(visible))
	for _, t := range visible {
		rows = append(rows, Row{
			ID:        t.ID,
			Text:      task.Printable(t.Text),
			Completed: t.Completed,
			Added:     t.CreatedAt.In(loc).Format(AddedLayout),
		})
	}
	return View{
		Filter:  s.Filter,
		Rows:    rows,
		Empty:   len(rows) == 0,
		Summary: Summary(s.Tasks),
	}
}

// Summary describes the whole list regardless of the active filter.
func Summary(tasks []task.Task) string {
	total := len(tasks)
	remaining := 0
	for _, t := range tasks {
		if !t.Completed {
			remaining++
		}
	}
	switch {
	case total == 0:
		return "No tasks"
	case remaining == 0:
		return fmt.Sprintf("%d tasks • All done 🎯", total)
	default:
		return fmt.Sprintf("%d of %d tasks remaining", remaining, total)
	}
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape replaces &, < and > only. Quotes pass through untouched.
func Escape(s string) string {
	return escaper.Replace(s)
}
