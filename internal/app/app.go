package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"taskpad/internal/render"
	"taskpad/internal/storage"
	"taskpad/internal/task"
)

type Options struct {
	Slot     storage.Slot
	Commands task.Commands
	// Location is used for the "Added at" times. Nil means local time.
	Location *time.Location
	Logger   *slog.Logger
}

// App owns the session state and writes it back to the slot after every
// change. It is not safe for concurrent use; callers drive it from a single
// event loop.
type App struct {
	slot   storage.Slot
	cmds   task.Commands
	state  task.State
	loc    *time.Location
	logger *slog.Logger
}

// New loads the slot and starts with the "all" filter.
func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &App{
		slot:   opts.Slot,
		cmds:   opts.Commands,
		state:  task.NewState(storage.Load(opts.Slot, logger)),
		loc:    opts.Location,
		logger: logger,
	}
}

func (a *App) State() task.State { return a.state }

func (a *App) View() render.View {
	return render.Project(a.state, a.loc)
}

func (a *App) Add(input string) (bool, error) {
	return a.Commit(a.cmds.Add(a.state, input))
}

func (a *App) Toggle(id string) (bool, error) {
	return a.Commit(a.cmds.Toggle(a.state, id))
}

func (a *App) Edit(id string) (bool, error) {
	return a.Commit(a.cmds.Edit(a.state, id))
}

func (a *App) Delete(id string) (bool, error) {
	return a.Commit(a.cmds.Delete(a.state, id))
}

func (a *App) ClearCompleted() (bool, error) {
	return a.Commit(a.cmds.ClearCompleted(a.state))
}

// SetFilter changes what is visible. Nothing is written.
func (a *App) SetFilter(f task.Filter) {
	a.state = a.cmds.SetFilter(a.state, f)
}

// Commit adopts next when changed is true and persists it. The in-memory
// state is kept even if the write fails; the error is returned for display.
func (a *App) Commit(next task.State, changed bool) (bool, error) {
	if !changed {
		return false, nil
	}
	a.state = next
	if err := storage.Save(a.slot, a.state.Tasks); err != nil {
		a.logger.Warn("save failed", "slot", a.slot.Name(), "err", err)
		return true, fmt.Errorf("save tasks: %w", err)
	}
	a.logger.Debug("saved tasks", "slot", a.slot.Name(), "count", len(a.state.Tasks))
	return true, nil
}
