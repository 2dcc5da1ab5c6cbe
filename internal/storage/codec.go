package storage

import (
	"encoding/json"
	"errors"
	"log/slog"

	"taskpad/internal/task"
)

// Load reads the task list from slot. Any failure (missing slot, read
// error, malformed content) yields an empty list.
func Load(slot Slot, logger *slog.Logger) []task.Task {
	if logger == nil {
		logger = slog.Default()
	}
	data, err := slot.Read()
	if err != nil {
		if !errors.Is(err, ErrNoSlot) {
			logger.Warn("read slot failed", "slot", slot.Name(), "err", err)
		}
		return []task.Task{}
	}
	tasks, err := Decode(data)
	if err != nil {
		logger.Warn("discarding unreadable slot", "slot", slot.Name(), "err", err)
		return []task.Task{}
	}
	logger.Debug("loaded tasks", "slot", slot.Name(), "count", len(tasks))
	return tasks
}

// Save overwrites slot with the full list.
func Save(slot Slot, tasks []task.Task) error {
	data, err := Encode(tasks)
	if err != nil {
		return err
	}
	return slot.Write(data)
}

func Encode(tasks []task.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	return json.Marshal(tasks)
}

func Decode(data []byte) ([]task.Task, error) {
	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	return tasks, nil
}
