package app

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskpad/internal/storage"
	"taskpad/internal/task"
)

type failingSlot struct{ *storage.Memory }

func (failingSlot) Write([]byte) error { return errors.New("disk full") }

func commands(confirm bool) task.Commands {
	n := int64(0)
	return task.Commands{
		Confirm: func(string) bool { return confirm },
		Prompt:  func(_, initial string) (string, bool) { return initial + "!", true },
		Now: func() time.Time {
			n++
			return time.UnixMilli(1_700_000_000_000 + n)
		},
		NewID: task.TimeID,
	}
}

func TestAppPersistsChanges(t *testing.T) {
	slot := storage.NewMemory("")
	a := New(Options{Slot: slot, Commands: commands(true), Location: time.UTC})
	assert.Empty(t, a.State().Tasks)

	changed, err := a.Add("  Buy milk  ")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1, slot.Writes())

	id := a.State().Tasks[0].ID
	_, err = a.Toggle(id)
	require.NoError(t, err)
	_, err = a.Edit(id)
	require.NoError(t, err)

	reloaded := New(Options{Slot: slot, Commands: commands(true)})
	require.Len(t, reloaded.State().Tasks, 1)
	got := reloaded.State().Tasks[0]
	assert.Equal(t, "Buy milk!", got.Text)
	assert.True(t, got.Completed)
	assert.Equal(t, task.FilterAll, reloaded.State().Filter)
}

func TestAppSkipsWritesWhenUnchanged(t *testing.T) {
	slot := storage.NewMemory("")
	a := New(Options{Slot: slot, Commands: commands(false)})

	changed, err := a.Add("   ")
	require.NoError(t, err)
	assert.False(t, changed)

	_, _ = a.Add("keep me")
	writes := slot.Writes()

	id := a.State().Tasks[0].ID
	changed, _ = a.Delete(id)
	assert.False(t, changed, "declined")
	changed, _ = a.Toggle("missing")
	assert.False(t, changed)
	changed, _ = a.ClearCompleted()
	assert.False(t, changed)
	a.SetFilter(task.FilterCompleted)

	assert.Equal(t, writes, slot.Writes())
	assert.True(t, a.View().Empty)
	assert.Equal(t, "1 of 1 tasks remaining", a.View().Summary)
}

func TestAppDeleteAndClear(t *testing.T) {
	slot := storage.NewMemory("")
	a := New(Options{Slot: slot, Commands: commands(true)})
	_, _ = a.Add("one")
	_, _ = a.Add("two")
	_, _ = a.Toggle(a.State().Tasks[0].ID)

	changed, err := a.ClearCompleted()
	require.NoError(t, err)
	assert.True(t, changed)
	require.Len(t, a.State().Tasks, 1)
	assert.Equal(t, "one", a.State().Tasks[0].Text)

	changed, err = a.Delete(a.State().Tasks[0].ID)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Empty(t, storage.Load(slot, nil))
}

func TestAppKeepsStateWhenSaveFails(t *testing.T) {
	a := New(Options{Slot: failingSlot{storage.NewMemory("")}, Commands: commands(true)})

	changed, err := a.Add("unsaved")
	assert.True(t, changed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Len(t, a.State().Tasks, 1)
}
