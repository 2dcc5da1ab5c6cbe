package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	assert.Equal(t, DefaultZone, c.Location().String())

	at := time.Date(2024, 1, 1, 8, 45, 9, 0, time.UTC)
	assert.Equal(t, "02:15:09 pm", c.Format(at))

	utc, err := New("UTC")
	require.NoError(t, err)
	assert.Equal(t, "08:45:09 am", utc.Format(at))
}

func TestNewUnknownZone(t *testing.T) {
	_, err := New("Mars/Olympus_Mons")
	require.Error(t, err)
}

func TestZeroClock(t *testing.T) {
	var c Clock
	assert.Equal(t, "12:00:00 am", c.Format(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}
