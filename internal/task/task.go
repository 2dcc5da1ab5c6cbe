package task

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// IDFunc returns a fresh task id for a task created at now.
type IDFunc func(now time.Time) string

// TimeID derives the id from the creation time in milliseconds. Two tasks
// created in the same millisecond collide; that is accepted for a single user.
func TimeID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

func UUIDID(time.Time) string {
	return uuid.NewString()
}

// IDFuncFor maps the config "ids" value to a generator.
func IDFuncFor(kind string) IDFunc {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "uuid":
		return UUIDID
	default:
		return TimeID
	}
}

// Printable turns line breaks and tabs into spaces and drops every other
// control rune, so task text can be written to a terminal as is.
func Printable(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// CleanText is the stored form of user input: printable and trimmed.
func CleanText(s string) string {
	return strings.TrimSpace(Printable(s))
}

// New builds an incomplete task. The caller is responsible for rejecting
// blank text before calling New.
func New(text string, now time.Time, newID IDFunc) Task {
	if newID == nil {
		newID = TimeID
	}
	created := now.UTC().Truncate(time.Millisecond)
	return Task{
		ID:        newID(now),
		Text:      CleanText(text),
		Completed: false,
		CreatedAt: created,
	}
}
