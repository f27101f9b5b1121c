package ui

import (
	"encoding/json"
	"io"
)

// Severity picks how a piece of inline text is emphasized.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarn
	SeverityError
	SeverityCritical
)

// StyledText is a plain string annotated with a Severity. It marshals to
// JSON as the bare string.
type StyledText struct {
	Text     string
	Severity Severity
}

func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI is everything txsubmit commands print or ask.
//
// TerminalUI is the real implementation, RecordingUI captures calls for
// tests. Child UIs returned by Indent share the writer and the input queue
// of their parent.
//
//	u.Section("Confirm tx before sending")
//	u.KeyValue(rows)
//	if !u.Confirm("Send it?", false) { ... }
type UI interface {
	// Style colours t by its severity. Colour free implementations return
	// t.Text unchanged.
	Style(t StyledText) string

	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	// Error only prints, callers decide what happens next.
	Error(format string, args ...any)
	// Critical is for data the user must read before or right after an
	// irreversible action, like the tx hash of a broadcasted tx.
	Critical(format string, args ...any)

	// Section prints "===== title =====".
	Section(title string)
	// KeyValue prints label/value rows with values aligned.
	KeyValue(rows [][2]string)
	// Table prints a bordered table, headers may be empty.
	Table(headers []string, rows [][]string)

	// Spinner shows msg until the returned func is called.
	Spinner(msg string) func()

	// Ask reads a line after a "> " prompt until validate accepts it.
	// A nil validate accepts anything.
	Ask(validate func(string) error) string
	// Confirm asks a y/n question, an empty answer picks defaultYes.
	Confirm(prompt string, defaultYes bool) bool

	Indent() UI
	// Writer indents every line written to it.
	Writer() io.Writer
}
