// Package messages holds the in-game message log and its colour palette.
package messages

import (
	_ "embed"
	"strconv"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
)

// Message is a single log line. Repeated identical messages are stacked
// into one entry with a Count instead of being appended again.
type Message struct {
	Text  string
	Color tcell.Color
	Count int
}

// FullText returns the text with a "(xN)" suffix for stacked messages.
func (m Message) FullText() string {
	if m.Count > 1 {
		return m.Text + " (x" + strconv.Itoa(m.Count) + ")"
	}
	return m.Text
}

// Log is an append-only list of messages shown in the status panel.
type Log struct {
	messages []Message
}

// NewLog creates an empty message log.
func NewLog() *Log {
	return &Log{messages: make([]Message, 0, 64)}
}

// Add appends a message, stacking it onto the previous entry if the text
// and colour match.
func (l *Log) Add(text string, color tcell.Color) {
	if n := len(l.messages); n > 0 {
		last := &l.messages[n-1]
		if last.Text == text && last.Color == color {
			last.Count++
			return
		}
	}
	l.messages = append(l.messages, Message{Text: text, Color: color, Count: 1})
}

// Messages returns all logged messages, oldest first.
func (l *Log) Messages() []Message {
	return l.messages
}

// Recent returns up to n of the newest messages, oldest first.
func (l *Log) Recent(n int) []Message {
	if n >= len(l.messages) {
		return l.messages
	}
	return l.messages[len(l.messages)-n:]
}

// Last returns the newest message and false if the log is empty.
func (l *Log) Last() (Message, bool) {
	if len(l.messages) == 0 {
		return Message{}, false
	}
	return l.messages[len(l.messages)-1], true
}

// Len returns the number of entries in the log.
func (l *Log) Len() int {
	return len(l.messages)
}

//go:embed en.po
var enPO []byte

var catalogue atomic.Pointer[gotext.Po]

func init() {
	LoadCatalogue(enPO)
}

// LoadCatalogue replaces the active translation catalogue with the given
// gettext .po source. Templates missing from it are rendered untranslated.
func LoadCatalogue(po []byte) {
	c := gotext.NewPo()
	c.Parse(po)
	catalogue.Store(c)
}

// Textf renders a message template through the active translation catalogue.
func Textf(format string, args ...any) string {
	return catalogue.Load().Get(format, args...)
}
