package testing

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vvka-141/depmap/pkg/depmap"
)

// LogEntry is one captured log call.
type LogEntry struct {
	Level   string // verbose, info, warn, error
	Message string
}

// LogCapture is a depmap.Logger that records every message.
// Thread-safe for concurrent use.
type LogCapture struct {
	entries []LogEntry
	mu      sync.Mutex
}

// NewLogCapture creates an empty LogCapture.
func NewLogCapture() *LogCapture {
	return &LogCapture{entries: make([]LogEntry, 0)}
}

func (c *LogCapture) Verbose(format string, args ...interface{}) { c.add("verbose", format, args) }
func (c *LogCapture) Info(format string, args ...interface{})    { c.add("info", format, args) }
func (c *LogCapture) Warn(format string, args ...interface{})    { c.add("warn", format, args) }
func (c *LogCapture) Error(format string, args ...interface{})   { c.add("error", format, args) }

func (c *LogCapture) add(level, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, LogEntry{Level: level, Message: msg})
}

// Entries returns a copy of all captured entries.
func (c *LogCapture) Entries() []LogEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]LogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Messages returns the messages logged at level, in order.
func (c *LogCapture) Messages(level string) []string {
	var msgs []string
	for _, e := range c.Entries() {
		if e.Level == level {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

// Contains reports whether any message at level contains substr.
func (c *LogCapture) Contains(level, substr string) bool {
	for _, m := range c.Messages(level) {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

var _ depmap.Logger = (*LogCapture)(nil)
