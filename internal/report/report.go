package report

import "fmt"

// Level indicates the severity/type of a progress message.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Event represents a progress update emitted while scanning or retagging.
type Event struct {
	Message string
	Level   Level
}

// Handler receives progress events. A nil Handler drops them.
type Handler func(Event)

// Emit delivers an event to h if h is not nil.
func (h Handler) Emit(level Level, format string, args ...any) {
	if h == nil {
		return
	}
	h(Event{Message: fmt.Sprintf(format, args...), Level: level})
}

// Collector records events in memory.
type Collector struct {
	Events []Event
}

// Handle appends the event. Pass c.Handle wherever a Handler is expected.
func (c *Collector) Handle(e Event) {
	c.Events = append(c.Events, e)
}

// Messages returns the messages of all events at the given level, in order.
func (c *Collector) Messages(level Level) []string {
	var out []string
	for _, e := range c.Events {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}
