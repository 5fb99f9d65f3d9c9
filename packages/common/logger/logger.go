package logger

import (
	"sync/atomic"
)

var Debug atomic.Bool
var Trace atomic.Bool

type Meta map[string]any

func (m Meta) stringSuffix() string {
	if m == nil {
		return ""
	}

	return createSuffixFromWellKnownMeta(m)
}

var wellKnownMetaProperties = []string{
	"addr",
	"method",
	"path",
	"user_agent",
	"request_id",
}

func createSuffixFromWellKnownMeta(m Meta) string {
	s := ""
	for _, prop := range wellKnownMetaProperties {
		if v, ok := m[prop].(string); ok {
			s += v + " "
		}
	}
	if s == "" {
		return ""
	}
	return " ("+s+")"
}

type Logger interface {
	Log(entry *LogEntry)
}

// Returns false if log must not be processed
func preprocess(entry *LogEntry) bool {
	if entry.rawLevel == DebugLogLevel && !Debug.Load() {
		return false
	}

	if entry.rawLevel == TraceLogLevel && !Trace.Load() {
		return false
	}

	return true
}

var Default = NewFileLogger("default")

// Refers logger.Default
var Undefined = NewSource("UNDEFINED", Default)

var Stdout = newStdoutLogger()

var Stderr = newStderrLogger()
