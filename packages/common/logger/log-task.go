package logger

// Designed to be used by worker pool
type logTask struct {
    entry 	*LogEntry
	handler logHandler
}

func (t logTask) Process() {
	t.handler(t.entry)
}

type logHandler = func(*LogEntry)
