package logger

import (
	"log"
	"os"
)

// Satisfies Logger interface
type stderrLogger struct {
    logger *log.Logger
}

func newStderrLogger() stderrLogger {
    return stderrLogger{
        // log package sends logs into stderr by default,
        // but the prefix and flags need to be adjusted
        logger: log.New(os.Stderr, "ERROR: ", log.Ldate | log.Ltime),
    }
}

func (l stderrLogger) Log(entry *LogEntry) {
    if !preprocess(entry) {
        return
    }

    l.logger.Println("["+entry.Source+": "+entry.Level+"] " + entry.Message + entry.Meta.stringSuffix())
}
