package logger

import (
	"context"
	"errors"
	"log"
	"os"
	"slices"
	"sync"
	"sync/atomic"

	"registry/packages/common/structs"

	jsoniter "github.com/json-iterator/go"
)

var errLogger = NewSource("LOG", Stderr)

// Writes log entries as JSON lines into /var/log/registry/<name>.log.
// Entries are handled asynchronously by a worker pool,
// except fatal and panic levels which are written immediately.
//
// Satisfies Logger interface.
type FileLogger struct {
    logger        *log.Logger
    logFile       *os.File
    isRunning     atomic.Bool
    transmissions []Logger
    pool          *structs.WorkerPool
    handle        logHandler
    done          chan struct{}
}

func NewFileLogger(name string) *FileLogger {
    if err := os.MkdirAll("/var/log/registry", 0755); err != nil {
        panic("Failed to create log directory: " + err.Error())
    }

    f, err := os.OpenFile(
        "/var/log/registry/"+name+".log",
        os.O_APPEND | os.O_CREATE | os.O_WRONLY,
        0644, // -rw-r--r--
    )
    if err != nil {
        panic(err)
    }

    logger := log.New(
        f,
        "",
        log.LstdFlags | log.Lmicroseconds,
    )

    return &FileLogger{
        logger: logger,
        logFile: f,
        transmissions: []Logger{},
        pool: newLogPool(),
        handle: newLogEntryHandler(logger),
        done: make(chan struct{}),
    }
}

func newLogPool() *structs.WorkerPool {
    return structs.NewWorkerPool(
        context.Background(),
        structs.NewCondWaiter(new(sync.Mutex)),
    )
}

func (l *FileLogger) Start() error {
    if l.isRunning.Load() {
        return errors.New("logger already started")
    }

    // canceled WorkerPool can't be started
    if l.pool.IsCanceled() {
        l.pool = newLogPool()
    }

    l.isRunning.Store(true)

    go l.pool.Start()

    <-l.done

    return nil
}

func (l *FileLogger) Stop() error {
    if !l.isRunning.Load() {
        return errors.New("logger isn't started, hence can't be stopped")
    }

    l.isRunning.Store(false)

    if err := l.pool.Cancel(); err != nil {
        return err
    }
    if err := l.logFile.Close(); err != nil {
        return err
    }

    close(l.done)

    return nil
}

// Creates function that handles writing a single entry into the log file.
func newLogEntryHandler(logger *log.Logger) logHandler {
    pool := sync.Pool{
        New: func() any {
            return jsoniter.NewStream(jsoniter.ConfigFastest, nil, 1024)
        },
    }

    return func(entry *LogEntry) {
        stream := pool.Get().(*jsoniter.Stream)
        defer pool.Put(stream)

        stream.Reset(nil)
        stream.Error = nil

        stream.WriteVal(entry)
        if stream.Error != nil {
            errLogger.Error("failed to write log", stream.Error.Error(), nil)
            return
        }

        if stream.Buffered() > 0 {
            // Without this all logs will be written in single line
            stream.WriteRaw("\n")
        }

        // NOTE: log.Logger use mutex and atomic operations under the hood,
        //       so it's thread safe by default
        logger.Writer().Write(stream.Buffer())
    }
}

func (l *FileLogger) Log(entry *LogEntry) {
    if !preprocess(entry) {
        return
    }

    if len(l.transmissions) != 0 {
        defer func() {
            for _, transmission := range l.transmissions {
                transmission.Log(entry)
            }
        }()
    }

    // Immediatly handle panic or fatal log
    if entry.rawLevel >= FatalLogLevel {
        l.handle(entry)

        if entry.rawLevel == PanicLogLevel {
            panic(entry.Message + "\n" + entry.Error)
        }

        // Fatal
        os.Exit(1)
    }

    if err := l.pool.Push(logTask{entry, l.handle}); err != nil {
        // pool is canceled, at least don't lose the entry
        l.handle(entry)
    }
}

// Binds another logger to this logger.
// On calling Log() it also will be called on all binded loggers
// (entry will be the same for all loggers)
//
// Can't bind to self. Can't bind to one logger more then once.
func (l *FileLogger) NewTransmission(logger Logger) error {
    if logger == nil {
        return errors.New("received nil instead of logger")
    }

    if logger, ok := logger.(*FileLogger); ok {
        if l == logger {
            return errors.New("can't create transmission for self")
        }
    }

    if slices.Contains(l.transmissions, logger) {
        return errors.New("this logger already has transmission")
    }

    l.transmissions = append(l.transmissions, logger)

    return nil
}

// Removes existing transmission.
// Will return error if transmission to specified logger isn't exist.
func (l *FileLogger) RemoveTransmission(logger Logger) error {
    idx := slices.Index(l.transmissions, logger)
    if idx == -1 {
        return errors.New("transmission for this logger wasn't found")
    }

    l.transmissions = slices.Delete(l.transmissions, idx, idx+1)

    return nil
}
