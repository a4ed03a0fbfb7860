package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var defaultLogger = &logrus.Logger{
	Out:       os.Stdout,
	Formatter: new(logrus.JSONFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.InfoLevel,
}

// SetLevel sets logging level by its name, e.g. "debug" or "warn".
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	defaultLogger.SetLevel(lvl)
	return nil
}

var (
	writerOnce sync.Once
	writer     io.Writer
)

// Writer returns a writer that logs every written line at Info level.
// The writer is shared, so repeated calls do not start new pipes.
func Writer() io.Writer {
	writerOnce.Do(func() {
		writer = defaultLogger.WriterLevel(logrus.InfoLevel)
	})

	return writer
}

// Logger returns the underlying logger, e.g. for http middlewares that expect a Println method.
func Logger() *logrus.Logger {
	return defaultLogger
}

// Info logs message at Info level.
func Info(msg string) {
	defaultLogger.Infoln(msg)
}

// Debug logs message with fields at Debug level.
func Debug(msg string, fields map[string]interface{}) {
	defaultLogger.WithFields(fields).Debugln(msg)
}

// Error logs errors at Error level.
func Error(err error) {
	defaultLogger.Errorln(err)
}

// Fatal logs errors at Fatal level.
func Fatal(err error) {
	defaultLogger.Fatalln(err)
}
