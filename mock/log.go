package mock

import "log"

// Level filters the mocks' log output.
type Level int

const (
	LOG_TRACE Level = iota
	LOG_INFO
	LOG_ERROR
)

var logLevel = LOG_INFO

// SetLevel sets the minimum level logged. LOG_TRACE logs every bus
// transaction and delay the mocks see.
func SetLevel(level Level) {
	logLevel = level
}

func logs(level Level, msg ...interface{}) {
	if level >= logLevel {
		log.Println(msg...)
	}
}

func logf(level Level, format string, args ...interface{}) {
	if level >= logLevel {
		log.Printf(format, args...)
	}
}
