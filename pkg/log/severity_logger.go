package log

import (
	"fmt"
	"io"
	"time"
)

// sink receives every entry after formatting. Console output is handled by severityLogger itself.
type sink interface {
	write(l Labeler, message string, severity Severity)
	close() error
}

// severityLogger implements the Log convenience methods on top of a sink and echoes each entry
// to out in the "timestamp [marker] message" format.
type severityLogger struct {
	sink sink
	out  io.Writer
}

func (sl *severityLogger) Close() error {
	return sl.sink.close()
}

func (sl *severityLogger) Log(l Labeler, message string, severity Severity) {
	sl.sink.write(l, message, severity)
}

func (sl *severityLogger) emit(l Labeler, severity Severity, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	sl.Log(l, message, severity)
	if sl.out != nil {
		fmt.Fprintf(sl.out, "%s [%s] %s\n", timestamp(), severity.Marker(), message)
	}
}

func (sl *severityLogger) Rawf(severity Severity, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	sl.Log(nil, message, severity)
	if sl.out != nil {
		fmt.Fprintf(sl.out, "%s [ ] %s\n", timestamp(), message)
	}
}

func (sl *severityLogger) Default(l Labeler, message any) { sl.Defaultf(l, "%s", message) }
func (sl *severityLogger) Defaultf(l Labeler, format string, args ...any) {
	sl.emit(l, Default, format, args...)
}

func (sl *severityLogger) Debug(l Labeler, message any) { sl.Debugf(l, "%s", message) }
func (sl *severityLogger) Debugf(l Labeler, format string, args ...any) {
	sl.emit(l, Debug, format, args...)
}

func (sl *severityLogger) Info(l Labeler, message any) { sl.Infof(l, "%s", message) }
func (sl *severityLogger) Infof(l Labeler, format string, args ...any) {
	sl.emit(l, Info, format, args...)
}

func (sl *severityLogger) Notice(l Labeler, message any) { sl.Noticef(l, "%s", message) }
func (sl *severityLogger) Noticef(l Labeler, format string, args ...any) {
	sl.emit(l, Notice, format, args...)
}

func (sl *severityLogger) Warning(l Labeler, message any) { sl.Warningf(l, "%s", message) }
func (sl *severityLogger) Warningf(l Labeler, format string, args ...any) {
	sl.emit(l, Warning, format, args...)
}

func (sl *severityLogger) Error(l Labeler, message any) { sl.Errorf(l, "%s", message) }
func (sl *severityLogger) Errorf(l Labeler, format string, args ...any) {
	sl.emit(l, Error, format, args...)
}

func (sl *severityLogger) Critical(l Labeler, message any) { sl.Criticalf(l, "%s", message) }
func (sl *severityLogger) Criticalf(l Labeler, format string, args ...any) {
	sl.emit(l, Critical, format, args...)
}

func (sl *severityLogger) Alert(l Labeler, message any) { sl.Alertf(l, "%s", message) }
func (sl *severityLogger) Alertf(l Labeler, format string, args ...any) {
	sl.emit(l, Alert, format, args...)
}

func (sl *severityLogger) Emergency(l Labeler, message any) { sl.Emergencyf(l, "%s", message) }
func (sl *severityLogger) Emergencyf(l Labeler, format string, args ...any) {
	sl.emit(l, Emergency, format, args...)
}

func timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05.000")
}
