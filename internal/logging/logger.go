// Package logging is the logging seam of the budget projector. Production
// code logs through Logger backed by logrus; tests swap in MockLogger and
// assert on the captured entries.
package logging

// Logger is the structured logger handed to every component. Commands
// return errors instead of exiting, so there is no fatal level.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError, WithField and WithFields return a derived logger whose
	// entries carry the extra context.
	WithError(err error) Logger
	WithField(key string, value interface{}) Logger
	WithFields(fields ...Field) Logger
}

// Field is one key/value pair attached to a log entry. Keys are usually one
// of the Field* constants.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
