package schemabuilder

// ConfigurationError is returned when a single argument passed to a builder
// call is invalid: an empty or reserved identifier, a nil column type or an
// out-of-range tunable. It is recorded at the offending call and reported by
// Build before any rendering takes place.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string {
	return e.msg
}

func NewConfigurationError(text string) error {
	return &ConfigurationError{text}
}

// StateError is returned by Build when the accumulated configuration is
// inconsistent as a whole: missing partition key, a column declared under
// two roles, static columns without clustering columns, and similar
// cross-cutting conflicts that no single call can detect.
type StateError struct {
	msg string
}

func (e *StateError) Error() string {
	return e.msg
}

func NewStateError(text string) error {
	return &StateError{text}
}
