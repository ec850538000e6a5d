package errchar

import "fmt"

// ConfigError reports a violated characterization precondition. The run
// aborts before any sampling and the message names the violated bound.
type ConfigError struct {
	Bound string
}

func (e *ConfigError) Error() string {
	return "configuration: " + e.Bound
}

// AdapterError reports a device under test that failed to respond or
// returned a result outside its declared width. It is an environment
// fault, never retried.
type AdapterError struct {
	A, B uint64
	Err  error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("device under test failed on operands a=%d b=%d: %v", e.A, e.B, e.Err)
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}
