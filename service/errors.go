package service

import "fmt"

// ProviderError wraps any failure surfaced by the AWS API, keeping the
// provider's raw message reachable through Unwrap.
type ProviderError struct {
	Service string
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// WrapProvider tags err with the service it came from. Returns nil for nil.
func WrapProvider(svc string, err error) error {
	if err == nil {
		return nil
	}
	return &ProviderError{Service: svc, Err: err}
}

// InvalidArgumentError reports a locally-detectable invalid input, rejected
// before any network call is made.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return e.Reason
}

// InvalidArgumentf builds an InvalidArgumentError from a format string
func InvalidArgumentf(format string, args ...any) error {
	return &InvalidArgumentError{Reason: fmt.Sprintf(format, args...)}
}
