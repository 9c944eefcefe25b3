package shared

import "fmt"

// ===========================
// Structured domain errors
// ===========================

// ErrorCode identifies a domain error independently of its message.
type ErrorCode string

// DomainError is the error type used across all domain packages.
//
// Invariants:
// - Code identifies the error; Message is for humans
// - Context carries request-specific detail and never participates in Is()
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return e.Message + " (context: " + formatContext(e.Context) + ")"
}

// WithContext returns a copy of the error with extra key-value context attached.
//
// Usage:
//
//	return ErrTeamNotFound.WithContext("team_id", teamID)
func (e *DomainError) WithContext(keyValues ...interface{}) *DomainError {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	newErr := &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: make(map[string]interface{}),
	}
	for k, v := range e.Context {
		newErr.Context[k] = v
	}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic("WithContext keys must be strings")
		}
		newErr.Context[key] = keyValues[i+1]
	}
	return newErr
}

// Is implements errors.Is comparison by error code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func formatContext(context map[string]interface{}) string {
	result := ""
	for k, v := range context {
		if result != "" {
			result += ", "
		}
		result += k + "=" + formatValue(v)
	}
	return result
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
