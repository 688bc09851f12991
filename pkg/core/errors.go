package core

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrFormat      = errors.New("malformed annotation")
	ErrUnknownKind = errors.New("unknown annotation kind")
	ErrValidation  = errors.New("annotation failed validation")
	ErrLoad        = errors.New("state file could not be loaded")
	ErrEmptyState  = errors.New("state file is empty")
	ErrConfig      = errors.New("invalid configuration")
)

// FormatError reports malformed annotation syntax.
type FormatError struct {
	Line   string
	Reason string
}

func (e *FormatError) Error() string        { return e.Reason }
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// UnknownKindError reports an annotation kind with no registered contract.
type UnknownKindError struct {
	Kind  string
	Model string
}

func (e *UnknownKindError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("unknown annotation kind %q", e.Kind)
	}
	return fmt.Sprintf("unknown annotation kind %q on model %s", e.Kind, e.Model)
}

func (e *UnknownKindError) Is(target error) bool { return target == ErrUnknownKind }

// ValidationError reports a record that does not satisfy its kind's contract.
// Constraint names the violated rule (e.g. "required", "type", "oneof", "unknown").
type ValidationError struct {
	Kind       string
	Field      string
	Constraint string
	Message    string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s annotation: field %q violates %q", e.Kind, e.Field, e.Constraint)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// LoadError wraps a failure raised while reading a state file.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("There was an error loading the state file: %s. %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error        { return e.Cause }
func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// EmptyStateError reports a state file read that produced no content.
type EmptyStateError struct {
	Path string
}

func (e *EmptyStateError) Error() string        { return fmt.Sprintf("State file is empty: %s", e.Path) }
func (e *EmptyStateError) Is(target error) bool { return target == ErrEmptyState }

// ConfigError reports missing or invalid external configuration.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string        { return fmt.Sprintf("config %s: %s", e.Key, e.Reason) }
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }
