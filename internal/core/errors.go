package core

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when a turn is submitted while another is in flight.
var ErrBusy = errors.New("a reply is still pending")

// ErrEmptyInput is returned for blank submissions.
var ErrEmptyInput = errors.New("message is empty")

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// TurnError records why an assistant turn ended with an error reply.
type TurnError struct {
	MessageID string
	Kind      string
	Err       error
}

func (e *TurnError) Error() string {
	return fmt.Sprintf("turn %s failed (%s): %v", e.MessageID, e.Kind, e.Err)
}

func (e *TurnError) Unwrap() error {
	return e.Err
}
