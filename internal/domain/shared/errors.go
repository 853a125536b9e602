package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Configuration errors are fatal: the world cannot be built or run with them

type ConfigurationError struct {
	*DomainError
}

func NewConfigurationError(message string) *ConfigurationError {
	return &ConfigurationError{DomainError: &DomainError{Message: message}}
}

type DuplicateItemError struct {
	*ConfigurationError
	Name string
}

func NewDuplicateItemError(name string) *DuplicateItemError {
	return &DuplicateItemError{
		ConfigurationError: NewConfigurationError(fmt.Sprintf("duplicate item name %q in catalog", name)),
		Name:               name,
	}
}

type UnknownItemError struct {
	*ConfigurationError
	Name       string
	Suggestion string
}

func NewUnknownItemError(name, suggestion string) *UnknownItemError {
	message := fmt.Sprintf("unknown item %q", name)
	if suggestion != "" {
		message = fmt.Sprintf("%s (did you mean %q?)", message, suggestion)
	}
	return &UnknownItemError{
		ConfigurationError: NewConfigurationError(message),
		Name:               name,
		Suggestion:         suggestion,
	}
}

// Interaction errors

type InteractionError struct {
	*DomainError
	Target string
}

func NewInteractionError(target, message string) *InteractionError {
	return &InteractionError{
		DomainError: &DomainError{Message: fmt.Sprintf("%s: %s", target, message)},
		Target:      target,
	}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
