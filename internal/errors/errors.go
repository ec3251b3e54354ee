package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this operator"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// PreconditionError is returned when an operation is rejected because the
// current state does not allow it. No state is mutated when it is returned.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return e.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOperatorNotFound   = &NotFoundError{Entity: "operator"}
	ErrManagerNotFound    = &NotFoundError{Entity: "manager"}
	ErrCallNotFound       = &NotFoundError{Entity: "call"}
	ErrActiveCallNotFound = &NotFoundError{Entity: "active call"}
	ErrRewardNotFound     = &NotFoundError{Entity: "reward"}
	ErrGoalNotFound       = &NotFoundError{Entity: "goal"}
)

// Already Exists Errors
var (
	ErrOperatorExists     = &AlreadyExistsError{Entity: "operator", Context: "with this email"}
	ErrManagerExists      = &AlreadyExistsError{Entity: "manager", Context: "with this email"}
	ErrRewardAlreadyOwned = &AlreadyExistsError{Entity: "purchase", Context: "for this reward"}
)

// Business Logic Errors
var (
	ErrOperatorNotAvailable    = &PreconditionError{Message: "operator is not awaiting a call"}
	ErrOperatorInCall          = &PreconditionError{Message: "operator is in a call"}
	ErrCallAlreadyFinalized    = &PreconditionError{Message: "call already finalized"}
	ErrInsufficientPoints      = &PreconditionError{Message: "insufficient points"}
	ErrRewardUnavailable       = &PreconditionError{Message: "reward is unavailable"}
	ErrRewardOutOfStock        = &PreconditionError{Message: "reward is out of stock"}
	ErrInvalidStatusTransition = &PreconditionError{Message: "invalid status transition"}
	ErrGoalInactive            = &PreconditionError{Message: "goal is not active"}
	ErrInvalidTimeRange        = errors.New("invalid time range")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrInvalidRankingPeriod    = errors.New("invalid ranking period")
)

// Authentication Errors
var (
	ErrInvalidCredentials   = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken         = &AuthenticationError{Message: "invalid token"}
	ErrSessionExpired       = &AuthenticationError{Message: "session expired"}
	ErrOperatorRoleRequired = &AuthorizationError{Message: "operator access required"}
	ErrManagerRoleRequired  = &AuthorizationError{Message: "manager access required"}
	ErrOperatorNotInTeam    = &AuthorizationError{Message: "operator is not in this manager's team"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsPrecondition checks if an error is a PreconditionError
func IsPrecondition(err error) bool {
	var preconditionErr *PreconditionError
	return errors.As(err, &preconditionErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewPreconditionError creates a new PreconditionError
func NewPreconditionError(message string) error {
	return &PreconditionError{Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
