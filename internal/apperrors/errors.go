package apperrors

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Store-level sentinels. Repositories return these; services translate them
// into an *Error with the right status.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

// Error is the single application error shape. The Fiber error handler maps
// it to the wire format {name, message, inValidEntries?}.
type Error struct {
	Name           string
	Status         int
	Message        string
	InvalidEntries []string
}

func (e *Error) Error() string {
	if len(e.InvalidEntries) > 0 {
		return e.Message + ": " + strings.Join(e.InvalidEntries, "; ")
	}
	return e.Message
}

// Validation reports one entry per violated rule, all collected in one pass.
func Validation(entries []string) *Error {
	return &Error{
		Name:           "ValidationError",
		Status:         fiber.StatusBadRequest,
		Message:        "Data did not match allowed structure",
		InvalidEntries: entries,
	}
}

// Auth is deliberately uninformative about which credential was wrong.
func Auth() *Error {
	return &Error{
		Name:    "AuthError",
		Status:  fiber.StatusUnauthorized,
		Message: "Username or password is incorrect",
	}
}

func NotFound(message string) *Error {
	return &Error{
		Name:    "NotFoundError",
		Status:  fiber.StatusBadRequest,
		Message: message,
	}
}

func BadRequest(message string) *Error {
	return &Error{
		Name:    "BadRequestError",
		Status:  fiber.StatusBadRequest,
		Message: message,
	}
}

func Conflict(message string) *Error {
	return &Error{
		Name:    "ConflictError",
		Status:  fiber.StatusBadRequest,
		Message: message,
	}
}

// Store hides the underlying driver error from the client.
func Store() *Error {
	return &Error{
		Name:    "StoreError",
		Status:  fiber.StatusInternalServerError,
		Message: "Unable to get response from Database",
	}
}
