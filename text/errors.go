package text

import "fmt"

// Error represents a document tree error with a name and message.
type Error struct {
	Name    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// ErrHierarchyRequest creates a HierarchyRequestError.
func ErrHierarchyRequest(message string) *Error {
	return &Error{Name: "HierarchyRequestError", Message: message}
}

// ErrNotFound creates a NotFoundError.
func ErrNotFound(message string) *Error {
	return &Error{Name: "NotFoundError", Message: message}
}

// ErrIndexSize creates an IndexSizeError.
func ErrIndexSize(message string) *Error {
	return &Error{Name: "IndexSizeError", Message: message}
}

// ErrInvalidState creates an InvalidStateError.
func ErrInvalidState(message string) *Error {
	return &Error{Name: "InvalidStateError", Message: message}
}

// IsName reports whether err is an *Error with the given name.
func IsName(err error, name string) bool {
	e, ok := err.(*Error)
	return ok && e.Name == name
}
