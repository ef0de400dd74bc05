package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is matches domain errors by code, so errors.Is works against the sentinel
// values below even when a call site constructs its own message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	// ErrNotFound is returned when a resource does not exist within the
	// caller's tenant. It deliberately does not distinguish between a
	// missing row and a row owned by another tenant.
	ErrNotFound = NewDomainError("NOT_FOUND", "Resource not found")

	// ErrInvalidReference is returned when an invoice references a client
	// that does not belong to the same tenant.
	ErrInvalidReference = NewDomainError("INVALID_REFERENCE", "Referenced resource does not belong to this team")

	// ErrInvalidTransition is returned when a status update requests a
	// value that cannot be set directly.
	ErrInvalidTransition = NewDomainError("INVALID_TRANSITION", "Status must be 'paid' or 'unpaid'")

	// ErrDataCorruption is returned when stored data violates an invariant
	// the system relies on. It is never auto-repaired.
	ErrDataCorruption = NewDomainError("DATA_CORRUPTION", "Stored data is corrupt")

	// ErrConcurrencyConflict is returned when a write lost a race and the
	// bounded retries were exhausted.
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")

	// ErrClientInUse is returned when deleting a client that still has
	// invoices referencing it.
	ErrClientInUse = NewDomainError("CLIENT_IN_USE", "Client has invoices and cannot be deleted")

	ErrInvalidInput = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthorized = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
)
