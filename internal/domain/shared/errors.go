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

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound          = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists     = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput      = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInsufficientFunds = NewDomainError("INSUFFICIENT_FUNDS", "Operation would leave the cash balance negative")
	ErrInsufficientStock = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrTotalMismatch     = NewDomainError("TOTAL_MISMATCH", "Declared total does not match the sum of the line items")
	// ErrLockTimeout is returned when a row lock could not be acquired within the
	// configured wait. Nothing was committed, so the caller may safely retry.
	ErrLockTimeout = NewDomainError("LOCK_TIMEOUT", "Row lock wait exceeded; the operation was rolled back and may be retried")
)

// IsRetryable reports whether the error left no partial state behind and the
// same request can be re-submitted without double-applying.
func IsRetryable(err error) bool {
	de, ok := err.(*DomainError)
	return ok && de.Code == ErrLockTimeout.Code
}
