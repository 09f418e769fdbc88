package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string            `json:"error_code"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	HTTPStatus int               `json:"-"`
	Err        error             `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail returns a copy of e with key set in Details. The receiver is left
// untouched.
func (e *AppError) WithDetail(key, value string) *AppError {
	cp := *e
	cp.Details = make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		cp.Details[k] = v
	}
	cp.Details[key] = value
	return &cp
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// CodeOf returns the AppError code carried by err, or "" when err is not an AppError.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Validation (VAL) ----

// Validation returns a generic VAL_001 validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_002", "Invalid amount", http.StatusBadRequest)
}

func ErrBelowMinimum(minimum string) *AppError {
	return New("VAL_002", fmt.Sprintf("Amount must be at least %s", minimum), http.StatusBadRequest)
}

func ErrSelfTransfer() *AppError {
	return New("VAL_003", "Cannot transfer to your own account", http.StatusBadRequest)
}

func ErrRecipientNotFound() *AppError {
	return New("VAL_004", "Recipient not found", http.StatusBadRequest)
}

// ---- Risk (RISK) ----

func ErrTooManyTransactions() *AppError {
	return New("RISK_001", "Too many transactions. Please wait before trying again", http.StatusTooManyRequests)
}

func ErrVPNDetected() *AppError {
	return New("RISK_002", "Please disable your VPN or proxy to make large transactions", http.StatusForbidden)
}

func ErrImpossibleTravel() *AppError {
	return New("RISK_003", "Suspicious location change detected. Please try again later", http.StatusForbidden)
}

// ---- Ledger (LED) ----

func ErrInsufficientFunds() *AppError {
	return New("LED_001", "Insufficient balance", http.StatusBadRequest)
}

func ErrDuplicateSubmission() *AppError {
	return New("LED_002", "Duplicate transaction detected. Please wait before retrying", http.StatusConflict)
}

func ErrInvalidTransition(from, to string) *AppError {
	return New("LED_003", fmt.Sprintf("Withdrawal cannot move from %s to %s", from, to), http.StatusConflict)
}

func ErrWithdrawalClosed(status string) *AppError {
	return New("LED_003", fmt.Sprintf("Withdrawal is already %s", status), http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("LED_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_005", "Insufficient permissions", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
