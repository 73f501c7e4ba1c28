package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // internal cause, never sent to clients
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

// Is reports whether target is an *AppError carrying the same code, so
// errors.Is(err, ErrBudgetExceeded()) matches regardless of message.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
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

// Code returns the code of the first AppError in err's chain, or "".
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Ownership allocation (OWN) ----

func ErrInvalidAddress() *AppError {
	return New("OWN_001", "Invalid wallet address", http.StatusBadRequest)
}

func ErrDuplicateAddress() *AppError {
	return New("OWN_002", "Wallet address is already a co-owner", http.StatusConflict)
}

func ErrSameAsPrimaryOwner() *AppError {
	return New("OWN_003", "Co-owner cannot be the primary owner", http.StatusConflict)
}

func ErrPercentageOutOfRange() *AppError {
	return New("OWN_004", "Ownership percentage must be between 0.01 and 100", http.StatusBadRequest)
}

func ErrBudgetExceeded() *AppError {
	return New("OWN_005", "Total co-owner ownership cannot exceed 100%", http.StatusUnprocessableEntity)
}

func ErrAllocationFrozen() *AppError {
	return New("OWN_006", "Ownership allocation is frozen", http.StatusConflict)
}

// ---- Collaborators (COL) ----

// ErrCollaboratorAuth is returned when an upstream rejects our credentials.
// hint tells the operator what to fix.
func ErrCollaboratorAuth(service, hint string) *AppError {
	return New("COL_001", fmt.Sprintf("%s authentication failed. %s", service, hint), http.StatusBadGateway)
}

func ErrCollaboratorPermission(service, hint string) *AppError {
	return New("COL_002", fmt.Sprintf("%s access forbidden. %s", service, hint), http.StatusBadGateway)
}

func ErrCollaboratorUnavailable(service string, err error) *AppError {
	return Wrap("COL_003", fmt.Sprintf("%s is unavailable", service), http.StatusServiceUnavailable, err)
}

// ---- Funds & network (FUND, NET) ----

// ErrInsufficientFunds reports the balance shortfall, formatted by the caller.
func ErrInsufficientFunds(shortfall string) *AppError {
	msg := "Insufficient funds in wallet"
	if shortfall != "" {
		msg = fmt.Sprintf("Insufficient funds in wallet: need %s more", shortfall)
	}
	return New("FUND_001", msg, http.StatusPaymentRequired)
}

func ErrNetwork(err error) *AppError {
	return Wrap("NET_001", "Network error. Please check your connection and try again", http.StatusServiceUnavailable, err)
}

// ---- Registration (REG) ----

// ErrRegistrationFailed passes an unclassified collaborator message through.
func ErrRegistrationFailed(err error) *AppError {
	msg := "Registration failed"
	if err != nil {
		msg = err.Error()
	}
	return Wrap("REG_001", msg, http.StatusBadGateway, err)
}

func ErrInvalidAcknowledgement(reason string) *AppError {
	return New("REG_002", "Registrar returned an invalid acknowledgement: "+reason, http.StatusBadGateway)
}

func ErrNotFound(entity string) *AppError {
	return New("REG_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidSignature() *AppError {
	return New("AUTH_001", "Invalid wallet signature", http.StatusUnauthorized)
}

func ErrChallengeExpired() *AppError {
	return New("AUTH_002", "Sign-in challenge expired or already used", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

func ErrQuotaExceeded() *AppError {
	return New("RATE_002", "Upstream quota exceeded. Please try again later", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrStorageError(err error) *AppError {
	return Wrap("SYS_001", "Internal storage error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_001 validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrPayloadTooLarge() *AppError {
	return New("VAL_002", "Request body too large", http.StatusRequestEntityTooLarge)
}

// ---- Chat (CHAT) ----

// ErrChatFailed passes an unclassified chat model message through.
func ErrChatFailed(err error) *AppError {
	msg := "Failed to get AI response"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return Wrap("CHAT_001", msg, http.StatusBadGateway, err)
}
