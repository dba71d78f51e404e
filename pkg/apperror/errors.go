package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
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

// Is matches on Code so errors.Is(err, apperror.ErrAmountTooLow(...)) works
// regardless of message details.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
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

// ---- Staking provider & saga (STK) ----

func ErrProviderUnavailable(err error) *AppError {
	return Wrap("STK_001", "Staking provider unavailable", http.StatusServiceUnavailable, err)
}

// ErrProviderError carries the provider's status code. A zero status maps to 400.
func ErrProviderError(status int, message string) *AppError {
	if status < 400 || status > 599 {
		status = http.StatusBadRequest
	}
	return New("STK_002", message, status)
}

func ErrIntegrationNotFound(chainID int64, token string) *AppError {
	return New("STK_003", fmt.Sprintf("integration not defined for chain %d and token %s", chainID, token), http.StatusBadRequest)
}

func ErrAmountTooLow(amount, minimum string) *AppError {
	return New("STK_004", fmt.Sprintf("amount %s is below the minimum %s", amount, minimum), http.StatusBadRequest)
}

func ErrMalformedTransaction(err error) *AppError {
	return Wrap("STK_005", "Malformed transaction from staking provider", http.StatusBadGateway, err)
}

func ErrSagaInitiationFailed(err error) *AppError {
	return Wrap("STK_006", "Staking action returned no transactions", http.StatusBadGateway, err)
}

func ErrConfirmationTimeout(txID string) *AppError {
	return New("STK_007", fmt.Sprintf("transaction %s not confirmed in time", txID), http.StatusGatewayTimeout)
}

// ---- Legacy lifecycle (LEG) ----

func ErrLegacyNotFound() *AppError {
	return New("LEG_001", "Legacy not found", http.StatusNotFound)
}

func ErrInvestmentNotEnabled() *AppError {
	return New("LEG_002", "Legacy is not investment enabled", http.StatusBadRequest)
}

func ErrSignatureMissing() *AppError {
	return New("LEG_003", "Legacy has no signature", http.StatusUnprocessableEntity)
}

func ErrAlreadyExecuted() *AppError {
	return New("LEG_004", "Legacy already executed", http.StatusConflict)
}

func ErrNotUnstaked() *AppError {
	return New("LEG_005", "Legacy funds have not been unstaked", http.StatusConflict)
}

func ErrLegacyBusy() *AppError {
	return New("LEG_006", "Another operation is in progress for this legacy", http.StatusConflict)
}

func ErrWithdrawCooldown() *AppError {
	return New("LEG_007", "Withdraw cool-down has not elapsed", http.StatusConflict)
}

func ErrSignatureAlreadySet() *AppError {
	return New("LEG_008", "Legacy signature already set", http.StatusConflict)
}

// ---- Direct chain execution (CHN) ----

func ErrChainUnavailable(err error) *AppError {
	return Wrap("CHN_001", "Chain RPC unavailable", http.StatusServiceUnavailable, err)
}

func ErrChainNotConfigured(chainID int64) *AppError {
	return New("CHN_002", fmt.Sprintf("no RPC configured for chain %d", chainID), http.StatusBadRequest)
}

func ErrTransactionReverted(hash string) *AppError {
	return New("CHN_003", fmt.Sprintf("transaction %s reverted", hash), http.StatusBadGateway)
}

func ErrReceiptTimeout(hash string) *AppError {
	return New("CHN_004", fmt.Sprintf("transaction %s submitted but receipt not observed", hash), http.StatusGatewayTimeout)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
}

func ErrSigningFailure(err error) *AppError {
	return Wrap("SYS_003", "Custody signing failure", http.StatusInternalServerError, err)
}

// ErrNotFound is the generic not-found error for non-legacy entities.
func ErrNotFound(entity string) *AppError {
	return New("SYS_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrContractExists(name string, chainID int64) *AppError {
	return New("VAL_002", fmt.Sprintf("contract %s already registered on chain %d", name, chainID), http.StatusConflict)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
