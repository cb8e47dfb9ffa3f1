package utils

// Authentication errors
const (
	ErrUnauthorized = "unauthorized"
	ErrTokenExpired = "token_expired"
)

// Request errors
const (
	ErrBadRequest = "bad_request"
)

// Database errors
const (
	ErrSaveData = "error_save_data"
	ErrGetData  = "error_get_data"
)

// Internal errors
const (
	ErrGenerateToken = "generate_token_failed"
	ErrSweepSessions = "sweep_sessions_failed"
)
