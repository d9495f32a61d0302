package errors

import (
	"fmt"
	"net/http"
)

// Code represents an error code with HTTP status and message
type Code struct {
	Code    int    // Business error code
	Status  int    // HTTP status code
	Message string // Error message
}

// Error codes for different modules
const (
	// Success
	Success = 0

	// Common errors (1000-1099)
	ErrInternalServer = 1000
	ErrInvalidParams  = 1001
	ErrBadRequest     = 1002
	ErrTooManyRequests = 1003

	// Action errors (1100-1199)
	ErrUnknownAction     = 1100
	ErrUnsupportedAction = 1101

	// Provider errors (1200-1299)
	ErrProviderComm      = 1200
	ErrProviderNoJobID   = 1201
	ErrProviderJobFailed = 1202
	ErrProviderJobTimeout = 1203

	// Search errors (1300-1399)
	ErrInvalidSearchType = 1300
)

// codeMap maps error codes to their details
var codeMap = map[int]Code{
	Success: {Success, http.StatusOK, "Success"},

	ErrInternalServer:  {ErrInternalServer, http.StatusInternalServerError, "Internal server error"},
	ErrInvalidParams:   {ErrInvalidParams, http.StatusBadRequest, "Invalid parameters"},
	ErrBadRequest:      {ErrBadRequest, http.StatusBadRequest, "Bad request"},
	ErrTooManyRequests: {ErrTooManyRequests, http.StatusTooManyRequests, "Too many requests"},

	ErrUnknownAction:     {ErrUnknownAction, http.StatusBadRequest, "Unknown action"},
	ErrUnsupportedAction: {ErrUnsupportedAction, http.StatusBadRequest, "Unsupported action"},

	ErrProviderComm:       {ErrProviderComm, http.StatusBadGateway, "Error communicating with Masa API"},
	ErrProviderNoJobID:    {ErrProviderNoJobID, http.StatusBadGateway, "Invalid response from Masa API"},
	ErrProviderJobFailed:  {ErrProviderJobFailed, http.StatusBadGateway, "Search job failed"},
	ErrProviderJobTimeout: {ErrProviderJobTimeout, http.StatusGatewayTimeout, "Search job timed out"},

	ErrInvalidSearchType: {ErrInvalidSearchType, http.StatusBadRequest, "Invalid search type"},
}

// GetCode returns the Code for a given error code
func GetCode(code int) Code {
	if c, ok := codeMap[code]; ok {
		return c
	}
	return codeMap[ErrInternalServer]
}

// GetHTTPStatus returns HTTP status for a given error code
func GetHTTPStatus(code int) int {
	return GetCode(code).Status
}

// GetMessage returns the message for a given error code
func GetMessage(code int) string {
	return GetCode(code).Message
}

// IsClientError checks if the code represents a client error (4xx)
func IsClientError(code int) bool {
	status := GetHTTPStatus(code)
	return status >= 400 && status < 500
}

// IsServerError checks if the code represents a server error (5xx)
func IsServerError(code int) bool {
	status := GetHTTPStatus(code)
	return status >= 500
}

// FormatError formats an error message with code
func FormatError(code int, details ...string) string {
	msg := GetMessage(code)
	if len(details) > 0 && details[0] != "" {
		return fmt.Sprintf("%s: %s", msg, details[0])
	}
	return msg
}
