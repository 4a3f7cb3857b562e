package common

import (
	"encoding/json"
	"net/http"

	pkgerrors "benefitflow/pkg/errors"
)

// APIResponse represents a standard JSON API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	response := APIResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

// RespondHTML sends an HTML response
func RespondHTML(w http.ResponseWriter, status int, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(html)
}

// RespondAppError maps an error to its HTTP status and sends a JSON body
func RespondAppError(w http.ResponseWriter, err error) {
	status := pkgerrors.HTTPStatusOf(err)
	response := APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Code:    string(codeOf(err)),
			Message: err.Error(),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

func codeOf(err error) pkgerrors.ErrorType {
	if pkgerrors.IsNotFound(err) {
		return pkgerrors.ErrorTypeNotFound
	}
	if pkgerrors.IsValidation(err) {
		return pkgerrors.ErrorTypeValidation
	}
	return pkgerrors.ErrorTypeInternal
}
