package utils

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the error body; Code repeats the HTTP status.
type ErrorResponse struct {
	Message string   `json:"message"`
	Code    int      `json:"code"`
	Errors  []string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, Response{Status: true, Message: message, Data: data})
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusCreated, Response{Status: true, Message: message, Data: data})
}

// ------------- Error responses -------------

// ResponseErrorJSON writes the error body with the given status.
func ResponseErrorJSON(w http.ResponseWriter, code int, message string, errs []string) {
	if errs == nil {
		errs = []string{}
	}
	writeJSON(w, code, ErrorResponse{Message: message, Code: code, Errors: errs})
}

// ResponseError converts err into the error body. Errors without an *AppError
// are reported as a generic internal error so driver details never leak.
func ResponseError(w http.ResponseWriter, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		ResponseInternalError(w, "Internal server error")
		return
	}

	message := appErr.Message
	if appErr.Kind == KindPersistenceFailure && appErr.Err != nil {
		message = appErr.Error()
	}
	ResponseErrorJSON(w, appErr.Kind.StatusCode(), message, appErr.Errors)
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errs []string) {
	ResponseErrorJSON(w, http.StatusBadRequest, message, errs)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseErrorJSON(w, http.StatusNotFound, message, nil)
}

// returns 429 Too Many Requests
func ResponseTooManyRequests(w http.ResponseWriter, message string) {
	ResponseErrorJSON(w, http.StatusTooManyRequests, message, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseErrorJSON(w, http.StatusInternalServerError, message, nil)
}
