package net

import (
	"net/http"

	perr "gsa/internal/platform/errors"
)

// Wire is the envelope shared by every JSON response. Exactly one of Data or
// Error is set; Code is zero on success
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Failed reports whether w carries an error
func (w Wire) Failed() bool { return w.Error != "" || w.StatusCode >= http.StatusBadRequest }

// Success wraps data; a zero status means 200
func Success(status int, data any, reqID string) Wire {
	if status == 0 {
		status = http.StatusOK
	}
	return Wire{StatusCode: status, Status: http.StatusText(status), RequestID: reqID, Data: data}
}

// Failure maps err to its status and envelope; nil err is an empty success
func Failure(err error, reqID string) Wire {
	if err == nil {
		return Success(http.StatusOK, nil, reqID)
	}
	status, e := perr.HTTP(err)
	return Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       e.Code,
		Error:      e.Message,
		Field:      e.Field,
		RequestID:  reqID,
	}
}
