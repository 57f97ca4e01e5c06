package graphmodel

import "encoding/json"

// ErrCode enumerates the error kinds of §7.
type ErrCode string

const (
	ErrUnindexedFiles        ErrCode = "ERR_UNINDEXED_FILES"
	ErrConflictingIndexUnits ErrCode = "ERR_CONFLICTING_INDEX_UNITS"
	ErrIndexReadFailure      ErrCode = "ERR_INDEX_READ_FAILURE"
	ErrSyntaxFailure         ErrCode = "ERR_SYNTAX_FAILURE"
)

// AnalysisError is the uniform error payload returned by core entry points,
// grounded on the teacher's CLIError (code/message/detail triple printed
// plain with %s, JSON with %+v).
type AnalysisError struct {
	Code    ErrCode `json:"code"`
	Message string  `json:"message"`
	Detail  string  `json:"detail,omitempty"`
}

func (e AnalysisError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

func (e AnalysisError) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// Wrap builds an AnalysisError from code, a human message, and an inner
// error whose text becomes the detail.
func Wrap(code ErrCode, msg string, inner error) error {
	if inner == nil {
		return AnalysisError{Code: code, Message: msg}
	}
	return AnalysisError{Code: code, Message: msg, Detail: inner.Error()}
}
