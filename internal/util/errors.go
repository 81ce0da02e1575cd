// internal/util/errors.go
// Error aplikasi standar dengan kode yang dipetakan handler ke status HTTP

package util

import (
	"errors"
	"fmt"
)

type AppError struct {
	Code    string // "bad_input", "not_found", "internal"
	Message string
}

func (e AppError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func BadInput(msg string) AppError { return AppError{Code: "bad_input", Message: msg} }
func NotFound(msg string) AppError { return AppError{Code: "not_found", Message: msg} }
func Internal(msg string) AppError { return AppError{Code: "internal", Message: msg} }

// CodeOf mengembalikan kode AppError di chain err, atau "internal".
func CodeOf(err error) string {
	var ae AppError
	if errors.As(err, &ae) && ae.Code != "" {
		return ae.Code
	}
	return "internal"
}
