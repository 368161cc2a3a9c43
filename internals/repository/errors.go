// file: internals/repository/errors.go
package repository

import "strings"

// BackendError membungkus kegagalan backend dengan pesan siap tampil:
// pesan asli backend kalau ada, fallback generik kalau kosong.
type BackendError struct {
	msg string
	err error
}

func (e *BackendError) Error() string { return e.msg }
func (e *BackendError) Unwrap() error { return e.err }

const genericDBErrorMessage = "Terjadi kesalahan tak terduga di database"

func translateDBError(err error) error {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = genericDBErrorMessage
	}
	return &BackendError{msg: msg, err: err}
}
