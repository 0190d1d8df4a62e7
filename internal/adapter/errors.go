package adapter

import "errors"

var (
	ErrInvalidData         = errors.New("invalid data")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	ErrNoRefreshToken = errors.New("no refresh token, log in first")
)
