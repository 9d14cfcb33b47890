package service

import "errors"

var (
	ErrUnauthenticated = errors.New("user not authenticated")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation")
)
