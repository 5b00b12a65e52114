package usecase

import (
	"errors"
)

// Error kinds dikembalikan service, handler map ke status code pakai errors.Is
var (
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrBiometricNotEnrolled = errors.New("biometric data not registered")
	ErrFaceNotRecognized    = errors.New("face not recognized")
	ErrUpstream             = errors.New("upstream service error")
)
