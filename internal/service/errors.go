package service

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrEmailAlreadyUsed     = errors.New("email already registered")
	ErrUsernameAlreadyUsed  = errors.New("username already taken")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAccountLocked        = errors.New("account locked, try again later")
	ErrAccountDisabled      = errors.New("account disabled")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrInvalidOTP           = errors.New("invalid or expired otp")
	ErrEmailAlreadyVerified = errors.New("email already verified")
	ErrEmailSendFailed      = errors.New("could not send email")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotFound             = errors.New("resource not found")
	ErrAlreadyExists        = errors.New("resource already exists")
)
