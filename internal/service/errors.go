package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrEmailUnverified       = errors.New("email unverified")
	ErrCertificateProcessing = errors.New("certificate still processing")

	ErrNoAccountsFound = errors.New("no accounts found")
	ErrNoListingsFound = errors.New("no listings found")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
