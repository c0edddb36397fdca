package config

import "errors"

var (
	errNoTokenSignKey      = errors.New("no token signing key was provided")
	errNoServerAddress     = errors.New("no server address was provided")
	errNoDatabaseDSN       = errors.New("no database DSN was provided")
	errNoObjectStoreBucket = errors.New("no object storage bucket was provided")
	errNoDomain            = errors.New("no public domain was provided")
)
