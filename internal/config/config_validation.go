package config

import (
	"errors"
	"time"
)

// Defaults applied by validate when a value is absent from every source.
const (
	defaultTokenIssuer    = "jobboard"
	defaultTokenDuration  = 24 * time.Hour
	defaultRequestTimeout = 30 * time.Second
	defaultMailQueueSize  = 64
)

// validate checks the merged configuration for completeness and fills in
// defaults for optional values. It is called once, at the end of the
// builder chain.
func (c *StructuredConfig) validate() error {
	errs := make([]error, 0)

	if c.App.TokenSignKey == "" {
		errs = append(errs, errNoTokenSignKey)
	}
	if c.Server.HTTPAddress == "" {
		errs = append(errs, errNoServerAddress)
	}
	if c.Storage.DB.DSN == "" {
		errs = append(errs, errNoDatabaseDSN)
	}
	if c.ObjectStore.Bucket == "" {
		errs = append(errs, errNoObjectStoreBucket)
	}
	if c.App.Domain == "" {
		errs = append(errs, errNoDomain)
	}

	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = defaultTokenIssuer
	}
	if c.App.TokenDuration == 0 {
		c.App.TokenDuration = defaultTokenDuration
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.ObjectStore.RequestTimeout == 0 {
		c.ObjectStore.RequestTimeout = defaultRequestTimeout
	}
	if c.Mail.RequestTimeout == 0 {
		c.Mail.RequestTimeout = defaultRequestTimeout
	}
	if c.Workers.MailQueueSize == 0 {
		c.Workers.MailQueueSize = defaultMailQueueSize
	}

	return errors.Join(errs...)
}
