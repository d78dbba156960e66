package domain

import "errors"

var (
	// ErrUnauthorized indicates a missing or incorrect admin credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrMissingParams indicates a verify request without a token or siteKey.
	ErrMissingParams = errors.New("missing token or siteKey")

	// ErrSiteNotFound indicates the referenced siteKey has no registration.
	ErrSiteNotFound = errors.New("invalid siteKey")

	// ErrUpstream indicates the upstream verification call failed. The
	// underlying cause is logged, not surfaced to the caller.
	ErrUpstream = errors.New("verification failed")
)
