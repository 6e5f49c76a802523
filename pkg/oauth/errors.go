package oauth

import "errors"

var (
	// ErrMissingSecret is returned by New when no client secret is configured.
	ErrMissingSecret = errors.New("oauth: client secret is not configured")
	// ErrMissingClientID is returned by New when no client id is configured.
	ErrMissingClientID = errors.New("oauth: client id is not configured")
	// ErrMissingTokenURL is returned by New when no token endpoint is configured.
	ErrMissingTokenURL = errors.New("oauth: token url is not configured")
	// ErrAuthentication wraps every failed token exchange.
	ErrAuthentication = errors.New("oauth: authentication failed")
)
