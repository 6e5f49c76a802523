// Package oauth obtains bearer tokens with the OAuth2 client-credentials grant.
//
// Client id, secret and scope travel in the form body of the token request.
// A Provider validates its Config up front, so a missing secret is reported
// by New before any network traffic.
//
// Tokens are cached until shortly before they expire. Concurrent callers that
// find the cache empty share one exchange. Set Config.CacheTokens to false to
// exchange on every call.
//
//	p, err := oauth.New(cfg.OAuth, oauth.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	tok, err := p.Token(ctx)
//	if errors.Is(err, oauth.ErrAuthentication) {
//	    // the identity endpoint refused or could not be reached
//	}
package oauth
