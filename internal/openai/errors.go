package openai

import "errors"

// Analysis failures surface as one of these sentinels so callers can map
// each to its own user-facing dialog. Transport failures are returned as
// wrapped errors from the request itself.
var (
	ErrMissingAPIKey = errors.New("no API key configured, add your provider key in settings first")

	ErrUnauthorized = errors.New("the analysis provider rejected the configured API key")

	ErrRateLimited = errors.New("too many requests, the analysis provider is rate limiting")

	ErrUpstream = errors.New("the analysis provider is temporarily unavailable, try again later")

	ErrInvalidResponse = errors.New("could not read a nutrition estimate from the response, try retaking the photo")
)
