// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package backoffice

import (
	"errors"
	"net/url"
	"strings"
)

// DefaultUserAgent is sent when Config.UserAgent is empty.
const DefaultUserAgent = "devops-wiz/terraform-provider-backoffice"

// Config is the immutable configuration of a Validator.
type Config struct {
	// TargetURL is the back-office endpoint that receives the Basic credentials.
	TargetURL string
	// SkipTLSVerification accepts server certificates that fail chain or hostname checks.
	SkipTLSVerification bool
	// UserAgent overrides DefaultUserAgent.
	UserAgent string
}

// ParseTarget parses raw as an absolute http(s) URL. The returned error is a
// *ValidationError of kind MalformedTarget.
func ParseTarget(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, &ValidationError{Kind: MalformedTarget, Target: raw, Err: errors.New("URL is empty")}
	}
	u, err := url.Parse(raw)
	if err != nil {
		// *url.Error echoes the raw input, userinfo included.
		return nil, &ValidationError{Kind: MalformedTarget, Target: RedactSecrets(raw), Err: errors.New(RedactSecrets(err.Error()))}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &ValidationError{Kind: MalformedTarget, Target: u.Redacted(), Err: errors.New("scheme must be http or https")}
	}
	if u.Host == "" {
		return nil, &ValidationError{Kind: MalformedTarget, Target: u.Redacted(), Err: errors.New("URL has no host")}
	}
	return u, nil
}
