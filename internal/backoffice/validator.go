// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package backoffice

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// rejectionDrainLimit caps how much of a non-200 body is read so the connection can be reused.
const rejectionDrainLimit = 4 << 10

// Validator checks username/password pairs against a back-office endpoint. It is
// immutable after New and safe for concurrent use.
type Validator struct {
	target    *url.URL
	userAgent string
	client    *retryablehttp.Client
}

// New builds a Validator for cfg. It fails with a MalformedTarget
// *ValidationError when cfg.TargetURL does not parse.
func New(cfg Config) (*Validator, error) {
	target, err := ParseTarget(cfg.TargetURL)
	if err != nil {
		return nil, err
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Validator{
		target:    target,
		userAgent: userAgent,
		client:    buildHTTPClient(cfg.SkipTLSVerification),
	}, nil
}

// Validate is a one-shot helper for callers that do not keep a Validator around.
func Validate(ctx context.Context, cfg Config, username, password *string) (Attributes, error) {
	v, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return v.Validate(ctx, username, password)
}

// Target returns the configured URL with any password removed.
func (v *Validator) Target() string {
	return v.target.Redacted()
}

// buildHTTPClient returns a client that issues exactly one attempt per request.
// Only the TLS verification setting deviates from the pooled defaults; there is
// no client timeout, callers bound latency through the request context.
func buildHTTPClient(skipTLSVerification bool) *retryablehttp.Client {
	transport := cleanhttp.DefaultPooledTransport()
	if skipTLSVerification {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in per configuration
	}

	rcClient := retryablehttp.NewClient()
	rcClient.HTTPClient = &http.Client{Transport: transport}
	rcClient.RetryMax = 0
	rcClient.CheckRetry = noRetry
	rcClient.Logger = nil
	return rcClient
}

// noRetry hands every response back to the caller, whatever its status.
func noRetry(_ context.Context, _ *http.Response, _ error) (bool, error) {
	return false, nil
}

// BasicAuthorization returns the RFC 7617 Authorization header value for the pair.
func BasicAuthorization(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

// Validate sends the credentials to the back office. It returns the principal's
// attributes on HTTP 200, (nil, nil) on any other status, and a
// *ValidationError when the attempt itself fails. An absent username or
// password is sent as the empty string, never as a placeholder like "null";
// both absent is InvalidInput.
func (v *Validator) Validate(ctx context.Context, username, password *string) (Attributes, error) {
	target := v.Target()
	if username == nil && password == nil {
		return nil, &ValidationError{Kind: InvalidInput, Target: target}
	}
	user, pass := valueOrEmpty(username), valueOrEmpty(password)

	ctx = tflog.SetField(ctx, "backoffice_url", target)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, v.target.String(), nil)
	if err != nil {
		return nil, &ValidationError{Kind: MalformedTarget, Target: target, Err: err}
	}
	req.Header.Set("Authorization", BasicAuthorization(user, pass))
	req.Header.Set("User-Agent", v.userAgent)

	tflog.Debug(ctx, "sending credentials to back office", map[string]interface{}{
		"request_headers": RedactHeaders(req.Header),
	})

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, &ValidationError{Kind: Unreachable, Target: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		tflog.Debug(ctx, "back office rejected credentials", map[string]interface{}{"status": resp.StatusCode})
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, rejectionDrainLimit))
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ValidationError{Kind: Unreachable, Target: target, Err: fmt.Errorf("reading response body: %w", err)}
	}

	attrs, err := decodeAttributes(ctx, user, body)
	if err != nil {
		return nil, &ValidationError{Kind: MalformedUpstreamResponse, Target: target, Body: bodySnippet(body), Err: err}
	}

	tflog.Debug(ctx, "back office accepted credentials", map[string]interface{}{"attribute_count": len(attrs)})
	return attrs, nil
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
