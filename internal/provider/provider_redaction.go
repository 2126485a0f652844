// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"net/url"
	"strings"

	"github.com/devops-wiz/terraform-provider-backoffice/internal/backoffice"
)

// sanitizeValidationError returns a copy of the given validation error with secrets redacted.
// A back-office URL may carry service credentials in its userinfo.
func sanitizeValidationError(e validationErr, rc resolvedConfig) validationErr {
	summary, detail := e.summary, e.detail
	if u, err := url.Parse(rc.url); err == nil && u.User != nil {
		summary = strings.ReplaceAll(summary, rc.url, u.Redacted())
		detail = strings.ReplaceAll(detail, rc.url, u.Redacted())
	}

	e.summary = backoffice.RedactSecrets(summary)
	e.detail = backoffice.RedactSecrets(detail)
	return e
}
