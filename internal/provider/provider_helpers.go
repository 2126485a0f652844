// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"errors"
	"strings"

	"github.com/devops-wiz/terraform-provider-backoffice/internal/backoffice"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
)

// errorFromValidation builds a redacted summary and detail for a failed credential check.
func errorFromValidation(err error) (string, string) {
	kind, _ := backoffice.KindOf(err)

	var summary string
	switch kind {
	case backoffice.MalformedTarget:
		summary = "Invalid Back Office URL."
	case backoffice.Unreachable:
		summary = "Back Office Unreachable."
	case backoffice.MalformedUpstreamResponse:
		summary = "Malformed Back Office Response."
	default:
		summary = "Credential Validation Failed."
	}

	detailParts := []string{err.Error()}
	if errors.Is(err, context.DeadlineExceeded) {
		detailParts = append(detailParts, "Hint: deadline exceeded; increase validation_timeout or check back office latency.")
	} else if errors.Is(err, context.Canceled) {
		detailParts = append(detailParts, "Hint: canceled; the request was canceled before the back office answered.")
	}
	return summary, backoffice.RedactSecrets(strings.Join(detailParts, "\n"))
}

// appendValidationDiag records err on diags. Missing credentials are scoped to
// the username and password attributes; everything else is a general error.
func appendValidationDiag(err error, diags *diag.Diagnostics) {
	if errors.Is(err, backoffice.ErrInvalidInput) {
		diags.AddAttributeError(path.Root(attrCredentialUsername), "Missing credentials.", "Set username, password, or both. An unset value is sent as an empty string, but at least one must be set.")
		diags.AddAttributeError(path.Root(attrCredentialPassword), "Missing credentials.", "Set password, username, or both. An unset value is sent as an empty string, but at least one must be set.")
		return
	}
	summary, detail := errorFromValidation(err)
	diags.AddError(summary, detail)
}
