// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/devops-wiz/terraform-provider-backoffice/internal/backoffice"
)

// configuration derivation (unified) to avoid duplicated parsing across sections
func deriveResolvedConfig(data BackofficeProviderModel) resolvedConfig {
	url := strings.TrimSpace(readStringWithAliases(data.URL, envURL, envURLAlias))
	insecure, insecureRaw := readBoolWithEnv(data.InsecureSkipVerify, envInsecureSkipVerify, defaultInsecureSkipVerify)
	timeoutRaw := strings.TrimSpace(readString(data.ValidationTimeout, ""))

	return resolvedConfig{
		url:                   url,
		insecureSkipVerify:    insecure,
		insecureSkipVerifyRaw: insecureRaw,
		validationTimeoutRaw:  timeoutRaw,
	}
}

// validation per-section
func validateBase(rc resolvedConfig) []validationErr {
	if rc.url == "" {
		return []validationErr{{attr: attrURL, summary: "Missing Back Office URL Configuration.", detail: fmt.Sprintf("Provide 'url' or set %s (or %s alias) environment variable.", envURL, envURLAlias)}}
	}
	if _, err := backoffice.ParseTarget(rc.url); err != nil {
		return []validationErr{{attr: attrURL, summary: "Invalid Back Office URL Configuration.", detail: err.Error()}}
	}
	return nil
}

func validateTLS(rc resolvedConfig) []validationErr {
	if rc.insecureSkipVerifyRaw == "" {
		return nil
	}
	if _, err := strconv.ParseBool(rc.insecureSkipVerifyRaw); err != nil {
		return []validationErr{{attr: attrInsecureSkipVerify, summary: "Invalid TLS Verification Configuration.", detail: fmt.Sprintf("%s must be a boolean (true/false/1/0); got %q", envInsecureSkipVerify, rc.insecureSkipVerifyRaw)}}
	}
	return nil
}

// parseValidationTimeout parses the optional validation_timeout. An empty value
// means no deadline beyond the one Terraform puts on the context.
func parseValidationTimeout(raw string) (time.Duration, []validationErr) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, []validationErr{{
			attr:    attrValidationTimeout,
			summary: "Invalid validation timeout value.",
			detail:  fmt.Sprintf("Failed to parse duration %q: %v. Use values like '30s' or '2m'.", raw, err),
		}}
	}
	if d <= 0 {
		return 0, []validationErr{{
			attr:    attrValidationTimeout,
			summary: "Invalid validation timeout value.",
			detail:  fmt.Sprintf("validation_timeout must be greater than 0; got %s", d),
		}}
	}
	if d > maxValidationTimeout {
		return 0, []validationErr{{
			attr:    attrValidationTimeout,
			summary: "Invalid validation timeout value.",
			detail:  fmt.Sprintf("validation_timeout must be at most %s; got %s", maxValidationTimeout, d),
		}}
	}
	return d, nil
}

func validateTimeout(rc resolvedConfig) []validationErr {
	_, errs := parseValidationTimeout(rc.validationTimeoutRaw)
	return errs
}

func validateResolvedConfig(rc resolvedConfig) []validationErr {
	var all []validationErr
	all = append(all, validateBase(rc)...)
	all = append(all, validateTLS(rc)...)
	all = append(all, validateTimeout(rc)...)

	for i := range all {
		all[i] = sanitizeValidationError(all[i], rc)
	}
	return all
}
