// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import "time"

// Centralized attribute names used in provider configuration schema and validation
const (
	attrURL                = "url"
	attrInsecureSkipVerify = "insecure_skip_verify"
	attrValidationTimeout  = "validation_timeout"
)

// Environment variables read when the provider block leaves an attribute unset.
const (
	envURL                = "BACKOFFICE_URL"
	envURLAlias           = "BACKOFFICE_ENDPOINT"
	envInsecureSkipVerify = "BACKOFFICE_INSECURE_SKIP_VERIFY"
)

// Centralized provider defaults
const (
	defaultInsecureSkipVerify = false
	maxValidationTimeout      = 10 * time.Minute
)
