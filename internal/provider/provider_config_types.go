// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import "time"

// validationErr captures a configuration validation error and optional attribute path.
type validationErr struct {
	attr    string // empty for general error
	summary string
	detail  string
}

// resolvedConfig contains normalized provider configuration used to build the validator.
type resolvedConfig struct {
	url                   string
	insecureSkipVerify    bool
	insecureSkipVerifyRaw string // env value when the bool came from the environment
	validationTimeoutRaw  string
	validationTimeout     time.Duration
}
