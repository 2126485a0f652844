// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"fmt"

	"github.com/devops-wiz/terraform-provider-backoffice/internal/backoffice"
)

// buildValidator creates the credential validator, including TLS policy and user agent.
func (p *BackofficeProvider) buildValidator(rc resolvedConfig) (*backoffice.Validator, error) {
	return backoffice.New(backoffice.Config{
		TargetURL:           rc.url,
		SkipTLSVerification: rc.insecureSkipVerify,
		UserAgent:           fmt.Sprintf("devops-wiz/terraform-provider-backoffice/%s", p.version),
	})
}
