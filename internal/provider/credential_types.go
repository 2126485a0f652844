// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/devops-wiz/terraform-provider-backoffice/internal/backoffice"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

const (
	attrCredentialUsername      = "username"
	attrCredentialPassword      = "password"
	attrCredentialID            = "id"
	attrCredentialAuthenticated = "authenticated"
	attrCredentialAttributes    = "attributes"
)

type credentialDataSourceModel struct {
	// Inputs (at least one must be provided)
	Username types.String `tfsdk:"username"`
	Password types.String `tfsdk:"password"`

	// Outputs (all computed)
	ID            types.String `tfsdk:"id"`
	Authenticated types.Bool   `tfsdk:"authenticated"`
	Attributes    types.Map    `tfsdk:"attributes"`
}

// TransformToState maps a validation outcome onto the computed attributes. nil
// attrs is a rejection and yields authenticated = false with an empty map.
func (m *credentialDataSourceModel) TransformToState(ctx context.Context, target string, attrs backoffice.Attributes) diag.Diagnostics {
	m.ID = types.StringValue(credentialID(target, m.Username.ValueString()))
	m.Authenticated = types.BoolValue(attrs != nil)

	values := map[string]string{}
	for k, v := range attrs {
		values[k] = v
	}
	mv, diags := types.MapValueFrom(ctx, types.StringType, values)
	m.Attributes = mv
	return diags
}

// credentialID is stable for a URL and username and never depends on the password.
func credentialID(target, username string) string {
	sum := sha256.Sum256([]byte(target + "\x00" + username))
	return hex.EncodeToString(sum[:16])
}
