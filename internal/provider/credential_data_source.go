// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/devops-wiz/terraform-provider-backoffice/internal/backoffice"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

var _ datasource.DataSource = (*credentialDataSource)(nil)
var _ datasource.DataSourceWithConfigure = (*credentialDataSource)(nil)

// NewCredentialDataSource returns the Terraform data source implementation for backoffice_credential.
func NewCredentialDataSource() datasource.DataSource { return &credentialDataSource{} }

type credentialDataSource struct {
	validator         *backoffice.Validator
	validationTimeout time.Duration
}

func (d *credentialDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_credential"
}

func (d *credentialDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Validates a username/password pair against the configured back office. " +
			"The pair is sent as an HTTP Basic Authorization header; HTTP 200 authenticates it, any other status rejects it.",
		Attributes: map[string]schema.Attribute{
			// Inputs
			attrCredentialUsername: schema.StringAttribute{
				Optional:            true,
				MarkdownDescription: "Username to validate. At least one of username or password must be set; an unset value is sent as an empty string.",
				Validators: []validator.String{
					stringvalidator.AtLeastOneOf(path.MatchRoot(attrCredentialPassword)),
				},
			},
			attrCredentialPassword: schema.StringAttribute{
				Optional:            true,
				Sensitive:           true,
				MarkdownDescription: "Password to validate.",
			},

			// Outputs
			attrCredentialID: schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Stable identifier derived from the back-office URL and username.",
			},
			attrCredentialAuthenticated: schema.BoolAttribute{
				Computed:            true,
				MarkdownDescription: "Whether the back office accepted the credentials (HTTP 200).",
			},
			attrCredentialAttributes: schema.MapAttribute{
				ElementType: types.StringType,
				Computed:    true,
				MarkdownDescription: "Attributes of the authenticated principal: `username` plus every top-level string, number or boolean " +
					"in the back office's JSON response. Empty when the credentials are rejected.",
			},
		},
	}
}

func (d *credentialDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	if req.ProviderData == nil {
		return
	}

	provider, ok := req.ProviderData.(*BackofficeProvider)
	if !ok {
		resp.Diagnostics.AddError(
			"Unexpected Data Source Configure Type",
			fmt.Sprintf("Expected BackofficeProvider, got: %T. Please report this issue to the provider developers.", req.ProviderData),
		)
		return
	}

	d.validator = provider.validator
	d.validationTimeout = provider.validationTimeout
}

func (d *credentialDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	ctx, cancel := withTimeout(ctx, d.validationTimeout)
	defer cancel()

	var data credentialDataSourceModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	if d.validator == nil {
		resp.Diagnostics.AddError(
			"Unconfigured Back Office Provider",
			"The backoffice provider has not been configured. Set 'url' in the provider block or the BACKOFFICE_URL environment variable.",
		)
		return
	}

	ctx = tflog.SetField(ctx, attrCredentialUsername, data.Username.ValueString())

	attrs, err := d.validator.Validate(ctx, optionalString(data.Username), optionalString(data.Password))
	if err != nil {
		appendValidationDiag(err, &resp.Diagnostics)
		return
	}
	if attrs == nil {
		tflog.Info(ctx, "back office rejected credentials")
	}

	if diags := data.TransformToState(ctx, d.validator.Target(), attrs); diags.HasError() {
		resp.Diagnostics.Append(diags...)
		return
	}

	if diags := resp.State.Set(ctx, &data); diags.HasError() {
		resp.Diagnostics.AddError(
			"Failed to set data source state",
			"An unexpected error occurred while writing computed data to Terraform state. See diagnostics for details.",
		)
		resp.Diagnostics.Append(diags...)
		return
	}
}
