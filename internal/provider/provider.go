// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"regexp"
	"time"

	"github.com/devops-wiz/terraform-provider-backoffice/internal/backoffice"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Ensure BackofficeProvider satisfies various provider interfaces.
var _ provider.Provider = &BackofficeProvider{}
var _ provider.ProviderWithValidateConfig = &BackofficeProvider{}

// BackofficeProvider defines the provider implementation.
type BackofficeProvider struct {
	// version is set to the provider version on release, "dev" when the
	// provider is built and ran locally, and "test" when running acceptance
	// testing.
	version string
	// validator is shared by every data source instance.
	validator *backoffice.Validator
	// validationTimeout bounds each credential check; zero means no extra deadline.
	validationTimeout time.Duration
}

// BackofficeProviderModel describes the provider data model.
type BackofficeProviderModel struct {
	URL                types.String `tfsdk:"url"`
	InsecureSkipVerify types.Bool   `tfsdk:"insecure_skip_verify"`
	ValidationTimeout  types.String `tfsdk:"validation_timeout"`
}

func (p *BackofficeProvider) Metadata(_ context.Context, _ provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = "backoffice"
	resp.Version = p.version
}

func (p *BackofficeProvider) Schema(_ context.Context, _ provider.SchemaRequest, resp *provider.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Validates username/password pairs against a back-office HTTP endpoint using HTTP Basic authentication.",
		Attributes: map[string]schema.Attribute{
			attrURL: schema.StringAttribute{
				MarkdownDescription: "Back-office URL that receives the credentials (e.g., 'https://backoffice.example.com/api/login'). " +
					"Required; may instead be set with the `BACKOFFICE_URL` (or `BACKOFFICE_ENDPOINT`) environment variable.",
				Optional: true,
				Validators: []validator.String{
					stringvalidator.RegexMatches(regexp.MustCompile(`(?i)^https?://`), "url must start with http:// or https://."),
				},
			},
			attrInsecureSkipVerify: schema.BoolAttribute{
				MarkdownDescription: "Accept back-office TLS certificates that fail chain or hostname verification. Defaults to false. " +
					"May be set with the `BACKOFFICE_INSECURE_SKIP_VERIFY` environment variable.",
				Optional: true,
			},
			attrValidationTimeout: schema.StringAttribute{
				MarkdownDescription: "Upper bound for a single credential check as a Go duration (e.g., '30s'). Unset means no bound beyond Terraform's own.",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(2),
				},
			},
		},
	}
}

// ValidateConfig catches malformed literal values at plan time. Missing values
// are left to Configure because the environment may still supply them.
func (p *BackofficeProvider) ValidateConfig(ctx context.Context, req provider.ValidateConfigRequest, resp *provider.ValidateConfigResponse) {
	var data BackofficeProviderModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	rc := resolvedConfig{}
	var errs []validationErr
	if !data.URL.IsNull() && !data.URL.IsUnknown() {
		rc.url = data.URL.ValueString()
		errs = append(errs, validateBase(rc)...)
	}
	if !data.ValidationTimeout.IsNull() && !data.ValidationTimeout.IsUnknown() {
		rc.validationTimeoutRaw = data.ValidationTimeout.ValueString()
		errs = append(errs, validateTimeout(rc)...)
	}

	for _, e := range errs {
		e = sanitizeValidationError(e, rc)
		resp.Diagnostics.AddAttributeError(path.Root(e.attr), e.summary, e.detail)
	}
}

func (p *BackofficeProvider) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	var data BackofficeProviderModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	rc := deriveResolvedConfig(data)
	if errs := validateResolvedConfig(rc); len(errs) > 0 {
		for _, e := range errs {
			if e.attr == "" {
				resp.Diagnostics.AddError(e.summary, e.detail)
				continue
			}
			resp.Diagnostics.AddAttributeError(path.Root(e.attr), e.summary, e.detail)
		}
		return
	}
	rc.validationTimeout, _ = parseValidationTimeout(rc.validationTimeoutRaw)

	v, err := p.buildValidator(rc)
	if err != nil {
		resp.Diagnostics.AddAttributeError(path.Root(attrURL), "Invalid Back Office URL Configuration.", backoffice.RedactSecrets(err.Error()))
		return
	}

	ctx = tflog.SetField(ctx, "backoffice_url", v.Target())
	if rc.insecureSkipVerify {
		tflog.Warn(ctx, "TLS certificate verification is disabled for the back office")
	}
	tflog.Info(ctx, "configured back office provider", map[string]interface{}{
		"validation_timeout": rc.validationTimeout.String(),
	})

	p.validator = v
	p.validationTimeout = rc.validationTimeout

	resp.DataSourceData = p
}

func (p *BackofficeProvider) Resources(_ context.Context) []func() resource.Resource {
	return []func() resource.Resource{}
}

func (p *BackofficeProvider) DataSources(_ context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		NewCredentialDataSource,
	}
}

func New(version string) func() provider.Provider {
	return func() provider.Provider {
		return &BackofficeProvider{
			version: version,
		}
	}
}
