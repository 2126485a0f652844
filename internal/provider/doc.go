// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package provider implements the Terraform Provider for back-office credential validation.
//
// Highlights:
//   - Configuration: `url` and `insecure_skip_verify` in the provider block, with
//     BACKOFFICE_URL / BACKOFFICE_INSECURE_SKIP_VERIFY environment fallbacks.
//   - Data source `backoffice_credential`: sends one Basic-authenticated GET per read;
//     HTTP 200 authenticates and exposes the flat JSON attributes of the principal.
//   - Rejections are results, not errors: `authenticated` is false and `attributes` is empty.
//   - Diagnostics never carry passwords, Authorization values or URL userinfo.
package provider
