// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package backoffice validates username/password pairs against a back-office
// HTTP endpoint.
//
// The credentials travel as an HTTP Basic Authorization header on a single GET
// request. A 200 response authenticates the pair and its JSON object body is
// flattened into string attributes; any other status rejects the pair without
// an error. Failures to reach the endpoint or to make sense of a 200 body are
// reported as *ValidationError values.
package backoffice
