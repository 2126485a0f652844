// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/terraform-plugin-framework/types"
)

// generic readers (HCL over env, then default behavior per caller)
func readString(s types.String, env string) string {
	if !s.IsNull() && !s.IsUnknown() {
		return s.ValueString()
	}
	if env == "" {
		return ""
	}
	return os.Getenv(env)
}

// readStringWithAliases reads a string preferring the HCL value, then a canonical env var,
// then any number of alias env vars in order.
func readStringWithAliases(s types.String, canonical string, aliases ...string) string {
	if v := readString(s, canonical); v != "" {
		return v
	}
	for _, a := range aliases {
		if a == "" {
			continue
		}
		if v := os.Getenv(a); v != "" {
			return v
		}
	}
	return ""
}

// readBoolWithEnv prefers the HCL value, then env, then def. The raw env value is
// returned when it was consulted so callers can report values that do not parse;
// an unparsable value yields def.
func readBoolWithEnv(v types.Bool, env string, def bool) (bool, string) {
	if !v.IsNull() && !v.IsUnknown() {
		return v.ValueBool(), ""
	}
	raw := strings.TrimSpace(os.Getenv(env))
	if raw == "" {
		return def, ""
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return def, raw
	}
	return b, raw
}
