// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package backoffice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/tidwall/gjson"
)

// UsernameAttribute always carries the username supplied by the caller.
const UsernameAttribute = "username"

// Attributes describes an authenticated principal. A nil Attributes means the
// credentials were rejected.
type Attributes map[string]string

// decodeAttributes flattens the top level of a JSON object into string
// attributes. Strings, numbers and booleans are kept; objects, arrays and nulls
// are dropped. Invalid UTF-8 is replaced with U+FFFD. A "username" key in the body never overrides the caller's value.
func decodeAttributes(ctx context.Context, username string, body []byte) (Attributes, error) {
	attrs := Attributes{UsernameAttribute: username}
	body = bytes.ToValidUTF8(body, []byte("\uFFFD"))

	if len(bytes.TrimSpace(body)) == 0 {
		tflog.Debug(ctx, "back office returned an empty body; only the username attribute is set")
		return attrs, nil
	}
	if !gjson.ValidBytes(body) {
		return nil, jsonSyntaxError(body)
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, fmt.Errorf("expected a JSON object, got %s", jsonKind(doc))
	}

	doc.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if name == UsernameAttribute {
			return true
		}
		switch value.Type {
		case gjson.String:
			attrs[name] = value.Str
		case gjson.Number:
			// keep the literal so 3 stays "3" and 1.50 stays "1.50"
			attrs[name] = value.Raw
		case gjson.True, gjson.False:
			attrs[name] = strconv.FormatBool(value.Bool())
		default:
			tflog.Trace(ctx, "dropping non-scalar attribute", map[string]interface{}{
				"attribute": name,
				"json_type": jsonKind(value),
			})
		}
		return true
	})

	return attrs, nil
}

func jsonKind(r gjson.Result) string {
	switch {
	case r.IsObject():
		return "object"
	case r.IsArray():
		return "array"
	case r.Type == gjson.Null:
		return "null"
	case r.Type == gjson.True, r.Type == gjson.False:
		return "boolean"
	default:
		return strings.ToLower(r.Type.String())
	}
}

// jsonSyntaxError reports where the body stops being JSON.
func jsonSyntaxError(body []byte) error {
	var probe json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return err
	}
	return errors.New("invalid JSON")
}
