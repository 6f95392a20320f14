/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package json

import (
	"bytes"
	"encoding/json"

	sigsyaml "sigs.k8s.io/yaml"
)

// UnmarshalStrict decodes data into v and fails on fields the target type
// does not declare. Used for wire-format fixtures where a silently dropped
// field would hide a mapping mismatch.
func UnmarshalStrict(data []byte, v interface{}) error {
	d := json.NewDecoder(bytes.NewReader(data))
	d.DisallowUnknownFields()
	return d.Decode(v)
}

// MarshalSilently marshals v, returning nil on any failure.
func MarshalSilently(v interface{}) []byte {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}

// UnmarshalYaml decodes YAML data into v through the JSON field tags of v.
func UnmarshalYaml(data []byte, v interface{}) error {
	return sigsyaml.Unmarshal(data, v)
}
