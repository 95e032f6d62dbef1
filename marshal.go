// Copyright 2026 the chinese-lunisolar-calendar authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lunisolar

import (
	"go.yaml.in/yaml/v3"
)

// MarshalText implements encoding.TextMarshaler. Dates marshal in the
// numeric yyyy-mm-dd form. encoding/json picks this up, so SolarDate
// values marshal as yyyy-mm-dd strings in JSON too.
func (sd SolarDate) MarshalText() ([]byte, error) {
	return []byte(sd.NumericString()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting either
// the numeric or the Chinese textual form.
func (sd *SolarDate) UnmarshalText(data []byte) error {
	return sd.Parse(string(data))
}

// MarshalYAML implements yaml.Marshaler.
func (sd SolarDate) MarshalYAML() (interface{}, error) {
	return sd.NumericString(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting either the
// numeric or the Chinese textual form.
func (sd *SolarDate) UnmarshalYAML(value *yaml.Node) error {
	return sd.Parse(value.Value)
}
