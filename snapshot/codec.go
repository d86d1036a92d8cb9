// SPDX-License-Identifier: MIT
// Package: lvmorse/snapshot
//
// codec.go — body encodings.

package snapshot

import (
	"encoding/json"

	gojson "github.com/goccy/go-json"
)

// Codec encodes and decodes the snapshot document.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// CodecID is the header byte naming a codec.
type CodecID uint8

const (
	// CodecJSON selects encoding/json.
	CodecJSON CodecID = 0
	// CodecGoJSON selects github.com/goccy/go-json.
	CodecGoJSON CodecID = 1
)

// JSON is the standard-library codec.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns "json".
func (JSON) Name() string { return "json" }

// GoJSON is a JSON codec backed by github.com/goccy/go-json.
type GoJSON struct{}

// Marshal encodes the value to JSON.
func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

// Name returns "go-json".
func (GoJSON) Name() string { return "go-json" }

// byID returns the codec stored under id.
func byID(id CodecID) (Codec, bool) {
	switch id {
	case CodecJSON:
		return JSON{}, true
	case CodecGoJSON:
		return GoJSON{}, true
	default:
		return nil, false
	}
}
