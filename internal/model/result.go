package model

import "encoding/json"

// Result is the lint service's decoded JSON document. The keys and values
// are whatever the service returned; nothing here interprets them.
type Result map[string]any

// Indent renders the result as pretty-printed JSON with 4-space indentation,
// the shape written to stdout on a successful lint.
func (r Result) Indent() ([]byte, error) {
	return json.MarshalIndent(r, "", "    ")
}
