package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as T. In-process events carry T (or *T)
// directly. Payloads read back from JSON arrive as raw bytes or generic maps
// and are converted through encoding/json.
func DecodePayload[T any](input interface{}) (T, error) {
	var out T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, fmt.Errorf("decode %T: nil payload", out)
		}
		return *v, nil
	case json.RawMessage:
		return out, json.Unmarshal(v, &out)
	case []byte:
		return out, json.Unmarshal(v, &out)
	case nil:
		return out, fmt.Errorf("decode %T: nil payload", out)
	}

	raw, err := json.Marshal(input)
	if err != nil {
		return out, fmt.Errorf("decode %T: %w", out, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %T: %w", out, err)
	}
	return out, nil
}
