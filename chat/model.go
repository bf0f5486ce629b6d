package chat

import "encoding/json"

// Model identifies which backend model variant to invoke.
// The zero value is the baseline variant.
type Model int

const (
	// ModelGPT35Turbo is the baseline chat model.
	ModelGPT35Turbo Model = iota
	// ModelGPT35Turbo0301 is the pinned 2023-03-01 snapshot.
	ModelGPT35Turbo0301
)

// String returns the wire identifier for the model.
func (m Model) String() string {
	switch m {
	case ModelGPT35Turbo:
		return "gpt-3.5-turbo"
	case ModelGPT35Turbo0301:
		return "gpt-3.5-turbo-0301"
	default:
		return "unknown"
	}
}

// ParseModel maps a wire identifier to a Model.
// Returns an EnumError for strings outside the closed set.
func ParseModel(s string) (Model, error) {
	switch s {
	case "gpt-3.5-turbo":
		return ModelGPT35Turbo, nil
	case "gpt-3.5-turbo-0301":
		return ModelGPT35Turbo0301, nil
	default:
		return 0, &EnumError{Kind: "model", Value: s}
	}
}

// MarshalJSON encodes the model as its wire identifier.
func (m Model) MarshalJSON() ([]byte, error) {
	switch m {
	case ModelGPT35Turbo, ModelGPT35Turbo0301:
		return json.Marshal(m.String())
	default:
		return nil, &EnumError{Kind: "model", Value: m.String()}
	}
}

// UnmarshalJSON decodes a wire identifier, rejecting unknown strings.
func (m *Model) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseModel(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
