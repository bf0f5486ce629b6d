package chat

import "encoding/json"

// Role identifies the author of a conversational turn.
type Role int

const (
	// RoleSystem assigns a behavior to the assistant.
	RoleSystem Role = iota
	// RoleUser instructs the assistant.
	RoleUser
	// RoleAssistant marks a previous assistant response in the history.
	RoleAssistant
)

// String returns the wire identifier for the role.
func (r Role) String() string {
	switch r {
	case RoleSystem:
		return "system"
	case RoleUser:
		return "user"
	case RoleAssistant:
		return "assistant"
	default:
		return "unknown"
	}
}

// ParseRole maps a wire identifier to a Role.
// Returns an EnumError for strings outside the closed set.
func ParseRole(s string) (Role, error) {
	switch s {
	case "system":
		return RoleSystem, nil
	case "user":
		return RoleUser, nil
	case "assistant":
		return RoleAssistant, nil
	default:
		return 0, &EnumError{Kind: "role", Value: s}
	}
}

// MarshalJSON encodes the role as its wire identifier.
func (r Role) MarshalJSON() ([]byte, error) {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return json.Marshal(r.String())
	default:
		return nil, &EnumError{Kind: "role", Value: r.String()}
	}
}

// UnmarshalJSON decodes a wire identifier, rejecting unknown strings.
func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
