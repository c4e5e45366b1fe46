package nationality

import "encoding/json"

// MarshalJSON encodes the code as a JSON string, or null when absent.
func (n Nationality) MarshalJSON() ([]byte, error) {
	if n.code == "" {
		return []byte("null"), nil
	}
	return json.Marshal(n.code)
}

// UnmarshalJSON accepts a JSON string or null. No code validation happens
// here; unknown codes are stored and simply fail to resolve a name.
func (n *Nationality) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.code = ""
		return nil
	}
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	n.code = code
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (n Nationality) MarshalText() ([]byte, error) {
	return []byte(n.code), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Nationality) UnmarshalText(text []byte) error {
	n.code = string(text)
	return nil
}
