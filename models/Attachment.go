package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Attachment is an uploaded document (study proof, photo, CV).
// It travels as standard base64 text in JSON; an absent attachment is null, never "".
type Attachment []byte

// Present reports whether the attachment carries any content
func (a Attachment) Present() bool {
	return len(a) > 0
}

func (a Attachment) MarshalJSON() ([]byte, error) {
	if !a.Present() {
		return []byte("null"), nil
	}
	return json.Marshal(base64.StdEncoding.EncodeToString(a))
}

func (a *Attachment) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*a = nil
		return nil
	}
	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return err
	}
	if encoded == "" {
		*a = nil
		return nil
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("invalid attachment encoding: %w", err)
	}
	*a = decoded
	return nil
}

// Scan implements sql.Scanner, NULL maps to an absent attachment
func (a *Attachment) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*a = nil
	case []byte:
		if len(v) == 0 {
			*a = nil
			return nil
		}
		*a = bytes.Clone(v)
	case string:
		if v == "" {
			*a = nil
			return nil
		}
		*a = []byte(v)
	default:
		return fmt.Errorf("unsupported attachment column type %T", value)
	}
	return nil
}

// Value implements driver.Valuer, an absent attachment is stored as NULL
func (a Attachment) Value() (driver.Value, error) {
	if !a.Present() {
		return nil, nil
	}
	return []byte(a), nil
}
