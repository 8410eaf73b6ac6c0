package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidEnum is returned when a role, competition or university value is not one of the known tags
var ErrInvalidEnum = errors.New("invalid enum value")

// Role is the closed set of account roles a participant row can carry
type Role string

const (
	RoleOrganizer   Role = "organizer"
	RoleChef        Role = "chef"
	RoleParticipant Role = "participant"
	RoleVolunteer   Role = "volunteer"
)

// Roles lists every valid role
var Roles = []Role{RoleOrganizer, RoleChef, RoleParticipant, RoleVolunteer}

// ParseRole returns the role matching s or an ErrInvalidEnum error
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: role %q", ErrInvalidEnum, s)
}

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

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

// Scan implements sql.Scanner, rejecting unknown tags read back from the database
func (r *Role) Scan(value interface{}) error {
	s, err := scanEnum(value)
	if err != nil || s == "" {
		*r = ""
		return err
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Value implements driver.Valuer so an invalid role never reaches the database
func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: role %q", ErrInvalidEnum, string(r))
	}
	return string(r), nil
}

// scanEnum converts a raw column value into a string, NULL becomes ""
func scanEnum(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("%w: unsupported column type %T", ErrInvalidEnum, value)
	}
}
