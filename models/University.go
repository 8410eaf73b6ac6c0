package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// University identifies the delegation a participant belongs to.
// It is the scoping key for chef-level access.
type University string

const (
	UniversityETS           University = "ets"
	UniversityPolytechnique University = "polytechnique"
	UniversityMcGill        University = "mcgill"
	UniversityConcordia     University = "concordia"
	UniversityLaval         University = "laval"
	UniversitySherbrooke    University = "sherbrooke"
	UniversityUQAC          University = "uqac"
	UniversityUQAR          University = "uqar"
	UniversityUQAT          University = "uqat"
	UniversityUQO           University = "uqo"
	UniversityUQTR          University = "uqtr"
	UniversityOttawa        University = "ottawa"
	UniversityUnassigned    University = "unassigned"
)

var Universities = []University{
	UniversityETS,
	UniversityPolytechnique,
	UniversityMcGill,
	UniversityConcordia,
	UniversityLaval,
	UniversitySherbrooke,
	UniversityUQAC,
	UniversityUQAR,
	UniversityUQAT,
	UniversityUQO,
	UniversityUQTR,
	UniversityOttawa,
	UniversityUnassigned,
}

// ParseUniversity returns the university matching s or an ErrInvalidEnum error
func ParseUniversity(s string) (University, error) {
	for _, u := range Universities {
		if string(u) == s {
			return u, nil
		}
	}
	return "", fmt.Errorf("%w: university %q", ErrInvalidEnum, s)
}

func (u University) Valid() bool {
	_, err := ParseUniversity(string(u))
	return err == nil
}

// Ptr returns a pointer to a copy of u
func (u University) Ptr() *University {
	return &u
}

func (u *University) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseUniversity(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

func (u *University) Scan(value interface{}) error {
	s, err := scanEnum(value)
	if err != nil || s == "" {
		*u = ""
		return err
	}
	parsed, err := ParseUniversity(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

func (u University) Value() (driver.Value, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("%w: university %q", ErrInvalidEnum, string(u))
	}
	return string(u), nil
}
