package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Competition is the event a participant is registered for
type Competition string

const (
	CompetitionSeniorDesign            Competition = "senior_design"
	CompetitionJuniorDesign            Competition = "junior_design"
	CompetitionDebate                  Competition = "debate"
	CompetitionConsulting              Competition = "consulting"
	CompetitionScientificCommunication Competition = "scientific_communication"
	CompetitionProgramming             Competition = "programming"
	CompetitionReengineering           Competition = "reengineering"
	CompetitionInnovativeDesign        Competition = "innovative_design"
	CompetitionMachine                 Competition = "machine"
)

// Competitions lists every valid competition
var Competitions = []Competition{
	CompetitionSeniorDesign,
	CompetitionJuniorDesign,
	CompetitionDebate,
	CompetitionConsulting,
	CompetitionScientificCommunication,
	CompetitionProgramming,
	CompetitionReengineering,
	CompetitionInnovativeDesign,
	CompetitionMachine,
}

// ParseCompetition returns the competition matching s or an ErrInvalidEnum error
func ParseCompetition(s string) (Competition, error) {
	for _, c := range Competitions {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: competition %q", ErrInvalidEnum, s)
}

func (c Competition) Valid() bool {
	_, err := ParseCompetition(string(c))
	return err == nil
}

func (c *Competition) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCompetition(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c *Competition) Scan(value interface{}) error {
	s, err := scanEnum(value)
	if err != nil || s == "" {
		*c = ""
		return err
	}
	parsed, err := ParseCompetition(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Competition) Value() (driver.Value, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: competition %q", ErrInvalidEnum, string(c))
	}
	return string(c), nil
}
