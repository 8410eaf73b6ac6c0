package models

import (
	"time"

	"github.com/google/uuid"
)

// Participant is the canonical registration record, every field included.
// Rows are created from a MinimalParticipant; the optional fields stay null until the
// participant completes their profile.
type Participant struct {
	ID                 uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Role               Role         `gorm:"type:varchar(20);not null;index" json:"role"`
	Email              string       `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	FirstName          string       `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName           string       `gorm:"type:varchar(100);not null" json:"last_name"`
	University         *University  `gorm:"type:varchar(50);column:university_name;index" json:"university_name"`
	Competition        *Competition `gorm:"type:varchar(50)" json:"competition"`
	PasswordHash       string       `gorm:"type:varchar(255);not null" json:"-"`
	MedicalConditions  *string      `gorm:"type:text" json:"medical_conditions"`
	Allergies          *string      `gorm:"type:text" json:"allergies"`
	Pronouns           *string      `gorm:"type:varchar(50)" json:"pronouns"`
	PhoneNumber        *string      `gorm:"type:varchar(50)" json:"phone_number"`
	TshirtSize         *string      `gorm:"type:varchar(10)" json:"tshirt_size"`
	Comments           *string      `gorm:"type:text" json:"comments"`
	EmergencyContact   *string      `gorm:"type:text" json:"emergency_contact"`
	HasMonthlyOpusCard *bool        `json:"has_monthly_opus_card"`
	ReducedMobility    *string      `gorm:"type:text" json:"reduced_mobility"`
	StudyProof         Attachment   `json:"study_proof"`
	Photo              Attachment   `json:"photo"`
	CV                 Attachment   `gorm:"column:cv" json:"cv"`
	CreatedAt          time.Time    `gorm:"not null;index" json:"created_at"`
}

// MinimalParticipant is the shape required to create a participant
type MinimalParticipant struct {
	FirstName   string      `json:"first_name" binding:"required"`
	LastName    string      `json:"last_name" binding:"required"`
	Email       string      `json:"email" binding:"required,email"`
	Competition Competition `json:"competition" binding:"required"`
	Role        Role        `json:"role" binding:"required"`
}

// ParticipantPreview is the listing view of a participant.
// It reports whether a CV was uploaded without ever carrying attachment content.
type ParticipantPreview struct {
	ID          uuid.UUID    `gorm:"column:id" json:"id"`
	FirstName   string       `gorm:"column:first_name" json:"first_name"`
	LastName    string       `gorm:"column:last_name" json:"last_name"`
	Email       string       `gorm:"column:email" json:"email"`
	Role        Role         `gorm:"column:role" json:"role"`
	Competition *Competition `gorm:"column:competition" json:"competition"`
	University  *University  `gorm:"column:university_name" json:"university"`
	ContainCV   bool         `gorm:"column:contain_cv" json:"contain_cv"`
}

// Preview projects the full record onto its listing view
func (p *Participant) Preview() ParticipantPreview {
	return ParticipantPreview{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		Role:        p.Role,
		Competition: p.Competition,
		University:  p.University,
		ContainCV:   p.CV.Present(),
	}
}

// Minimal projects the full record onto its creation shape
func (p *Participant) Minimal() MinimalParticipant {
	m := MinimalParticipant{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Role:      p.Role,
	}
	if p.Competition != nil {
		m.Competition = *p.Competition
	}
	return m
}

// Validate checks the enum tags of a creation payload
func (m MinimalParticipant) Validate() error {
	if _, err := ParseRole(string(m.Role)); err != nil {
		return err
	}
	if _, err := ParseCompetition(string(m.Competition)); err != nil {
		return err
	}
	return nil
}
