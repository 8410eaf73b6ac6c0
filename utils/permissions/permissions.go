// Package permissions decides which participant rows a caller may touch.
// Every decision is a pure function of the caller's claims, the operation and,
// for university listings, the requested university.
package permissions

import (
	"slices"

	"registrations/models"

	"github.com/google/uuid"
)

// Claims are the already-authenticated facts attached to a request
type Claims struct {
	Subject    uuid.UUID
	Role       models.Role
	University *models.University
}

// Operation is an action on participant records
type Operation string

const (
	ReadAll        Operation = "read_all"
	ReadOne        Operation = "read_one"
	ReadUniversity Operation = "read_university"
	Create         Operation = "create"
	Delete         Operation = "delete"
	Export         Operation = "export"
	Import         Operation = "import"
)

// chefVisibleRoles are the roles a chef sees among the rows of their own university
var chefVisibleRoles = []models.Role{models.RoleParticipant, models.RoleChef}

// Filter is a predicate over participant rows. Zero fields do not restrict.
type Filter struct {
	ID         *uuid.UUID
	University *models.University
	Roles      []models.Role
}

// IsEmpty reports whether the filter matches every row
func (f Filter) IsEmpty() bool {
	return f.ID == nil && f.University == nil && len(f.Roles) == 0
}

// Matches evaluates the filter against a row
func (f Filter) Matches(id uuid.UUID, role models.Role, university *models.University) bool {
	if f.ID != nil && *f.ID != id {
		return false
	}
	if f.University != nil && (university == nil || *university != *f.University) {
		return false
	}
	if len(f.Roles) > 0 && !slices.Contains(f.Roles, role) {
		return false
	}
	return true
}

// MatchesParticipant evaluates the filter against a full record
func (f Filter) MatchesParticipant(p *models.Participant) bool {
	return f.Matches(p.ID, p.Role, p.University)
}

// Decision is the outcome of Resolve
type Decision struct {
	Allowed bool
	Filter  Filter
}

var deny = Decision{}

func allow(filter Filter) Decision {
	return Decision{Allowed: true, Filter: filter}
}

// CanProvision reports whether the role may create participant accounts
func CanProvision(role models.Role) bool {
	return role == models.RoleOrganizer || role == models.RoleChef
}

// CanAssignRole reports whether a caller with role may provision an account carrying target.
// A chef only provisions participants: a new row lands in the default university, so a
// chef-made chef or organizer would hold a scope its creator never had.
func CanAssignRole(caller, target models.Role) bool {
	switch caller {
	case models.RoleOrganizer:
		return target.Valid()
	case models.RoleChef:
		return target == models.RoleParticipant
	}
	return false
}

// Resolve returns whether claims may perform op and the row filter the store must apply.
// target is only consulted for ReadUniversity.
func Resolve(claims Claims, op Operation, target *models.University) Decision {
	// A chef without a university has nothing to be scoped to
	if claims.Role == models.RoleChef && (claims.University == nil || !claims.University.Valid()) {
		return deny
	}

	switch op {
	case ReadAll, Export:
		switch claims.Role {
		case models.RoleOrganizer:
			return allow(Filter{})
		case models.RoleChef:
			return allow(chefFilter(*claims.University))
		}

	case ReadOne:
		switch claims.Role {
		case models.RoleOrganizer:
			return allow(Filter{})
		case models.RoleChef:
			// Same rows as the chef's listing, the full record never widens it
			return allow(chefFilter(*claims.University))
		case models.RoleParticipant, models.RoleVolunteer:
			if claims.Subject == uuid.Nil {
				return deny
			}
			subject := claims.Subject
			return allow(Filter{ID: &subject})
		}

	case ReadUniversity:
		if target == nil || !target.Valid() {
			return deny
		}
		switch claims.Role {
		case models.RoleOrganizer:
			return allow(Filter{University: target.Ptr()})
		case models.RoleChef:
			if *target == *claims.University {
				return allow(chefFilter(*claims.University))
			}
		}

	case Delete:
		switch claims.Role {
		case models.RoleOrganizer:
			return allow(Filter{})
		case models.RoleChef:
			return allow(Filter{University: claims.University.Ptr()})
		}

	case Create, Import:
		if CanProvision(claims.Role) {
			return allow(Filter{})
		}
	}

	return deny
}

func chefFilter(university models.University) Filter {
	return Filter{
		University: university.Ptr(),
		Roles:      slices.Clone(chefVisibleRoles),
	}
}
