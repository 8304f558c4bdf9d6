package domain

// Role represents the caller's role as asserted by the API gateway.
// Role checks here scope visibility and convenience, the booking
// eligibility rule is enforced separately against contracts.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTrainer Role = "ENTRENADOR"
	RoleClient  Role = "CLIENTE"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTrainer, RoleClient:
		return true
	}
	return false
}

// Actor identifies the authenticated caller of an operation.
// For CLIENTE the UserID is the client id, for ENTRENADOR the trainer id.
type Actor struct {
	UserID int64
	Role   Role
}

// CanViewTraining reports whether the actor may see the given training:
// admins see everything, trainers see their own sessions, clients see
// sessions booked for them.
func (a Actor) CanViewTraining(t *Training) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleTrainer:
		return t.TrainerID == a.UserID
	case RoleClient:
		return t.ClientID == a.UserID
	default:
		return false
	}
}

// ScopeFilter narrows a trainings filter to what the actor may see.
// Admin filters pass through untouched.
func (a Actor) ScopeFilter(filter TrainingsFilter) TrainingsFilter {
	switch a.Role {
	case RoleTrainer:
		id := a.UserID
		filter.TrainerID = &id
	case RoleClient:
		id := a.UserID
		filter.ClientID = &id
	}
	return filter
}
