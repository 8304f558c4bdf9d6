package domain

import "time"

// ContractStatus represents the status of a membership contract.
type ContractStatus string

const (
	ContractActive        ContractStatus = "activo"
	ContractCancelled     ContractStatus = "cancelado"
	ContractExpired       ContractStatus = "vencido"
	ContractAboutToExpire ContractStatus = "por_vencer"
)

// Contract represents a client's membership contract
type Contract struct {
	ID           int64
	ClientID     int64
	MembershipID int64
	StartDate    time.Time
	EndDate      time.Time
	Status       ContractStatus
	Price        float64

	// Denormalized membership data for lookups
	Membership *Membership

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCurrentlyActive reports whether the contract grants booking rights at
// the given moment: the status must be "activo" AND the end date must not
// have passed. The stored status alone is not trusted because it is only
// updated lazily by the billing process.
func (c *Contract) IsCurrentlyActive(now time.Time) bool {
	if c.Status != ContractActive {
		return false
	}

	endDay := time.Date(c.EndDate.Year(), c.EndDate.Month(), c.EndDate.Day(), 0, 0, 0, 0, c.EndDate.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return !endDay.Before(today)
}

// HasAnyCurrentlyActive reports whether at least one contract in the list
// grants booking rights at the given moment.
func HasAnyCurrentlyActive(contracts []*Contract, now time.Time) bool {
	for _, c := range contracts {
		if c.IsCurrentlyActive(now) {
			return true
		}
	}
	return false
}
