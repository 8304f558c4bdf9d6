package domain

import "time"

// Client represents a gym client
type Client struct {
	ID       int64
	Name     string
	Document string // national document / member code
	Active   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Membership represents a membership plan referenced by contracts
type Membership struct {
	ID             int64
	Name           string
	MonthlyPrice   float64
	AllowsGroup    bool
	AllowsPersonal bool
}
