package domain

// Account is an address seen as an owner, approver, operator, target or registrant.
// It carries no state beyond its id.
type Account struct {
	ID string
}
