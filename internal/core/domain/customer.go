package domain

import "github.com/google/uuid"

// Customer is a registered account holder. The ledger's customer registry
// creates one per distinct (case-insensitive) name and owns its lifetime;
// accounts only hold a reference.
type Customer struct {
	ID   uuid.UUID
	Name string // original-cased display name
}

// NewCustomer creates a customer with a fresh identifier.
func NewCustomer(name string) *Customer {
	return &Customer{
		ID:   uuid.New(),
		Name: name,
	}
}
