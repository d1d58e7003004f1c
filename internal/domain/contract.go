package domain

// Contract is an immutable record from the contract table
type Contract struct {
	Number string
	Status string
}
