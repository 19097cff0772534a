package domain

import "time"

type BankAccountStatus string

const (
	BankAccountStatusVerified BankAccountStatus = "verified"
)

// BankAccount keeps only a last-4 mask and SHA-256 digests of the routing and
// account numbers; the raw numbers are never stored.
type BankAccount struct {
	ID            string            `json:"id" db:"id"`
	UserID        string            `json:"user_id,omitempty" db:"user_id"`
	MaskedAccount string            `json:"masked_account" db:"masked_account"`
	RoutingHash   string            `json:"-" db:"routing_hash"`
	AccountHash   string            `json:"-" db:"account_hash"`
	Status        BankAccountStatus `json:"status" db:"status"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
}
