package user

import "time"

const (
	// DefaultReputation is granted on registration; SeedAdminReputation is
	// used for the account created at startup.
	DefaultReputation   = 100
	SeedAdminReputation = 1000

	// MinVoteReputation gates voting eligibility.
	MinVoteReputation = 50
)

type User struct {
	ID          int64
	Email       string
	DisplayName string
	Password    []byte
	Reputation  int
	IsAdmin     bool
	Created     time.Time
}
