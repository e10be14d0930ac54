package ports

import (
	"context"
	"time"

	"fanvote/contexts/fan-engagement/voting-ledger/domain/entities"
)

// Records is keyed access to the three ledger tables. Create fails on an
// existing key; Save upserts.
type Records interface {
	CreateCampaign(ctx context.Context, campaign entities.Campaign) error
	GetCampaign(ctx context.Context, campaignKey string) (entities.Campaign, error)
	SaveCampaign(ctx context.Context, campaign entities.Campaign) error
	ListCampaigns(ctx context.Context) ([]entities.Campaign, error)

	CreateContestant(ctx context.Context, contestant entities.Contestant) error
	GetContestant(ctx context.Context, campaignKey string, contestantID uint32) (entities.Contestant, error)
	SaveContestant(ctx context.Context, contestant entities.Contestant) error
	ListContestants(ctx context.Context, campaignKey string) ([]entities.Contestant, error)

	GetVoter(ctx context.Context, campaignKey string, principal string) (entities.Voter, bool, error)
	SaveVoter(ctx context.Context, voter entities.Voter) error
}

// TokenTransfer is the external value-transfer collaborator. The authority
// must be the source account owner, or the derived treasury authority for
// treasury-sourced transfers.
type TokenTransfer interface {
	Transfer(ctx context.Context, source string, dest string, authority string, amount uint64) error
}

// Tx is the state visible to one atomic operation: record access plus token
// movement. Everything done through a Tx commits together or not at all.
type Tx interface {
	Records
	TokenTransfer
}

// RecordStore owns the ledger records. Atomically runs fn against a
// transaction holding exclusive access to the records it touches; a non-nil
// error discards every write and transfer fn made.
type RecordStore interface {
	Records
	Atomically(ctx context.Context, fn func(tx Tx) error) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
