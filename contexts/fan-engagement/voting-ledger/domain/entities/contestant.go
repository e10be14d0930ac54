package entities

import "time"

// Contestant is an option inside one campaign. The id is assigned from the
// campaign's contestant counter at creation time and never reused.
type Contestant struct {
	ContestantKey string
	CampaignKey   string
	ContestantID  uint32
	Name          string
	ImageURL      string
	Bio           string
	VoteCount     uint64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Voter tracks one principal's cumulative net contribution to one campaign.
// The record is created lazily on the first accepted vote.
type Voter struct {
	VoterKey       string
	CampaignKey    string
	VoterAuthority string
	TotalVoted     uint64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
