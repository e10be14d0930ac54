package entities

import (
	"sort"
	"strings"
	"time"
)

const (
	MaxTitleLength    = 100
	MaxURLLength      = 200
	MaxBioLength      = 500
	MaxNameLength     = 50
	MaxFeePercentage  = 20
	MaxContestants    = 50
	TopVoterSlotCount = 3
)

// Campaign is a time-boxed voting event. Vote counters only grow, the
// contestant counter only grows, and the creator never changes after creation.
type Campaign struct {
	CampaignKey           string
	Title                 string
	StartTime             int64
	EndTime               int64
	TotalVotes            uint64
	IsActive              bool
	Creator               string
	BannerURL             string
	ContestantCount       uint32
	PlatformFeePercentage uint8
	TopVoters             TopVoterBoard
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (c Campaign) IsCreator(principal string) bool {
	return c.Creator != "" && c.Creator == strings.TrimSpace(principal)
}

// TopVoter is one leaderboard slot. Occupied distinguishes an empty slot from
// a real entry so that no principal value doubles as the empty sentinel.
type TopVoter struct {
	Voter      string
	TotalVoted uint64
	Occupied   bool
}

// TopVoterBoard is the bounded top-3 voter ranking embedded in a campaign,
// ordered by TotalVoted descending with empty slots last.
type TopVoterBoard [TopVoterSlotCount]TopVoter

// Record places or refreshes a voter's cumulative total on the board.
// An already ranked voter is overwritten in place; otherwise the first slot
// that is empty or strictly smaller is taken, shifting lower slots down and
// dropping the last one. A voter whose total beats no occupied slot is not
// recorded. The board is re-sorted afterwards; the stable sort keeps arrival
// order among equal totals.
func (b *TopVoterBoard) Record(principal string, totalVoted uint64) {
	for i := range b {
		if b[i].Occupied && b[i].Voter == principal {
			b[i].TotalVoted = totalVoted
			b.resort()
			return
		}
	}

	insertAt := -1
	for i := range b {
		if !b[i].Occupied || totalVoted > b[i].TotalVoted {
			insertAt = i
			break
		}
	}
	if insertAt >= 0 {
		for i := len(b) - 1; i > insertAt; i-- {
			b[i] = b[i-1]
		}
		b[insertAt] = TopVoter{
			Voter:      principal,
			TotalVoted: totalVoted,
			Occupied:   true,
		}
	}
	b.resort()
}

// Holds reports whether the principal currently occupies a slot.
func (b TopVoterBoard) Holds(principal string) bool {
	for _, slot := range b {
		if slot.Occupied && slot.Voter == principal {
			return true
		}
	}
	return false
}

func (b *TopVoterBoard) resort() {
	sort.SliceStable(b[:], func(i, j int) bool {
		if b[i].Occupied != b[j].Occupied {
			return b[i].Occupied
		}
		if !b[i].Occupied {
			return false
		}
		return b[i].TotalVoted > b[j].TotalVoted
	})
}
