package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "fanvote/contexts/fan-engagement/voting-ledger/application"
	"fanvote/contexts/fan-engagement/voting-ledger/domain/entities"
	domainerrors "fanvote/contexts/fan-engagement/voting-ledger/domain/errors"
	"fanvote/contexts/fan-engagement/voting-ledger/domain/keys"
	"fanvote/contexts/fan-engagement/voting-ledger/ports"
	"fanvote/internal/shared/checked"
)

// CastVoteCommand commits value to a contestant inside a campaign's voting
// window. The fee share goes to the platform treasury, the rest to the
// campaign sink.
type CastVoteCommand struct {
	CampaignKey    string
	ContestantID   uint32
	VoterPrincipal string
	Amount         uint64
}

type CastVoteUseCase struct {
	Store  ports.RecordStore
	Clock  ports.Clock
	Logger *slog.Logger
}

// Execute runs the whole vote as one transaction: window and state checks,
// checked fee split, both token transfers, counter increments, lazy voter
// record creation, and the leaderboard update. Any failure unwinds all of it.
func (uc CastVoteUseCase) Execute(ctx context.Context, cmd CastVoteCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	voter := strings.TrimSpace(cmd.VoterPrincipal)
	now := uc.Clock.Now().Unix()

	err := uc.Store.Atomically(ctx, func(tx ports.Tx) error {
		campaign, err := tx.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignKey))
		if err != nil {
			return err
		}
		if !campaign.IsActive {
			return domainerrors.ErrCampaignInactive
		}
		if now < campaign.StartTime {
			return domainerrors.ErrCampaignNotStarted
		}
		if now > campaign.EndTime {
			return domainerrors.ErrCampaignEnded
		}
		if cmd.Amount == 0 {
			return domainerrors.ErrZeroAmount
		}
		contestant, err := tx.GetContestant(ctx, campaign.CampaignKey, cmd.ContestantID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrContestantNotFound) {
				return domainerrors.ErrInvalidContestant
			}
			return err
		}
		if contestant.CampaignKey != campaign.CampaignKey {
			return domainerrors.ErrInvalidContestant
		}

		net, fee, ok := checked.FeeSplit(cmd.Amount, campaign.PlatformFeePercentage)
		if !ok {
			return domainerrors.ErrFeeCalculation
		}

		if net > 0 {
			if err := tx.Transfer(ctx, voter, campaign.CampaignKey, voter, net); err != nil {
				return err
			}
		}
		if fee > 0 {
			if err := tx.Transfer(ctx, voter, keys.TreasurySink(), voter, fee); err != nil {
				return err
			}
		}

		if campaign.TotalVotes, ok = checked.Add(campaign.TotalVotes, net); !ok {
			return domainerrors.ErrVoteOverflow
		}
		if contestant.VoteCount, ok = checked.Add(contestant.VoteCount, net); !ok {
			return domainerrors.ErrVoteOverflow
		}

		record, found, err := tx.GetVoter(ctx, campaign.CampaignKey, voter)
		if err != nil {
			return err
		}
		if !found {
			record = entities.Voter{
				VoterKey:       keys.Voter(campaign.CampaignKey, voter),
				CampaignKey:    campaign.CampaignKey,
				VoterAuthority: voter,
				CreatedAt:      uc.Clock.Now().UTC(),
			}
		}
		if record.TotalVoted, ok = checked.Add(record.TotalVoted, net); !ok {
			return domainerrors.ErrVoteOverflow
		}
		record.UpdatedAt = uc.Clock.Now().UTC()

		campaign.TopVoters.Record(voter, record.TotalVoted)
		campaign.UpdatedAt = uc.Clock.Now().UTC()

		if err := tx.SaveVoter(ctx, record); err != nil {
			return err
		}
		if err := tx.SaveContestant(ctx, contestant); err != nil {
			return err
		}
		return tx.SaveCampaign(ctx, campaign)
	})
	if err != nil {
		logger.Warn("vote rejected",
			"event", "ledger_vote_rejected",
			"module", "fan-engagement/voting-ledger",
			"layer", "application",
			"campaign_key", strings.TrimSpace(cmd.CampaignKey),
			"contestant_id", cmd.ContestantID,
			"voter", voter,
			"error", err.Error(),
		)
		return err
	}

	logger.Info("vote cast",
		"event", "ledger_vote_cast",
		"module", "fan-engagement/voting-ledger",
		"layer", "application",
		"campaign_key", strings.TrimSpace(cmd.CampaignKey),
		"contestant_id", cmd.ContestantID,
		"voter", voter,
		"amount", cmd.Amount,
	)
	return nil
}
