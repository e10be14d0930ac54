package commands

import (
	"context"
	"log/slog"
	"strings"

	application "fanvote/contexts/fan-engagement/voting-ledger/application"
	"fanvote/contexts/fan-engagement/voting-ledger/domain/entities"
	domainerrors "fanvote/contexts/fan-engagement/voting-ledger/domain/errors"
	"fanvote/contexts/fan-engagement/voting-ledger/domain/keys"
	"fanvote/contexts/fan-engagement/voting-ledger/ports"
)

// CreateCampaignCommand is the write-model input for campaign creation.
type CreateCampaignCommand struct {
	Creator       string
	Title         string
	StartTime     int64
	EndTime       int64
	BannerURL     string
	FeePercentage uint8
}

type CreateCampaignUseCase struct {
	Store  ports.RecordStore
	Clock  ports.Clock
	Logger *slog.Logger
}

// Execute validates the inputs, derives the campaign key from the title, and
// allocates a fresh campaign with an empty leaderboard. Duplicate titles are
// rejected by the store.
func (uc CreateCampaignUseCase) Execute(ctx context.Context, cmd CreateCampaignCommand) (entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)

	title := strings.TrimSpace(cmd.Title)
	now := uc.Clock.Now().UTC()
	switch {
	case len(title) > entities.MaxTitleLength:
		return entities.Campaign{}, domainerrors.ErrTitleTooLong
	case len(cmd.BannerURL) > entities.MaxURLLength:
		return entities.Campaign{}, domainerrors.ErrURLTooLong
	case cmd.FeePercentage > entities.MaxFeePercentage:
		return entities.Campaign{}, domainerrors.ErrFeeTooHigh
	case cmd.StartTime >= cmd.EndTime:
		return entities.Campaign{}, domainerrors.ErrInvalidTimeRange
	case cmd.EndTime <= now.Unix():
		return entities.Campaign{}, domainerrors.ErrEndTimeInPast
	}

	campaign := entities.Campaign{
		CampaignKey:           keys.Campaign(title),
		Title:                 title,
		StartTime:             cmd.StartTime,
		EndTime:               cmd.EndTime,
		TotalVotes:            0,
		IsActive:              true,
		Creator:               strings.TrimSpace(cmd.Creator),
		BannerURL:             strings.TrimSpace(cmd.BannerURL),
		ContestantCount:       0,
		PlatformFeePercentage: cmd.FeePercentage,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	err := uc.Store.Atomically(ctx, func(tx ports.Tx) error {
		return tx.CreateCampaign(ctx, campaign)
	})
	if err != nil {
		return entities.Campaign{}, err
	}

	logger.Info("campaign created",
		"event", "ledger_campaign_created",
		"module", "fan-engagement/voting-ledger",
		"layer", "application",
		"campaign_key", campaign.CampaignKey,
		"creator", campaign.Creator,
		"fee_percentage", campaign.PlatformFeePercentage,
	)
	return campaign, nil
}
