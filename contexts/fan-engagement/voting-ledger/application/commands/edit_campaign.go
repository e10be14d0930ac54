package commands

import (
	"context"
	"log/slog"
	"strings"

	application "fanvote/contexts/fan-engagement/voting-ledger/application"
	"fanvote/contexts/fan-engagement/voting-ledger/domain/entities"
	domainerrors "fanvote/contexts/fan-engagement/voting-ledger/domain/errors"
	"fanvote/contexts/fan-engagement/voting-ledger/ports"
)

// EditCampaignCommand patches a campaign. Nil fields are left unchanged;
// every provided field is validated before any mutation is applied.
type EditCampaignCommand struct {
	CampaignKey   string
	Caller        string
	EndTime       *int64
	BannerURL     *string
	FeePercentage *uint8
}

type EditCampaignUseCase struct {
	Store  ports.RecordStore
	Clock  ports.Clock
	Logger *slog.Logger
}

func (uc EditCampaignUseCase) Execute(ctx context.Context, cmd EditCampaignCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()

	err := uc.Store.Atomically(ctx, func(tx ports.Tx) error {
		campaign, err := tx.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignKey))
		if err != nil {
			return err
		}
		if !campaign.IsCreator(cmd.Caller) {
			return domainerrors.ErrUnauthorized
		}

		if cmd.EndTime != nil {
			if *cmd.EndTime <= now.Unix() || *cmd.EndTime <= campaign.StartTime {
				return domainerrors.ErrInvalidEndTime
			}
		}
		if cmd.BannerURL != nil && len(*cmd.BannerURL) > entities.MaxURLLength {
			return domainerrors.ErrURLTooLong
		}
		if cmd.FeePercentage != nil && *cmd.FeePercentage > entities.MaxFeePercentage {
			return domainerrors.ErrFeeTooHigh
		}

		if cmd.EndTime != nil {
			campaign.EndTime = *cmd.EndTime
		}
		if cmd.BannerURL != nil {
			campaign.BannerURL = strings.TrimSpace(*cmd.BannerURL)
		}
		if cmd.FeePercentage != nil {
			campaign.PlatformFeePercentage = *cmd.FeePercentage
		}
		campaign.UpdatedAt = now
		return tx.SaveCampaign(ctx, campaign)
	})
	if err != nil {
		return err
	}

	logger.Info("campaign edited",
		"event", "ledger_campaign_edited",
		"module", "fan-engagement/voting-ledger",
		"layer", "application",
		"campaign_key", strings.TrimSpace(cmd.CampaignKey),
		"caller", strings.TrimSpace(cmd.Caller),
	)
	return nil
}
