package commands

import (
	"context"
	"log/slog"
	"strings"

	application "fanvote/contexts/fan-engagement/voting-ledger/application"
	domainerrors "fanvote/contexts/fan-engagement/voting-ledger/domain/errors"
	"fanvote/contexts/fan-engagement/voting-ledger/ports"
)

// ToggleCampaignCommand pauses or activates a campaign on behalf of its
// creator.
type ToggleCampaignCommand struct {
	CampaignKey string
	Caller      string
}

type ToggleCampaignUseCase struct {
	Store  ports.RecordStore
	Clock  ports.Clock
	Logger *slog.Logger
}

// Pause deactivates an active campaign.
func (uc ToggleCampaignUseCase) Pause(ctx context.Context, cmd ToggleCampaignCommand) error {
	err := uc.Store.Atomically(ctx, func(tx ports.Tx) error {
		campaign, err := tx.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignKey))
		if err != nil {
			return err
		}
		if !campaign.IsCreator(cmd.Caller) {
			return domainerrors.ErrUnauthorized
		}
		if !campaign.IsActive {
			return domainerrors.ErrCampaignAlreadyPaused
		}
		campaign.IsActive = false
		campaign.UpdatedAt = uc.Clock.Now().UTC()
		return tx.SaveCampaign(ctx, campaign)
	})
	if err != nil {
		return err
	}
	uc.logToggle("ledger_campaign_paused", cmd)
	return nil
}

// Activate re-enables a paused campaign unless its voting window is over.
func (uc ToggleCampaignUseCase) Activate(ctx context.Context, cmd ToggleCampaignCommand) error {
	err := uc.Store.Atomically(ctx, func(tx ports.Tx) error {
		campaign, err := tx.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignKey))
		if err != nil {
			return err
		}
		if !campaign.IsCreator(cmd.Caller) {
			return domainerrors.ErrUnauthorized
		}
		if campaign.IsActive {
			return domainerrors.ErrCampaignAlreadyActive
		}
		if uc.Clock.Now().Unix() >= campaign.EndTime {
			return domainerrors.ErrCampaignEnded
		}
		campaign.IsActive = true
		campaign.UpdatedAt = uc.Clock.Now().UTC()
		return tx.SaveCampaign(ctx, campaign)
	})
	if err != nil {
		return err
	}
	uc.logToggle("ledger_campaign_activated", cmd)
	return nil
}

func (uc ToggleCampaignUseCase) logToggle(event string, cmd ToggleCampaignCommand) {
	application.ResolveLogger(uc.Logger).Info("campaign state toggled",
		"event", event,
		"module", "fan-engagement/voting-ledger",
		"layer", "application",
		"campaign_key", strings.TrimSpace(cmd.CampaignKey),
		"caller", strings.TrimSpace(cmd.Caller),
	)
}
