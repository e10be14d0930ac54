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

// AddContestantCommand registers a new contestant under a campaign.
type AddContestantCommand struct {
	CampaignKey string
	Caller      string
	Name        string
	ImageURL    string
	Bio         string
}

// EditContestantCommand patches an existing contestant. Nil fields are left
// unchanged.
type EditContestantCommand struct {
	CampaignKey  string
	ContestantID uint32
	Caller       string
	Name         *string
	ImageURL     *string
	Bio          *string
}

type ContestantUseCase struct {
	Store  ports.RecordStore
	Clock  ports.Clock
	Logger *slog.Logger
}

// Add assigns the next sequential contestant id and bumps the campaign's
// contestant counter with checked addition.
func (uc ContestantUseCase) Add(ctx context.Context, cmd AddContestantCommand) (entities.Contestant, error) {
	logger := application.ResolveLogger(uc.Logger)
	name := strings.TrimSpace(cmd.Name)
	now := uc.Clock.Now().UTC()

	var contestant entities.Contestant
	err := uc.Store.Atomically(ctx, func(tx ports.Tx) error {
		campaign, err := tx.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignKey))
		if err != nil {
			return err
		}
		if !campaign.IsCreator(cmd.Caller) {
			return domainerrors.ErrUnauthorized
		}
		switch {
		case len(name) == 0 || len(name) > entities.MaxNameLength:
			return domainerrors.ErrInvalidName
		case len(cmd.ImageURL) > entities.MaxURLLength:
			return domainerrors.ErrURLTooLong
		case len(cmd.Bio) > entities.MaxBioLength:
			return domainerrors.ErrBioTooLong
		case campaign.ContestantCount >= entities.MaxContestants:
			return domainerrors.ErrTooManyContestants
		}

		contestant = entities.Contestant{
			ContestantKey: keys.Contestant(campaign.CampaignKey, campaign.ContestantCount),
			CampaignKey:   campaign.CampaignKey,
			ContestantID:  campaign.ContestantCount,
			Name:          name,
			ImageURL:      strings.TrimSpace(cmd.ImageURL),
			Bio:           strings.TrimSpace(cmd.Bio),
			VoteCount:     0,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := tx.CreateContestant(ctx, contestant); err != nil {
			return err
		}

		// Unreachable under the 50 cap, still checked.
		next, ok := checked.Add(uint64(campaign.ContestantCount), 1)
		if !ok || next > uint64(^uint32(0)) {
			return domainerrors.ErrCounterOverflow
		}
		campaign.ContestantCount = uint32(next)
		campaign.UpdatedAt = now
		return tx.SaveCampaign(ctx, campaign)
	})
	if err != nil {
		return entities.Contestant{}, err
	}

	logger.Info("contestant added",
		"event", "ledger_contestant_added",
		"module", "fan-engagement/voting-ledger",
		"layer", "application",
		"campaign_key", contestant.CampaignKey,
		"contestant_id", contestant.ContestantID,
	)
	return contestant, nil
}

// Edit applies per-field validated updates to a contestant owned by the
// caller's campaign.
func (uc ContestantUseCase) Edit(ctx context.Context, cmd EditContestantCommand) error {
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

		if cmd.Name != nil {
			name := strings.TrimSpace(*cmd.Name)
			if len(name) == 0 || len(name) > entities.MaxNameLength {
				return domainerrors.ErrInvalidName
			}
		}
		if cmd.ImageURL != nil && len(*cmd.ImageURL) > entities.MaxURLLength {
			return domainerrors.ErrURLTooLong
		}
		if cmd.Bio != nil && len(*cmd.Bio) > entities.MaxBioLength {
			return domainerrors.ErrBioTooLong
		}

		if cmd.Name != nil {
			contestant.Name = strings.TrimSpace(*cmd.Name)
		}
		if cmd.ImageURL != nil {
			contestant.ImageURL = strings.TrimSpace(*cmd.ImageURL)
		}
		if cmd.Bio != nil {
			contestant.Bio = strings.TrimSpace(*cmd.Bio)
		}
		contestant.UpdatedAt = now
		return tx.SaveContestant(ctx, contestant)
	})
	if err != nil {
		return err
	}

	logger.Info("contestant edited",
		"event", "ledger_contestant_edited",
		"module", "fan-engagement/voting-ledger",
		"layer", "application",
		"campaign_key", strings.TrimSpace(cmd.CampaignKey),
		"contestant_id", cmd.ContestantID,
	)
	return nil
}
