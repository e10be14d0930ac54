package queries

import (
	"context"
	"strings"

	"fanvote/contexts/fan-engagement/voting-ledger/domain/entities"
	domainerrors "fanvote/contexts/fan-engagement/voting-ledger/domain/errors"
	"fanvote/contexts/fan-engagement/voting-ledger/ports"
)

// CampaignDetail is the read model backing the campaign page: the campaign
// record with its embedded leaderboard plus the contestant roster.
type CampaignDetail struct {
	Campaign    entities.Campaign
	Contestants []entities.Contestant
}

type CampaignQueries struct {
	Store ports.RecordStore
}

func (q CampaignQueries) GetCampaign(ctx context.Context, campaignKey string) (CampaignDetail, error) {
	campaign, err := q.Store.GetCampaign(ctx, strings.TrimSpace(campaignKey))
	if err != nil {
		return CampaignDetail{}, err
	}
	contestants, err := q.Store.ListContestants(ctx, campaign.CampaignKey)
	if err != nil {
		return CampaignDetail{}, err
	}
	return CampaignDetail{
		Campaign:    campaign,
		Contestants: contestants,
	}, nil
}

func (q CampaignQueries) ListCampaigns(ctx context.Context) ([]entities.Campaign, error) {
	return q.Store.ListCampaigns(ctx)
}

func (q CampaignQueries) GetVoter(ctx context.Context, campaignKey string, principal string) (entities.Voter, error) {
	voter, found, err := q.Store.GetVoter(ctx, strings.TrimSpace(campaignKey), strings.TrimSpace(principal))
	if err != nil {
		return entities.Voter{}, err
	}
	if !found {
		return entities.Voter{}, domainerrors.ErrVoterNotFound
	}
	return voter, nil
}
