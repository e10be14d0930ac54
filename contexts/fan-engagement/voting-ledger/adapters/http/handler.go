package httpadapter

import (
	"context"
	"log/slog"

	"fanvote/contexts/fan-engagement/voting-ledger/application/commands"
	"fanvote/contexts/fan-engagement/voting-ledger/application/queries"
	"fanvote/contexts/fan-engagement/voting-ledger/domain/entities"
	httptransport "fanvote/contexts/fan-engagement/voting-ledger/transport/http"
)

type Handler struct {
	CreateCampaign commands.CreateCampaignUseCase
	EditCampaign   commands.EditCampaignUseCase
	ToggleCampaign commands.ToggleCampaignUseCase
	Contestants    commands.ContestantUseCase
	CastVote       commands.CastVoteUseCase
	WithdrawFees   commands.WithdrawFeesUseCase
	Campaigns      queries.CampaignQueries
	Logger         *slog.Logger
}

func (h Handler) CreateCampaignHandler(
	ctx context.Context,
	creator string,
	req httptransport.CreateCampaignRequest,
) (httptransport.CampaignResponse, error) {
	campaign, err := h.CreateCampaign.Execute(ctx, commands.CreateCampaignCommand{
		Creator:       creator,
		Title:         req.Title,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		BannerURL:     req.BannerURL,
		FeePercentage: req.FeePercentage,
	})
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return mapCampaign(campaign), nil
}

func (h Handler) EditCampaignHandler(
	ctx context.Context,
	caller string,
	campaignKey string,
	req httptransport.EditCampaignRequest,
) error {
	return h.EditCampaign.Execute(ctx, commands.EditCampaignCommand{
		CampaignKey:   campaignKey,
		Caller:        caller,
		EndTime:       req.EndTime,
		BannerURL:     req.BannerURL,
		FeePercentage: req.FeePercentage,
	})
}

func (h Handler) PauseCampaignHandler(ctx context.Context, caller string, campaignKey string) error {
	return h.ToggleCampaign.Pause(ctx, commands.ToggleCampaignCommand{
		CampaignKey: campaignKey,
		Caller:      caller,
	})
}

func (h Handler) ActivateCampaignHandler(ctx context.Context, caller string, campaignKey string) error {
	return h.ToggleCampaign.Activate(ctx, commands.ToggleCampaignCommand{
		CampaignKey: campaignKey,
		Caller:      caller,
	})
}

func (h Handler) AddContestantHandler(
	ctx context.Context,
	caller string,
	campaignKey string,
	req httptransport.AddContestantRequest,
) (httptransport.ContestantResponse, error) {
	contestant, err := h.Contestants.Add(ctx, commands.AddContestantCommand{
		CampaignKey: campaignKey,
		Caller:      caller,
		Name:        req.Name,
		ImageURL:    req.ImageURL,
		Bio:         req.Bio,
	})
	if err != nil {
		return httptransport.ContestantResponse{}, err
	}
	return mapContestant(contestant), nil
}

func (h Handler) EditContestantHandler(
	ctx context.Context,
	caller string,
	campaignKey string,
	contestantID uint32,
	req httptransport.EditContestantRequest,
) error {
	return h.Contestants.Edit(ctx, commands.EditContestantCommand{
		CampaignKey:  campaignKey,
		ContestantID: contestantID,
		Caller:       caller,
		Name:         req.Name,
		ImageURL:     req.ImageURL,
		Bio:          req.Bio,
	})
}

func (h Handler) CastVoteHandler(
	ctx context.Context,
	voter string,
	campaignKey string,
	req httptransport.CastVoteRequest,
) error {
	return h.CastVote.Execute(ctx, commands.CastVoteCommand{
		CampaignKey:    campaignKey,
		ContestantID:   req.ContestantID,
		VoterPrincipal: voter,
		Amount:         req.Amount,
	})
}

func (h Handler) WithdrawFeesHandler(
	ctx context.Context,
	withdrawer string,
	req httptransport.WithdrawFeesRequest,
) (httptransport.WithdrawFeesResponse, error) {
	result, err := h.WithdrawFees.Execute(ctx, commands.WithdrawFeesCommand{
		Withdrawer:  withdrawer,
		Destination: req.Destination,
		Amount:      req.Amount,
	})
	if err != nil {
		return httptransport.WithdrawFeesResponse{}, err
	}
	return httptransport.WithdrawFeesResponse{
		WithdrawalID: result.WithdrawalID,
		Destination:  result.Destination,
		Amount:       result.Amount,
	}, nil
}

func (h Handler) GetCampaignHandler(ctx context.Context, campaignKey string) (httptransport.CampaignDetailResponse, error) {
	detail, err := h.Campaigns.GetCampaign(ctx, campaignKey)
	if err != nil {
		return httptransport.CampaignDetailResponse{}, err
	}
	contestants := make([]httptransport.ContestantResponse, 0, len(detail.Contestants))
	for _, contestant := range detail.Contestants {
		contestants = append(contestants, mapContestant(contestant))
	}
	return httptransport.CampaignDetailResponse{
		Campaign:    mapCampaign(detail.Campaign),
		Contestants: contestants,
	}, nil
}

func (h Handler) ListCampaignsHandler(ctx context.Context) (httptransport.CampaignListResponse, error) {
	campaigns, err := h.Campaigns.ListCampaigns(ctx)
	if err != nil {
		return httptransport.CampaignListResponse{}, err
	}
	items := make([]httptransport.CampaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		items = append(items, mapCampaign(campaign))
	}
	return httptransport.CampaignListResponse{Items: items}, nil
}

func (h Handler) GetVoterHandler(ctx context.Context, campaignKey string, principal string) (httptransport.VoterResponse, error) {
	voter, err := h.Campaigns.GetVoter(ctx, campaignKey, principal)
	if err != nil {
		return httptransport.VoterResponse{}, err
	}
	return httptransport.VoterResponse{
		VoterKey:       voter.VoterKey,
		CampaignKey:    voter.CampaignKey,
		VoterAuthority: voter.VoterAuthority,
		TotalVoted:     voter.TotalVoted,
	}, nil
}

func mapCampaign(campaign entities.Campaign) httptransport.CampaignResponse {
	topVoters := make([]httptransport.TopVoterEntry, 0, len(campaign.TopVoters))
	for _, slot := range campaign.TopVoters {
		topVoters = append(topVoters, httptransport.TopVoterEntry{
			Voter:      slot.Voter,
			TotalVoted: slot.TotalVoted,
			Occupied:   slot.Occupied,
		})
	}
	return httptransport.CampaignResponse{
		CampaignKey:           campaign.CampaignKey,
		Title:                 campaign.Title,
		StartTime:             campaign.StartTime,
		EndTime:               campaign.EndTime,
		TotalVotes:            campaign.TotalVotes,
		IsActive:              campaign.IsActive,
		Creator:               campaign.Creator,
		BannerURL:             campaign.BannerURL,
		ContestantCount:       campaign.ContestantCount,
		PlatformFeePercentage: campaign.PlatformFeePercentage,
		TopVoters:             topVoters,
	}
}

func mapContestant(contestant entities.Contestant) httptransport.ContestantResponse {
	return httptransport.ContestantResponse{
		ContestantKey: contestant.ContestantKey,
		CampaignKey:   contestant.CampaignKey,
		ContestantID:  contestant.ContestantID,
		Name:          contestant.Name,
		ImageURL:      contestant.ImageURL,
		Bio:           contestant.Bio,
		VoteCount:     contestant.VoteCount,
	}
}
