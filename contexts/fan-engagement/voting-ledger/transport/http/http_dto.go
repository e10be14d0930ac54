package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateCampaignRequest struct {
	Title         string `json:"title"`
	StartTime     int64  `json:"start_time"`
	EndTime       int64  `json:"end_time"`
	BannerURL     string `json:"banner_url"`
	FeePercentage uint8  `json:"platform_fee_percentage"`
}

type EditCampaignRequest struct {
	EndTime       *int64  `json:"end_time,omitempty"`
	BannerURL     *string `json:"banner_url,omitempty"`
	FeePercentage *uint8  `json:"platform_fee_percentage,omitempty"`
}

type TopVoterEntry struct {
	Voter      string `json:"voter,omitempty"`
	TotalVoted uint64 `json:"total_voted"`
	Occupied   bool   `json:"occupied"`
}

type CampaignResponse struct {
	CampaignKey           string          `json:"campaign_key"`
	Title                 string          `json:"title"`
	StartTime             int64           `json:"start_time"`
	EndTime               int64           `json:"end_time"`
	TotalVotes            uint64          `json:"total_votes"`
	IsActive              bool            `json:"is_active"`
	Creator               string          `json:"creator"`
	BannerURL             string          `json:"banner_url"`
	ContestantCount       uint32          `json:"contestant_count"`
	PlatformFeePercentage uint8           `json:"platform_fee_percentage"`
	TopVoters             []TopVoterEntry `json:"top_voters"`
}

type CampaignListResponse struct {
	Items []CampaignResponse `json:"items"`
}

type CampaignDetailResponse struct {
	Campaign    CampaignResponse     `json:"campaign"`
	Contestants []ContestantResponse `json:"contestants"`
}

type AddContestantRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

type EditContestantRequest struct {
	Name     *string `json:"name,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}

type ContestantResponse struct {
	ContestantKey string `json:"contestant_key"`
	CampaignKey   string `json:"campaign_key"`
	ContestantID  uint32 `json:"contestant_id"`
	Name          string `json:"name"`
	ImageURL      string `json:"image_url"`
	Bio           string `json:"bio"`
	VoteCount     uint64 `json:"vote_count"`
}

type CastVoteRequest struct {
	ContestantID uint32 `json:"contestant_id"`
	Amount       uint64 `json:"amount"`
}

type VoterResponse struct {
	VoterKey       string `json:"voter_key"`
	CampaignKey    string `json:"campaign_key"`
	VoterAuthority string `json:"voter_authority"`
	TotalVoted     uint64 `json:"total_usdc_voted"`
}

type WithdrawFeesRequest struct {
	Destination string `json:"destination"`
	Amount      uint64 `json:"amount"`
}

type WithdrawFeesResponse struct {
	WithdrawalID string `json:"withdrawal_id"`
	Destination  string `json:"destination"`
	Amount       uint64 `json:"amount"`
}
