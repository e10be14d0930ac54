package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"fanvote/contexts/fan-engagement/voting-ledger/domain/entities"
	domainerrors "fanvote/contexts/fan-engagement/voting-ledger/domain/errors"
	"fanvote/contexts/fan-engagement/voting-ledger/domain/keys"
	"fanvote/contexts/fan-engagement/voting-ledger/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository persists ledger records in postgres. Atomically maps onto one
// SQL transaction so record writes and token balance movements commit
// together; record rows touched inside it are locked FOR UPDATE.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// AutoMigrate creates the ledger tables. Intended for local bootstrap; real
// deployments manage schema out of band.
func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&campaignModel{},
		&contestantModel{},
		&voterModel{},
		&tokenAccountModel{},
	)
}

func (r *Repository) Atomically(ctx context.Context, fn func(tx ports.Tx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txRepository{db: tx, logger: r.logger})
	})
}

// SeedTokenAccount funds an owner's token account. Test and local bootstrap
// helper.
func (r *Repository) SeedTokenAccount(ctx context.Context, owner string, balance uint64) error {
	row := tokenAccountModel{
		Owner:     strings.TrimSpace(owner),
		Balance:   balance,
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner"}},
		DoUpdates: clause.Assignments(map[string]any{"balance": row.Balance, "updated_at": row.UpdatedAt}),
	}).Create(&row).Error
}

func (r *Repository) CreateCampaign(ctx context.Context, campaign entities.Campaign) error {
	return r.Atomically(ctx, func(tx ports.Tx) error {
		return tx.CreateCampaign(ctx, campaign)
	})
}

func (r *Repository) GetCampaign(ctx context.Context, campaignKey string) (entities.Campaign, error) {
	return getCampaign(r.db.WithContext(ctx), campaignKey, false)
}

func (r *Repository) SaveCampaign(ctx context.Context, campaign entities.Campaign) error {
	return r.Atomically(ctx, func(tx ports.Tx) error {
		return tx.SaveCampaign(ctx, campaign)
	})
}

func (r *Repository) ListCampaigns(ctx context.Context) ([]entities.Campaign, error) {
	var rows []campaignModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Campaign, 0, len(rows))
	for _, row := range rows {
		campaign, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, campaign)
	}
	return items, nil
}

func (r *Repository) CreateContestant(ctx context.Context, contestant entities.Contestant) error {
	return r.Atomically(ctx, func(tx ports.Tx) error {
		return tx.CreateContestant(ctx, contestant)
	})
}

func (r *Repository) GetContestant(ctx context.Context, campaignKey string, contestantID uint32) (entities.Contestant, error) {
	return getContestant(r.db.WithContext(ctx), campaignKey, contestantID, false)
}

func (r *Repository) SaveContestant(ctx context.Context, contestant entities.Contestant) error {
	return r.Atomically(ctx, func(tx ports.Tx) error {
		return tx.SaveContestant(ctx, contestant)
	})
}

func (r *Repository) ListContestants(ctx context.Context, campaignKey string) ([]entities.Contestant, error) {
	var rows []contestantModel
	err := r.db.WithContext(ctx).
		Where("campaign_key = ?", strings.TrimSpace(campaignKey)).
		Order("contestant_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.Contestant, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetVoter(ctx context.Context, campaignKey string, principal string) (entities.Voter, bool, error) {
	return getVoter(r.db.WithContext(ctx), campaignKey, principal, false)
}

func (r *Repository) SaveVoter(ctx context.Context, voter entities.Voter) error {
	return r.Atomically(ctx, func(tx ports.Tx) error {
		return tx.SaveVoter(ctx, voter)
	})
}

// txRepository serves one SQL transaction.
type txRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func (t *txRepository) CreateCampaign(ctx context.Context, campaign entities.Campaign) error {
	row, err := campaignModelFromEntity(campaign)
	if err != nil {
		return err
	}
	if err := t.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrCampaignExists
		}
		return err
	}
	return nil
}

func (t *txRepository) GetCampaign(ctx context.Context, campaignKey string) (entities.Campaign, error) {
	return getCampaign(t.db.WithContext(ctx), campaignKey, true)
}

func (t *txRepository) SaveCampaign(ctx context.Context, campaign entities.Campaign) error {
	row, err := campaignModelFromEntity(campaign)
	if err != nil {
		return err
	}
	return t.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "campaign_key"}},
		DoUpdates: clause.Assignments(map[string]any{
			"end_time":                row.EndTime,
			"total_votes":             row.TotalVotes,
			"is_active":               row.IsActive,
			"banner_url":              row.BannerURL,
			"contestant_count":        row.ContestantCount,
			"platform_fee_percentage": row.PlatformFeePercentage,
			"top_voters":              row.TopVoters,
			"updated_at":              row.UpdatedAt,
		}),
	}).Create(&row).Error
}

func (t *txRepository) ListCampaigns(ctx context.Context) ([]entities.Campaign, error) {
	return (&Repository{db: t.db, logger: t.logger}).ListCampaigns(ctx)
}

func (t *txRepository) CreateContestant(ctx context.Context, contestant entities.Contestant) error {
	row := contestantModelFromEntity(contestant)
	if err := t.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrRecordConflict
		}
		return err
	}
	return nil
}

func (t *txRepository) GetContestant(ctx context.Context, campaignKey string, contestantID uint32) (entities.Contestant, error) {
	return getContestant(t.db.WithContext(ctx), campaignKey, contestantID, true)
}

func (t *txRepository) SaveContestant(ctx context.Context, contestant entities.Contestant) error {
	row := contestantModelFromEntity(contestant)
	return t.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "contestant_key"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":       row.Name,
			"image_url":  row.ImageURL,
			"bio":        row.Bio,
			"vote_count": row.VoteCount,
			"updated_at": row.UpdatedAt,
		}),
	}).Create(&row).Error
}

func (t *txRepository) ListContestants(ctx context.Context, campaignKey string) ([]entities.Contestant, error) {
	return (&Repository{db: t.db, logger: t.logger}).ListContestants(ctx, campaignKey)
}

func (t *txRepository) GetVoter(ctx context.Context, campaignKey string, principal string) (entities.Voter, bool, error) {
	return getVoter(t.db.WithContext(ctx), campaignKey, principal, true)
}

func (t *txRepository) SaveVoter(ctx context.Context, voter entities.Voter) error {
	row := voterModelFromEntity(voter)
	return t.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "voter_key"}},
		DoUpdates: clause.Assignments(map[string]any{
			"total_voted": row.TotalVoted,
			"updated_at":  row.UpdatedAt,
		}),
	}).Create(&row).Error
}

// Transfer debits the source token account and credits the destination inside
// the surrounding SQL transaction. Missing accounts, short balances, and
// authority mismatches all surface as ErrTransferFailed.
func (t *txRepository) Transfer(ctx context.Context, source string, dest string, authority string, amount uint64) error {
	source = strings.TrimSpace(source)
	dest = strings.TrimSpace(dest)
	authority = strings.TrimSpace(authority)

	if authority != source && authority != keys.TreasuryAuthority() {
		return domainerrors.ErrTransferFailed
	}
	if authority == keys.TreasuryAuthority() && source != keys.TreasurySink() {
		return domainerrors.ErrTransferFailed
	}

	var sourceRow tokenAccountModel
	err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("owner = ?", source).
		First(&sourceRow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerrors.ErrTransferFailed
		}
		return err
	}
	if sourceRow.Balance < amount {
		return domainerrors.ErrTransferFailed
	}

	now := time.Now().UTC()
	err = t.db.WithContext(ctx).Model(&tokenAccountModel{}).
		Where("owner = ?", source).
		Updates(map[string]any{"balance": sourceRow.Balance - amount, "updated_at": now}).Error
	if err != nil {
		return err
	}
	destRow := tokenAccountModel{
		Owner:     dest,
		Balance:   amount,
		UpdatedAt: now,
	}
	return t.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner"}},
		DoUpdates: clause.Assignments(map[string]any{"balance": gorm.Expr("token_accounts.balance + ?", amount), "updated_at": now}),
	}).Create(&destRow).Error
}

func getCampaign(db *gorm.DB, campaignKey string, forUpdate bool) (entities.Campaign, error) {
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var row campaignModel
	err := db.Where("campaign_key = ?", strings.TrimSpace(campaignKey)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Campaign{}, domainerrors.ErrCampaignNotFound
		}
		return entities.Campaign{}, err
	}
	return row.toEntity()
}

func getContestant(db *gorm.DB, campaignKey string, contestantID uint32, forUpdate bool) (entities.Contestant, error) {
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var row contestantModel
	err := db.
		Where("campaign_key = ?", strings.TrimSpace(campaignKey)).
		Where("contestant_id = ?", contestantID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Contestant{}, domainerrors.ErrContestantNotFound
		}
		return entities.Contestant{}, err
	}
	return row.toEntity(), nil
}

func getVoter(db *gorm.DB, campaignKey string, principal string, forUpdate bool) (entities.Voter, bool, error) {
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var row voterModel
	err := db.Where("voter_key = ?", keys.Voter(strings.TrimSpace(campaignKey), strings.TrimSpace(principal))).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Voter{}, false, nil
		}
		return entities.Voter{}, false, err
	}
	return row.toEntity(), true, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

type campaignModel struct {
	CampaignKey           string    `gorm:"column:campaign_key;primaryKey"`
	Title                 string    `gorm:"column:title"`
	StartTime             int64     `gorm:"column:start_time"`
	EndTime               int64     `gorm:"column:end_time"`
	TotalVotes            uint64    `gorm:"column:total_votes"`
	IsActive              bool      `gorm:"column:is_active"`
	Creator               string    `gorm:"column:creator"`
	BannerURL             string    `gorm:"column:banner_url"`
	ContestantCount       uint32    `gorm:"column:contestant_count"`
	PlatformFeePercentage uint8     `gorm:"column:platform_fee_percentage"`
	TopVoters             []byte    `gorm:"column:top_voters;type:jsonb"`
	CreatedAt             time.Time `gorm:"column:created_at"`
	UpdatedAt             time.Time `gorm:"column:updated_at"`
}

func (campaignModel) TableName() string {
	return "campaigns"
}

func campaignModelFromEntity(campaign entities.Campaign) (campaignModel, error) {
	topVoters, err := json.Marshal(campaign.TopVoters)
	if err != nil {
		return campaignModel{}, err
	}
	return campaignModel{
		CampaignKey:           strings.TrimSpace(campaign.CampaignKey),
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
		CreatedAt:             campaign.CreatedAt.UTC(),
		UpdatedAt:             campaign.UpdatedAt.UTC(),
	}, nil
}

func (m campaignModel) toEntity() (entities.Campaign, error) {
	campaign := entities.Campaign{
		CampaignKey:           m.CampaignKey,
		Title:                 m.Title,
		StartTime:             m.StartTime,
		EndTime:               m.EndTime,
		TotalVotes:            m.TotalVotes,
		IsActive:              m.IsActive,
		Creator:               m.Creator,
		BannerURL:             m.BannerURL,
		ContestantCount:       m.ContestantCount,
		PlatformFeePercentage: m.PlatformFeePercentage,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
	if len(m.TopVoters) > 0 {
		if err := json.Unmarshal(m.TopVoters, &campaign.TopVoters); err != nil {
			return entities.Campaign{}, err
		}
	}
	return campaign, nil
}

type contestantModel struct {
	ContestantKey string    `gorm:"column:contestant_key;primaryKey"`
	CampaignKey   string    `gorm:"column:campaign_key;index"`
	ContestantID  uint32    `gorm:"column:contestant_id"`
	Name          string    `gorm:"column:name"`
	ImageURL      string    `gorm:"column:image_url"`
	Bio           string    `gorm:"column:bio"`
	VoteCount     uint64    `gorm:"column:vote_count"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (contestantModel) TableName() string {
	return "contestants"
}

func contestantModelFromEntity(contestant entities.Contestant) contestantModel {
	return contestantModel{
		ContestantKey: strings.TrimSpace(contestant.ContestantKey),
		CampaignKey:   strings.TrimSpace(contestant.CampaignKey),
		ContestantID:  contestant.ContestantID,
		Name:          contestant.Name,
		ImageURL:      contestant.ImageURL,
		Bio:           contestant.Bio,
		VoteCount:     contestant.VoteCount,
		CreatedAt:     contestant.CreatedAt.UTC(),
		UpdatedAt:     contestant.UpdatedAt.UTC(),
	}
}

func (m contestantModel) toEntity() entities.Contestant {
	return entities.Contestant{
		ContestantKey: m.ContestantKey,
		CampaignKey:   m.CampaignKey,
		ContestantID:  m.ContestantID,
		Name:          m.Name,
		ImageURL:      m.ImageURL,
		Bio:           m.Bio,
		VoteCount:     m.VoteCount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type voterModel struct {
	VoterKey       string    `gorm:"column:voter_key;primaryKey"`
	CampaignKey    string    `gorm:"column:campaign_key;index"`
	VoterAuthority string    `gorm:"column:voter_authority"`
	TotalVoted     uint64    `gorm:"column:total_voted"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (voterModel) TableName() string {
	return "voters"
}

func voterModelFromEntity(voter entities.Voter) voterModel {
	return voterModel{
		VoterKey:       strings.TrimSpace(voter.VoterKey),
		CampaignKey:    strings.TrimSpace(voter.CampaignKey),
		VoterAuthority: voter.VoterAuthority,
		TotalVoted:     voter.TotalVoted,
		CreatedAt:      voter.CreatedAt.UTC(),
		UpdatedAt:      voter.UpdatedAt.UTC(),
	}
}

func (m voterModel) toEntity() entities.Voter {
	return entities.Voter{
		VoterKey:       m.VoterKey,
		CampaignKey:    m.CampaignKey,
		VoterAuthority: m.VoterAuthority,
		TotalVoted:     m.TotalVoted,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

type tokenAccountModel struct {
	Owner     string    `gorm:"column:owner;primaryKey"`
	Balance   uint64    `gorm:"column:balance"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (tokenAccountModel) TableName() string {
	return "token_accounts"
}
