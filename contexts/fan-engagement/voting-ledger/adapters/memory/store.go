package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"fanvote/contexts/fan-engagement/voting-ledger/domain/entities"
	domainerrors "fanvote/contexts/fan-engagement/voting-ledger/domain/errors"
	"fanvote/contexts/fan-engagement/voting-ledger/domain/keys"
	"fanvote/contexts/fan-engagement/voting-ledger/ports"

	"github.com/google/uuid"
)

// Store is the in-memory record store and token ledger. Atomically stages a
// copy of all tables and swaps it in only when the transaction function
// succeeds, so a mid-transaction failure leaves nothing behind.
type Store struct {
	mu    sync.RWMutex
	state tables
}

type tables struct {
	campaigns   map[string]entities.Campaign
	contestants map[string]entities.Contestant
	voters      map[string]entities.Voter
	balances    map[string]uint64
}

func NewStore() *Store {
	return &Store{
		state: tables{
			campaigns:   make(map[string]entities.Campaign),
			contestants: make(map[string]entities.Contestant),
			voters:      make(map[string]entities.Voter),
			balances:    make(map[string]uint64),
		},
	}
}

// SeedTokenAccount funds an owner's token account. Test and local bootstrap
// helper; the real ledger lives outside the core.
func (s *Store) SeedTokenAccount(owner string, balance uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.balances[strings.TrimSpace(owner)] = balance
}

// Balance reports an account's current funds.
func (s *Store) Balance(owner string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.balances[strings.TrimSpace(owner)]
}

func (s *Store) Atomically(_ context.Context, fn func(tx ports.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := &storeTx{state: s.state.clone()}
	if err := fn(staged); err != nil {
		return err
	}
	s.state = staged.state
	return nil
}

func (s *Store) CreateCampaign(ctx context.Context, campaign entities.Campaign) error {
	return s.Atomically(ctx, func(tx ports.Tx) error {
		return tx.CreateCampaign(ctx, campaign)
	})
}

func (s *Store) GetCampaign(_ context.Context, campaignKey string) (entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.getCampaign(campaignKey)
}

func (s *Store) SaveCampaign(ctx context.Context, campaign entities.Campaign) error {
	return s.Atomically(ctx, func(tx ports.Tx) error {
		return tx.SaveCampaign(ctx, campaign)
	})
}

func (s *Store) ListCampaigns(_ context.Context) ([]entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.listCampaigns(), nil
}

func (s *Store) CreateContestant(ctx context.Context, contestant entities.Contestant) error {
	return s.Atomically(ctx, func(tx ports.Tx) error {
		return tx.CreateContestant(ctx, contestant)
	})
}

func (s *Store) GetContestant(_ context.Context, campaignKey string, contestantID uint32) (entities.Contestant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.getContestant(campaignKey, contestantID)
}

func (s *Store) SaveContestant(ctx context.Context, contestant entities.Contestant) error {
	return s.Atomically(ctx, func(tx ports.Tx) error {
		return tx.SaveContestant(ctx, contestant)
	})
}

func (s *Store) ListContestants(_ context.Context, campaignKey string) ([]entities.Contestant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.listContestants(campaignKey), nil
}

func (s *Store) GetVoter(_ context.Context, campaignKey string, principal string) (entities.Voter, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.getVoter(campaignKey, principal)
}

func (s *Store) SaveVoter(ctx context.Context, voter entities.Voter) error {
	return s.Atomically(ctx, func(tx ports.Tx) error {
		return tx.SaveVoter(ctx, voter)
	})
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

// storeTx operates on the staged copy under the store lock. Its methods never
// lock themselves.
type storeTx struct {
	state tables
}

func (t *storeTx) CreateCampaign(_ context.Context, campaign entities.Campaign) error {
	key := strings.TrimSpace(campaign.CampaignKey)
	if _, exists := t.state.campaigns[key]; exists {
		return domainerrors.ErrCampaignExists
	}
	t.state.campaigns[key] = campaign
	return nil
}

func (t *storeTx) GetCampaign(_ context.Context, campaignKey string) (entities.Campaign, error) {
	return t.state.getCampaign(campaignKey)
}

func (t *storeTx) SaveCampaign(_ context.Context, campaign entities.Campaign) error {
	t.state.campaigns[strings.TrimSpace(campaign.CampaignKey)] = campaign
	return nil
}

func (t *storeTx) ListCampaigns(_ context.Context) ([]entities.Campaign, error) {
	return t.state.listCampaigns(), nil
}

func (t *storeTx) CreateContestant(_ context.Context, contestant entities.Contestant) error {
	key := strings.TrimSpace(contestant.ContestantKey)
	if _, exists := t.state.contestants[key]; exists {
		return domainerrors.ErrRecordConflict
	}
	t.state.contestants[key] = contestant
	return nil
}

func (t *storeTx) GetContestant(_ context.Context, campaignKey string, contestantID uint32) (entities.Contestant, error) {
	return t.state.getContestant(campaignKey, contestantID)
}

func (t *storeTx) SaveContestant(_ context.Context, contestant entities.Contestant) error {
	t.state.contestants[strings.TrimSpace(contestant.ContestantKey)] = contestant
	return nil
}

func (t *storeTx) ListContestants(_ context.Context, campaignKey string) ([]entities.Contestant, error) {
	return t.state.listContestants(campaignKey), nil
}

func (t *storeTx) GetVoter(_ context.Context, campaignKey string, principal string) (entities.Voter, bool, error) {
	return t.state.getVoter(campaignKey, principal)
}

func (t *storeTx) SaveVoter(_ context.Context, voter entities.Voter) error {
	t.state.voters[strings.TrimSpace(voter.VoterKey)] = voter
	return nil
}

func (t *storeTx) Transfer(_ context.Context, source string, dest string, authority string, amount uint64) error {
	source = strings.TrimSpace(source)
	dest = strings.TrimSpace(dest)
	authority = strings.TrimSpace(authority)

	if authority != source && authority != keys.TreasuryAuthority() {
		return domainerrors.ErrTransferFailed
	}
	if authority == keys.TreasuryAuthority() && source != keys.TreasurySink() {
		return domainerrors.ErrTransferFailed
	}
	balance, exists := t.state.balances[source]
	if !exists || balance < amount {
		return domainerrors.ErrTransferFailed
	}
	t.state.balances[source] = balance - amount
	t.state.balances[dest] += amount
	return nil
}

func (t tables) clone() tables {
	return tables{
		campaigns:   cloneMap(t.campaigns),
		contestants: cloneMap(t.contestants),
		voters:      cloneMap(t.voters),
		balances:    cloneMap(t.balances),
	}
}

func (t tables) getCampaign(campaignKey string) (entities.Campaign, error) {
	campaign, ok := t.campaigns[strings.TrimSpace(campaignKey)]
	if !ok {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	return campaign, nil
}

func (t tables) getContestant(campaignKey string, contestantID uint32) (entities.Contestant, error) {
	contestant, ok := t.contestants[keys.Contestant(strings.TrimSpace(campaignKey), contestantID)]
	if !ok {
		return entities.Contestant{}, domainerrors.ErrContestantNotFound
	}
	return contestant, nil
}

func (t tables) getVoter(campaignKey string, principal string) (entities.Voter, bool, error) {
	voter, ok := t.voters[keys.Voter(strings.TrimSpace(campaignKey), strings.TrimSpace(principal))]
	if !ok {
		return entities.Voter{}, false, nil
	}
	return voter, true, nil
}

func (t tables) listCampaigns() []entities.Campaign {
	items := make([]entities.Campaign, 0, len(t.campaigns))
	for _, campaign := range t.campaigns {
		items = append(items, campaign)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items
}

func (t tables) listContestants(campaignKey string) []entities.Contestant {
	campaignKey = strings.TrimSpace(campaignKey)
	items := make([]entities.Contestant, 0)
	for _, contestant := range t.contestants {
		if contestant.CampaignKey == campaignKey {
			items = append(items, contestant)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ContestantID < items[j].ContestantID
	})
	return items
}

func cloneMap[V any](src map[string]V) map[string]V {
	dst := make(map[string]V, len(src))
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
