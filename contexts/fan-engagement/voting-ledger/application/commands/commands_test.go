package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"fanvote/contexts/fan-engagement/voting-ledger/adapters/memory"
	"fanvote/contexts/fan-engagement/voting-ledger/domain/entities"
	domainerrors "fanvote/contexts/fan-engagement/voting-ledger/domain/errors"
	"fanvote/contexts/fan-engagement/voting-ledger/domain/keys"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type ledgerFixture struct {
	store        *memory.Store
	clock        fixedClock
	create       CreateCampaignUseCase
	edit         EditCampaignUseCase
	toggle       ToggleCampaignUseCase
	contestants  ContestantUseCase
	castVote     CastVoteUseCase
	withdrawFees WithdrawFeesUseCase
}

func newLedgerFixture() *ledgerFixture {
	store := memory.NewStore()
	clock := fixedClock{now: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)}
	return &ledgerFixture{
		store:       store,
		clock:       clock,
		create:      CreateCampaignUseCase{Store: store, Clock: clock},
		edit:        EditCampaignUseCase{Store: store, Clock: clock},
		toggle:      ToggleCampaignUseCase{Store: store, Clock: clock},
		contestants: ContestantUseCase{Store: store, Clock: clock},
		castVote:    CastVoteUseCase{Store: store, Clock: clock},
		withdrawFees: WithdrawFeesUseCase{
			Store:                 store,
			IDGen:                 store,
			AuthorizedWithdrawers: []string{"treasurer"},
		},
	}
}

func (f *ledgerFixture) openCampaign(t *testing.T, creator string, title string, feePct uint8) entities.Campaign {
	t.Helper()
	campaign, err := f.create.Execute(context.Background(), CreateCampaignCommand{
		Creator:       creator,
		Title:         title,
		StartTime:     f.clock.now.Add(-time.Hour).Unix(),
		EndTime:       f.clock.now.Add(time.Hour).Unix(),
		FeePercentage: feePct,
	})
	if err != nil {
		t.Fatalf("create campaign: %v", err)
	}
	return campaign
}

func (f *ledgerFixture) addContestant(t *testing.T, creator string, campaignKey string, name string) entities.Contestant {
	t.Helper()
	contestant, err := f.contestants.Add(context.Background(), AddContestantCommand{
		CampaignKey: campaignKey,
		Caller:      creator,
		Name:        name,
	})
	if err != nil {
		t.Fatalf("add contestant: %v", err)
	}
	return contestant
}

func TestCreateCampaignDerivesDeterministicKey(t *testing.T) {
	f := newLedgerFixture()
	campaign := f.openCampaign(t, "alice", "Best Performance 2026", 10)

	if campaign.CampaignKey != keys.Campaign("Best Performance 2026") {
		t.Fatalf("unexpected campaign key %q", campaign.CampaignKey)
	}
	if !campaign.IsActive {
		t.Fatalf("new campaign must start active")
	}
	if campaign.ContestantCount != 0 || campaign.TotalVotes != 0 {
		t.Fatalf("new campaign counters must start at zero: %+v", campaign)
	}
	for _, slot := range campaign.TopVoters {
		if slot.Occupied {
			t.Fatalf("new campaign leaderboard must be empty: %+v", campaign.TopVoters)
		}
	}
}

func TestCreateCampaignRejectsDuplicateTitle(t *testing.T) {
	f := newLedgerFixture()
	f.openCampaign(t, "alice", "Summer Finals", 5)

	_, err := f.create.Execute(context.Background(), CreateCampaignCommand{
		Creator:       "bob",
		Title:         "Summer Finals",
		StartTime:     f.clock.now.Add(-time.Hour).Unix(),
		EndTime:       f.clock.now.Add(time.Hour).Unix(),
		FeePercentage: 5,
	})
	if !errors.Is(err, domainerrors.ErrCampaignExists) {
		t.Fatalf("expected ErrCampaignExists, got %v", err)
	}
}

func TestCreateCampaignValidation(t *testing.T) {
	f := newLedgerFixture()
	now := f.clock.now

	longTitle := make([]byte, entities.MaxTitleLength+1)
	for i := range longTitle {
		longTitle[i] = 'x'
	}

	cases := []struct {
		name string
		cmd  CreateCampaignCommand
		want error
	}{
		{
			name: "title too long",
			cmd: CreateCampaignCommand{
				Title:     string(longTitle),
				StartTime: now.Unix(),
				EndTime:   now.Add(time.Hour).Unix(),
			},
			want: domainerrors.ErrTitleTooLong,
		},
		{
			name: "fee over cap",
			cmd: CreateCampaignCommand{
				Title:         "Fee Cap",
				StartTime:     now.Unix(),
				EndTime:       now.Add(time.Hour).Unix(),
				FeePercentage: entities.MaxFeePercentage + 1,
			},
			want: domainerrors.ErrFeeTooHigh,
		},
		{
			name: "start not before end",
			cmd: CreateCampaignCommand{
				Title:     "Window",
				StartTime: now.Add(time.Hour).Unix(),
				EndTime:   now.Add(time.Hour).Unix(),
			},
			want: domainerrors.ErrInvalidTimeRange,
		},
		{
			name: "already over",
			cmd: CreateCampaignCommand{
				Title:     "Over",
				StartTime: now.Add(-2 * time.Hour).Unix(),
				EndTime:   now.Add(-time.Hour).Unix(),
			},
			want: domainerrors.ErrEndTimeInPast,
		},
	}
	for _, tc := range cases {
		if _, err := f.create.Execute(context.Background(), tc.cmd); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestEditCampaignRejectsNonCreator(t *testing.T) {
	f := newLedgerFixture()
	campaign := f.openCampaign(t, "alice", "Owner Only", 5)

	newFee := uint8(1)
	err := f.edit.Execute(context.Background(), EditCampaignCommand{
		CampaignKey:   campaign.CampaignKey,
		Caller:        "mallory",
		FeePercentage: &newFee,
	})
	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	stored, err := f.store.GetCampaign(context.Background(), campaign.CampaignKey)
	if err != nil {
		t.Fatalf("get campaign: %v", err)
	}
	if stored.PlatformFeePercentage != 5 {
		t.Fatalf("rejected edit must not change state, got fee %d", stored.PlatformFeePercentage)
	}
}

func TestEditCampaignValidatesBeforeApplying(t *testing.T) {
	f := newLedgerFixture()
	campaign := f.openCampaign(t, "alice", "Partial Patch", 5)

	pastEnd := f.clock.now.Add(-time.Minute).Unix()
	banner := "https://cdn.example/banner.png"
	err := f.edit.Execute(context.Background(), EditCampaignCommand{
		CampaignKey: campaign.CampaignKey,
		Caller:      "alice",
		EndTime:     &pastEnd,
		BannerURL:   &banner,
	})
	if !errors.Is(err, domainerrors.ErrInvalidEndTime) {
		t.Fatalf("expected ErrInvalidEndTime, got %v", err)
	}

	stored, _ := f.store.GetCampaign(context.Background(), campaign.CampaignKey)
	if stored.BannerURL != "" {
		t.Fatalf("failed edit must apply nothing, got banner %q", stored.BannerURL)
	}
}

func TestEditCampaignAppliesProvidedFields(t *testing.T) {
	f := newLedgerFixture()
	campaign := f.openCampaign(t, "alice", "Patchable", 5)

	newEnd := f.clock.now.Add(2 * time.Hour).Unix()
	newFee := uint8(12)
	err := f.edit.Execute(context.Background(), EditCampaignCommand{
		CampaignKey:   campaign.CampaignKey,
		Caller:        "alice",
		EndTime:       &newEnd,
		FeePercentage: &newFee,
	})
	if err != nil {
		t.Fatalf("edit campaign: %v", err)
	}

	stored, _ := f.store.GetCampaign(context.Background(), campaign.CampaignKey)
	if stored.EndTime != newEnd || stored.PlatformFeePercentage != 12 {
		t.Fatalf("expected patch applied, got %+v", stored)
	}
	if stored.StartTime != campaign.StartTime || stored.Title != campaign.Title {
		t.Fatalf("untouched fields must survive, got %+v", stored)
	}
}

func TestPauseAndActivateCampaign(t *testing.T) {
	f := newLedgerFixture()
	campaign := f.openCampaign(t, "alice", "Toggle Me", 5)
	ctx := context.Background()
	cmd := ToggleCampaignCommand{CampaignKey: campaign.CampaignKey, Caller: "alice"}

	if err := f.toggle.Activate(ctx, cmd); !errors.Is(err, domainerrors.ErrCampaignAlreadyActive) {
		t.Fatalf("expected ErrCampaignAlreadyActive, got %v", err)
	}
	if err := f.toggle.Pause(ctx, cmd); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if err := f.toggle.Pause(ctx, cmd); !errors.Is(err, domainerrors.ErrCampaignAlreadyPaused) {
		t.Fatalf("expected ErrCampaignAlreadyPaused, got %v", err)
	}
	if err := f.toggle.Activate(ctx, cmd); err != nil {
		t.Fatalf("activate: %v", err)
	}

	stored, _ := f.store.GetCampaign(ctx, campaign.CampaignKey)
	if !stored.IsActive {
		t.Fatalf("expected campaign active after reactivation")
	}
}

func TestActivateRejectsEndedCampaign(t *testing.T) {
	f := newLedgerFixture()
	campaign := f.openCampaign(t, "alice", "Short Window", 5)
	ctx := context.Background()
	cmd := ToggleCampaignCommand{CampaignKey: campaign.CampaignKey, Caller: "alice"}

	if err := f.toggle.Pause(ctx, cmd); err != nil {
		t.Fatalf("pause: %v", err)
	}

	lateToggle := f.toggle
	lateToggle.Clock = fixedClock{now: f.clock.now.Add(2 * time.Hour)}
	if err := lateToggle.Activate(ctx, cmd); !errors.Is(err, domainerrors.ErrCampaignEnded) {
		t.Fatalf("expected ErrCampaignEnded, got %v", err)
	}
}

func TestAddContestantAssignsSequentialIDs(t *testing.T) {
	f := newLedgerFixture()
	campaign := f.openCampaign(t, "alice", "Lineup", 5)

	first := f.addContestant(t, "alice", campaign.CampaignKey, "First")
	second := f.addContestant(t, "alice", campaign.CampaignKey, "Second")

	if first.ContestantID != 0 || second.ContestantID != 1 {
		t.Fatalf("expected ids 0 and 1, got %d and %d", first.ContestantID, second.ContestantID)
	}
	if first.ContestantKey != keys.Contestant(campaign.CampaignKey, 0) {
		t.Fatalf("unexpected contestant key %q", first.ContestantKey)
	}

	stored, _ := f.store.GetCampaign(context.Background(), campaign.CampaignKey)
	if stored.ContestantCount != 2 {
		t.Fatalf("expected contestant count 2, got %d", stored.ContestantCount)
	}
}

func TestAddContestantRejectsNonCreator(t *testing.T) {
	f := newLedgerFixture()
	campaign := f.openCampaign(t, "alice", "Locked Lineup", 5)

	_, err := f.contestants.Add(context.Background(), AddContestantCommand{
		CampaignKey: campaign.CampaignKey,
		Caller:      "mallory",
		Name:        "Intruder",
	})
	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAddContestantEnforcesCap(t *testing.T) {
	f := newLedgerFixture()
	campaign := f.openCampaign(t, "alice", "Full Roster", 5)
	ctx := context.Background()

	for i := 0; i < entities.MaxContestants; i++ {
		f.addContestant(t, "alice", campaign.CampaignKey, "Contestant")
	}

	_, err := f.contestants.Add(ctx, AddContestantCommand{
		CampaignKey: campaign.CampaignKey,
		Caller:      "alice",
		Name:        "One Too Many",
	})
	if !errors.Is(err, domainerrors.ErrTooManyContestants) {
		t.Fatalf("expected ErrTooManyContestants, got %v", err)
	}

	stored, _ := f.store.GetCampaign(ctx, campaign.CampaignKey)
	if stored.ContestantCount != entities.MaxContestants {
		t.Fatalf("rejected add must not bump the counter, got %d", stored.ContestantCount)
	}
}

func TestAddContestantRejectsEmptyName(t *testing.T) {
	f := newLedgerFixture()
	campaign := f.openCampaign(t, "alice", "Named Only", 5)

	_, err := f.contestants.Add(context.Background(), AddContestantCommand{
		CampaignKey: campaign.CampaignKey,
		Caller:      "alice",
		Name:        "   ",
	})
	if !errors.Is(err, domainerrors.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestEditContestantUnknownIDIsInvalid(t *testing.T) {
	f := newLedgerFixture()
	campaign := f.openCampaign(t, "alice", "Sparse Lineup", 5)

	name := "Renamed"
	err := f.contestants.Edit(context.Background(), EditContestantCommand{
		CampaignKey:  campaign.CampaignKey,
		ContestantID: 7,
		Caller:       "alice",
		Name:         &name,
	})
	if !errors.Is(err, domainerrors.ErrInvalidContestant) {
		t.Fatalf("expected ErrInvalidContestant, got %v", err)
	}
}

func TestEditContestantAppliesPatch(t *testing.T) {
	f := newLedgerFixture()
	campaign := f.openCampaign(t, "alice", "Editable Lineup", 5)
	contestant := f.addContestant(t, "alice", campaign.CampaignKey, "Original")

	name := "Updated"
	bio := "New bio"
	err := f.contestants.Edit(context.Background(), EditContestantCommand{
		CampaignKey:  campaign.CampaignKey,
		ContestantID: contestant.ContestantID,
		Caller:       "alice",
		Name:         &name,
		Bio:          &bio,
	})
	if err != nil {
		t.Fatalf("edit contestant: %v", err)
	}

	stored, err := f.store.GetContestant(context.Background(), campaign.CampaignKey, contestant.ContestantID)
	if err != nil {
		t.Fatalf("get contestant: %v", err)
	}
	if stored.Name != "Updated" || stored.Bio != "New bio" {
		t.Fatalf("expected patch applied, got %+v", stored)
	}
	if stored.ImageURL != contestant.ImageURL {
		t.Fatalf("unprovided field must survive, got %+v", stored)
	}
}

func TestCastVoteSplitsFeeAndCredits(t *testing.T) {
	f := newLedgerFixture()
	campaign := f.openCampaign(t, "alice", "Grand Final", 10)
	contestant := f.addContestant(t, "alice", campaign.CampaignKey, "Star")
	f.store.SeedTokenAccount("fan", 1000)
	ctx := context.Background()

	err := f.castVote.Execute(ctx, CastVoteCommand{
		CampaignKey:    campaign.CampaignKey,
		ContestantID:   contestant.ContestantID,
		VoterPrincipal: "fan",
		Amount:         100,
	})
	if err != nil {
		t.Fatalf("cast vote: %v", err)
	}

	storedCampaign, _ := f.store.GetCampaign(ctx, campaign.CampaignKey)
	storedContestant, _ := f.store.GetContestant(ctx, campaign.CampaignKey, contestant.ContestantID)
	if storedContestant.VoteCount != 90 {
		t.Fatalf("expected contestant credited with net 90, got %d", storedContestant.VoteCount)
	}
	if storedCampaign.TotalVotes != 90 {
		t.Fatalf("expected campaign total 90, got %d", storedCampaign.TotalVotes)
	}
	if balance := f.store.Balance("fan"); balance != 900 {
		t.Fatalf("expected fan debited to 900, got %d", balance)
	}
	if balance := f.store.Balance(campaign.CampaignKey); balance != 90 {
		t.Fatalf("expected campaign sink 90, got %d", balance)
	}
	if balance := f.store.Balance(keys.TreasurySink()); balance != 10 {
		t.Fatalf("expected treasury 10, got %d", balance)
	}

	record, found, err := f.store.GetVoter(ctx, campaign.CampaignKey, "fan")
	if err != nil || !found {
		t.Fatalf("expected voter record, found=%v err=%v", found, err)
	}
	if record.TotalVoted != 90 {
		t.Fatalf("expected voter total 90, got %d", record.TotalVoted)
	}
	if !storedCampaign.TopVoters.Holds("fan") {
		t.Fatalf("expected fan on the leaderboard: %+v", storedCampaign.TopVoters)
	}
}

func TestCastVoteRepeatVotesAccumulate(t *testing.T) {
	f := newLedgerFixture()
	campaign := f.openCampaign(t, "alice", "Repeat Votes", 10)
	contestant := f.addContestant(t, "alice", campaign.CampaignKey, "Star")
	f.store.SeedTokenAccount("fan", 1000)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := f.castVote.Execute(ctx, CastVoteCommand{
			CampaignKey:    campaign.CampaignKey,
			ContestantID:   contestant.ContestantID,
			VoterPrincipal: "fan",
			Amount:         100,
		})
		if err != nil {
			t.Fatalf("cast vote %d: %v", i, err)
		}
	}

	record, _, _ := f.store.GetVoter(ctx, campaign.CampaignKey, "fan")
	if record.TotalVoted != 270 {
		t.Fatalf("expected cumulative voter total 270, got %d", record.TotalVoted)
	}
	storedCampaign, _ := f.store.GetCampaign(ctx, campaign.CampaignKey)
	if storedCampaign.TotalVotes != 270 {
		t.Fatalf("expected campaign total 270, got %d", storedCampaign.TotalVotes)
	}
	if balance := f.store.Balance(keys.TreasurySink()); balance != 30 {
		t.Fatalf("expected treasury 30, got %d", balance)
	}
}

func TestCastVoteWindowAndStateChecks(t *testing.T) {
	f := newLedgerFixture()
	campaign := f.openCampaign(t, "alice", "Strict Window", 10)
	contestant := f.addContestant(t, "alice", campaign.CampaignKey, "Star")
	f.store.SeedTokenAccount("fan", 1000)
	ctx := context.Background()
	base := CastVoteCommand{
		CampaignKey:    campaign.CampaignKey,
		ContestantID:   contestant.ContestantID,
		VoterPrincipal: "fan",
		Amount:         100,
	}

	early := f.castVote
	early.Clock = fixedClock{now: f.clock.now.Add(-2 * time.Hour)}
	if err := early.Execute(ctx, base); !errors.Is(err, domainerrors.ErrCampaignNotStarted) {
		t.Fatalf("expected ErrCampaignNotStarted, got %v", err)
	}

	late := f.castVote
	late.Clock = fixedClock{now: f.clock.now.Add(2 * time.Hour)}
	if err := late.Execute(ctx, base); !errors.Is(err, domainerrors.ErrCampaignEnded) {
		t.Fatalf("expected ErrCampaignEnded, got %v", err)
	}

	zero := base
	zero.Amount = 0
	if err := f.castVote.Execute(ctx, zero); !errors.Is(err, domainerrors.ErrZeroAmount) {
		t.Fatalf("expected ErrZeroAmount, got %v", err)
	}

	unknown := base
	unknown.ContestantID = 42
	if err := f.castVote.Execute(ctx, unknown); !errors.Is(err, domainerrors.ErrInvalidContestant) {
		t.Fatalf("expected ErrInvalidContestant, got %v", err)
	}

	if err := f.toggle.Pause(ctx, ToggleCampaignCommand{CampaignKey: campaign.CampaignKey, Caller: "alice"}); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if err := f.castVote.Execute(ctx, base); !errors.Is(err, domainerrors.ErrCampaignInactive) {
		t.Fatalf("expected ErrCampaignInactive, got %v", err)
	}

	storedCampaign, _ := f.store.GetCampaign(ctx, campaign.CampaignKey)
	if storedCampaign.TotalVotes != 0 {
		t.Fatalf("rejected votes must not change counters, got %d", storedCampaign.TotalVotes)
	}
}

func TestCastVoteInsufficientBalanceUnwindsEverything(t *testing.T) {
	f := newLedgerFixture()
	campaign := f.openCampaign(t, "alice", "Broke Fan", 10)
	contestant := f.addContestant(t, "alice", campaign.CampaignKey, "Star")
	f.store.SeedTokenAccount("fan", 95)
	ctx := context.Background()

	err := f.castVote.Execute(ctx, CastVoteCommand{
		CampaignKey:    campaign.CampaignKey,
		ContestantID:   contestant.ContestantID,
		VoterPrincipal: "fan",
		Amount:         100,
	})
	if !errors.Is(err, domainerrors.ErrTransferFailed) {
		t.Fatalf("expected ErrTransferFailed, got %v", err)
	}

	if balance := f.store.Balance("fan"); balance != 95 {
		t.Fatalf("failed vote must not touch balances, got %d", balance)
	}
	storedContestant, _ := f.store.GetContestant(ctx, campaign.CampaignKey, contestant.ContestantID)
	if storedContestant.VoteCount != 0 {
		t.Fatalf("failed vote must not credit the contestant, got %d", storedContestant.VoteCount)
	}
	if _, found, _ := f.store.GetVoter(ctx, campaign.CampaignKey, "fan"); found {
		t.Fatalf("failed vote must not create a voter record")
	}
}

func TestCastVoteLeaderboardRanksByCumulativeTotal(t *testing.T) {
	f := newLedgerFixture()
	campaign := f.openCampaign(t, "alice", "Leaderboard Race", 0)
	contestant := f.addContestant(t, "alice", campaign.CampaignKey, "Star")
	ctx := context.Background()

	votes := []struct {
		voter  string
		amount uint64
	}{
		{"fan-a", 50},
		{"fan-b", 40},
		{"fan-c", 30},
		{"fan-d", 20},
		{"fan-d", 25},
	}
	for _, v := range votes {
		f.store.SeedTokenAccount(v.voter, 1000)
	}
	for _, v := range votes {
		err := f.castVote.Execute(ctx, CastVoteCommand{
			CampaignKey:    campaign.CampaignKey,
			ContestantID:   contestant.ContestantID,
			VoterPrincipal: v.voter,
			Amount:         v.amount,
		})
		if err != nil {
			t.Fatalf("cast vote for %s: %v", v.voter, err)
		}
	}

	stored, _ := f.store.GetCampaign(ctx, campaign.CampaignKey)
	board := stored.TopVoters
	if board[0].Voter != "fan-a" || board[1].Voter != "fan-d" || board[2].Voter != "fan-b" {
		t.Fatalf("unexpected leaderboard: %+v", board)
	}
	if board[1].TotalVoted != 45 {
		t.Fatalf("expected fan-d cumulative 45, got %d", board[1].TotalVoted)
	}
	if board.Holds("fan-c") {
		t.Fatalf("expected fan-c displaced: %+v", board)
	}
}

func TestWithdrawFeesRequiresAuthorization(t *testing.T) {
	f := newLedgerFixture()
	f.store.SeedTokenAccount(keys.TreasurySink(), 500)

	_, err := f.withdrawFees.Execute(context.Background(), WithdrawFeesCommand{
		Withdrawer:  "mallory",
		Destination: "payout",
		Amount:      100,
	})
	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if balance := f.store.Balance(keys.TreasurySink()); balance != 500 {
		t.Fatalf("rejected withdrawal must not move funds, got %d", balance)
	}
}

func TestWithdrawFeesMovesTreasuryFunds(t *testing.T) {
	f := newLedgerFixture()
	f.store.SeedTokenAccount(keys.TreasurySink(), 500)

	result, err := f.withdrawFees.Execute(context.Background(), WithdrawFeesCommand{
		Withdrawer:  "treasurer",
		Destination: "payout",
		Amount:      200,
	})
	if err != nil {
		t.Fatalf("withdraw fees: %v", err)
	}
	if result.WithdrawalID == "" {
		t.Fatalf("expected a withdrawal receipt id")
	}
	if result.Amount != 200 || result.Destination != "payout" {
		t.Fatalf("unexpected result %+v", result)
	}
	if balance := f.store.Balance(keys.TreasurySink()); balance != 300 {
		t.Fatalf("expected treasury 300, got %d", balance)
	}
	if balance := f.store.Balance("payout"); balance != 200 {
		t.Fatalf("expected payout 200, got %d", balance)
	}
}

func TestWithdrawFeesRejectsZeroAndOverdraw(t *testing.T) {
	f := newLedgerFixture()
	f.store.SeedTokenAccount(keys.TreasurySink(), 100)
	ctx := context.Background()

	_, err := f.withdrawFees.Execute(ctx, WithdrawFeesCommand{
		Withdrawer:  "treasurer",
		Destination: "payout",
		Amount:      0,
	})
	if !errors.Is(err, domainerrors.ErrZeroAmount) {
		t.Fatalf("expected ErrZeroAmount, got %v", err)
	}

	_, err = f.withdrawFees.Execute(ctx, WithdrawFeesCommand{
		Withdrawer:  "treasurer",
		Destination: "payout",
		Amount:      101,
	})
	if !errors.Is(err, domainerrors.ErrTransferFailed) {
		t.Fatalf("expected ErrTransferFailed, got %v", err)
	}
	if balance := f.store.Balance(keys.TreasurySink()); balance != 100 {
		t.Fatalf("failed withdrawal must not move funds, got %d", balance)
	}
}
