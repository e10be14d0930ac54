package commands

import (
	"context"
	"log/slog"
	"strings"

	application "fanvote/contexts/fan-engagement/voting-ledger/application"
	domainerrors "fanvote/contexts/fan-engagement/voting-ledger/domain/errors"
	"fanvote/contexts/fan-engagement/voting-ledger/domain/keys"
	"fanvote/contexts/fan-engagement/voting-ledger/ports"
)

// WithdrawFeesCommand moves accumulated platform fees out of the treasury
// sink. The transfer is authorized by the derived treasury authority, not by
// the withdrawer's own key.
type WithdrawFeesCommand struct {
	Withdrawer  string
	Destination string
	Amount      uint64
}

// WithdrawFeesResult carries the receipt id for audit trails; cumulative
// withdrawal accounting stays with the external ledger.
type WithdrawFeesResult struct {
	WithdrawalID string
	Destination  string
	Amount       uint64
}

type WithdrawFeesUseCase struct {
	Store                 ports.RecordStore
	IDGen                 ports.IDGenerator
	AuthorizedWithdrawers []string
	Logger                *slog.Logger
}

func (uc WithdrawFeesUseCase) Execute(ctx context.Context, cmd WithdrawFeesCommand) (WithdrawFeesResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	withdrawer := strings.TrimSpace(cmd.Withdrawer)
	if !uc.isAuthorized(withdrawer) {
		return WithdrawFeesResult{}, domainerrors.ErrUnauthorized
	}
	if cmd.Amount == 0 {
		return WithdrawFeesResult{}, domainerrors.ErrZeroAmount
	}

	withdrawalID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return WithdrawFeesResult{}, err
	}
	destination := strings.TrimSpace(cmd.Destination)
	err = uc.Store.Atomically(ctx, func(tx ports.Tx) error {
		return tx.Transfer(ctx, keys.TreasurySink(), destination, keys.TreasuryAuthority(), cmd.Amount)
	})
	if err != nil {
		return WithdrawFeesResult{}, err
	}

	logger.Info("treasury withdrawal executed",
		"event", "ledger_treasury_withdrawal",
		"module", "fan-engagement/voting-ledger",
		"layer", "application",
		"withdrawal_id", withdrawalID,
		"withdrawer", withdrawer,
		"amount", cmd.Amount,
	)
	return WithdrawFeesResult{
		WithdrawalID: withdrawalID,
		Destination:  destination,
		Amount:       cmd.Amount,
	}, nil
}

func (uc WithdrawFeesUseCase) isAuthorized(withdrawer string) bool {
	if withdrawer == "" {
		return false
	}
	for _, allowed := range uc.AuthorizedWithdrawers {
		if strings.TrimSpace(allowed) == withdrawer {
			return true
		}
	}
	return false
}
