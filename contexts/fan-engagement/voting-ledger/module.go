package votingledger

import (
	"log/slog"

	httpadapter "fanvote/contexts/fan-engagement/voting-ledger/adapters/http"
	"fanvote/contexts/fan-engagement/voting-ledger/adapters/memory"
	"fanvote/contexts/fan-engagement/voting-ledger/application/commands"
	"fanvote/contexts/fan-engagement/voting-ledger/application/queries"
	"fanvote/contexts/fan-engagement/voting-ledger/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Store                 ports.RecordStore
	Clock                 ports.Clock
	IDGen                 ports.IDGenerator
	AuthorizedWithdrawers []string
	Logger                *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			CreateCampaign: commands.CreateCampaignUseCase{
				Store:  deps.Store,
				Clock:  deps.Clock,
				Logger: deps.Logger,
			},
			EditCampaign: commands.EditCampaignUseCase{
				Store:  deps.Store,
				Clock:  deps.Clock,
				Logger: deps.Logger,
			},
			ToggleCampaign: commands.ToggleCampaignUseCase{
				Store:  deps.Store,
				Clock:  deps.Clock,
				Logger: deps.Logger,
			},
			Contestants: commands.ContestantUseCase{
				Store:  deps.Store,
				Clock:  deps.Clock,
				Logger: deps.Logger,
			},
			CastVote: commands.CastVoteUseCase{
				Store:  deps.Store,
				Clock:  deps.Clock,
				Logger: deps.Logger,
			},
			WithdrawFees: commands.WithdrawFeesUseCase{
				Store:                 deps.Store,
				IDGen:                 deps.IDGen,
				AuthorizedWithdrawers: deps.AuthorizedWithdrawers,
				Logger:                deps.Logger,
			},
			Campaigns: queries.CampaignQueries{
				Store: deps.Store,
			},
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(authorizedWithdrawers []string, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Store:                 store,
		Clock:                 store,
		IDGen:                 store,
		AuthorizedWithdrawers: authorizedWithdrawers,
		Logger:                logger,
	})
	module.Store = store
	return module
}
