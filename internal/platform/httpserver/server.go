package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	votingledger "fanvote/contexts/fan-engagement/voting-ledger"
	ledgererrors "fanvote/contexts/fan-engagement/voting-ledger/domain/errors"
	ledgerhttp "fanvote/contexts/fan-engagement/voting-ledger/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "fanvote/internal/platform/httpserver/docs"
)

type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string
	ledger votingledger.Module
}

func New(ledger votingledger.Module, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
		addr:   addr,
		ledger: ledger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /v1/campaigns", s.handleCreateCampaign)
	s.mux.HandleFunc("GET /v1/campaigns", s.handleListCampaigns)
	s.mux.HandleFunc("GET /v1/campaigns/{campaign_key}", s.handleGetCampaign)
	s.mux.HandleFunc("PATCH /v1/campaigns/{campaign_key}", s.handleEditCampaign)
	s.mux.HandleFunc("POST /v1/campaigns/{campaign_key}/pause", s.handlePauseCampaign)
	s.mux.HandleFunc("POST /v1/campaigns/{campaign_key}/activate", s.handleActivateCampaign)
	s.mux.HandleFunc("POST /v1/campaigns/{campaign_key}/contestants", s.handleAddContestant)
	s.mux.HandleFunc("PATCH /v1/campaigns/{campaign_key}/contestants/{contestant_id}", s.handleEditContestant)
	s.mux.HandleFunc("POST /v1/campaigns/{campaign_key}/votes", s.handleCastVote)
	s.mux.HandleFunc("GET /v1/campaigns/{campaign_key}/voters/{principal}", s.handleGetVoter)
	s.mux.HandleFunc("POST /v1/treasury/withdrawals", s.handleWithdrawFees)
}

func (s *Server) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	creator := r.Header.Get("X-User-Id")
	if creator == "" {
		writeLedgerError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	var req ledgerhttp.CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.ledger.Handler.CreateCampaignHandler(r.Context(), creator, req)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ledger.Handler.ListCampaignsHandler(r.Context())
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ledger.Handler.GetCampaignHandler(r.Context(), r.PathValue("campaign_key"))
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEditCampaign(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get("X-User-Id")
	if caller == "" {
		writeLedgerError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	var req ledgerhttp.EditCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := s.ledger.Handler.EditCampaignHandler(r.Context(), caller, r.PathValue("campaign_key"), req); err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePauseCampaign(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get("X-User-Id")
	if caller == "" {
		writeLedgerError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	if err := s.ledger.Handler.PauseCampaignHandler(r.Context(), caller, r.PathValue("campaign_key")); err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleActivateCampaign(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get("X-User-Id")
	if caller == "" {
		writeLedgerError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	if err := s.ledger.Handler.ActivateCampaignHandler(r.Context(), caller, r.PathValue("campaign_key")); err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddContestant(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get("X-User-Id")
	if caller == "" {
		writeLedgerError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	var req ledgerhttp.AddContestantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.ledger.Handler.AddContestantHandler(r.Context(), caller, r.PathValue("campaign_key"), req)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleEditContestant(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get("X-User-Id")
	if caller == "" {
		writeLedgerError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	contestantID, err := strconv.ParseUint(r.PathValue("contestant_id"), 10, 32)
	if err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_contestant_id", "contestant_id must be an unsigned integer")
		return
	}
	var req ledgerhttp.EditContestantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := s.ledger.Handler.EditContestantHandler(r.Context(), caller, r.PathValue("campaign_key"), uint32(contestantID), req); err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCastVote(w http.ResponseWriter, r *http.Request) {
	voter := r.Header.Get("X-User-Id")
	if voter == "" {
		writeLedgerError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	var req ledgerhttp.CastVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := s.ledger.Handler.CastVoteHandler(r.Context(), voter, r.PathValue("campaign_key"), req); err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetVoter(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ledger.Handler.GetVoterHandler(r.Context(), r.PathValue("campaign_key"), r.PathValue("principal"))
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWithdrawFees(w http.ResponseWriter, r *http.Request) {
	withdrawer := r.Header.Get("X-User-Id")
	if withdrawer == "" {
		writeLedgerError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	var req ledgerhttp.WithdrawFeesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.ledger.Handler.WithdrawFeesHandler(r.Context(), withdrawer, req)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeLedgerDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgererrors.ErrTitleTooLong),
		errors.Is(err, ledgererrors.ErrURLTooLong),
		errors.Is(err, ledgererrors.ErrInvalidTimeRange),
		errors.Is(err, ledgererrors.ErrEndTimeInPast),
		errors.Is(err, ledgererrors.ErrInvalidEndTime),
		errors.Is(err, ledgererrors.ErrFeeTooHigh),
		errors.Is(err, ledgererrors.ErrInvalidName),
		errors.Is(err, ledgererrors.ErrBioTooLong),
		errors.Is(err, ledgererrors.ErrZeroAmount),
		errors.Is(err, ledgererrors.ErrInvalidContestant):
		writeLedgerError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, ledgererrors.ErrUnauthorized):
		writeLedgerError(w, http.StatusForbidden, "unauthorized", err.Error())
	case errors.Is(err, ledgererrors.ErrCampaignNotFound),
		errors.Is(err, ledgererrors.ErrContestantNotFound),
		errors.Is(err, ledgererrors.ErrVoterNotFound):
		writeLedgerError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ledgererrors.ErrCampaignExists),
		errors.Is(err, ledgererrors.ErrRecordConflict),
		errors.Is(err, ledgererrors.ErrCampaignAlreadyPaused),
		errors.Is(err, ledgererrors.ErrCampaignAlreadyActive),
		errors.Is(err, ledgererrors.ErrCampaignEnded),
		errors.Is(err, ledgererrors.ErrCampaignNotStarted),
		errors.Is(err, ledgererrors.ErrCampaignInactive),
		errors.Is(err, ledgererrors.ErrTooManyContestants):
		writeLedgerError(w, http.StatusConflict, "state_conflict", err.Error())
	case errors.Is(err, ledgererrors.ErrFeeCalculation),
		errors.Is(err, ledgererrors.ErrVoteOverflow),
		errors.Is(err, ledgererrors.ErrCounterOverflow):
		writeLedgerError(w, http.StatusUnprocessableEntity, "arithmetic_error", err.Error())
	case errors.Is(err, ledgererrors.ErrTransferFailed):
		writeLedgerError(w, http.StatusPaymentRequired, "transfer_failed", err.Error())
	default:
		writeLedgerError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeLedgerError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, ledgerhttp.ErrorResponse{
		Code:    code,
		Message: strings.TrimSpace(message),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
