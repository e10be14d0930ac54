package errors

import "errors"

var (
	ErrTitleTooLong     = errors.New("campaign title is too long")
	ErrURLTooLong       = errors.New("url is too long")
	ErrInvalidTimeRange = errors.New("campaign start time must precede end time")
	ErrEndTimeInPast    = errors.New("campaign end time cannot be in the past")
	ErrInvalidEndTime   = errors.New("invalid end time for the campaign")
	ErrFeeTooHigh       = errors.New("platform fee percentage exceeds the maximum")
	ErrInvalidName      = errors.New("contestant name length is invalid")
	ErrBioTooLong       = errors.New("contestant bio is too long")

	ErrUnauthorized = errors.New("caller is not authorized to perform this action")

	ErrCampaignExists     = errors.New("campaign with this title already exists")
	ErrRecordConflict     = errors.New("record key already exists")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrContestantNotFound = errors.New("contestant not found")
	ErrVoterNotFound      = errors.New("voter record not found")

	ErrCampaignAlreadyPaused = errors.New("campaign is already paused")
	ErrCampaignAlreadyActive = errors.New("campaign is already active")
	ErrCampaignEnded         = errors.New("campaign voting period has ended")
	ErrCampaignNotStarted    = errors.New("campaign has not started yet")
	ErrCampaignInactive      = errors.New("campaign is not active")

	ErrTooManyContestants = errors.New("too many contestants in campaign")

	ErrZeroAmount        = errors.New("vote amount cannot be zero")
	ErrInvalidContestant = errors.New("contestant does not belong to this campaign")

	ErrFeeCalculation  = errors.New("invalid fee calculation")
	ErrVoteOverflow    = errors.New("vote counter overflow")
	ErrCounterOverflow = errors.New("contestant counter overflow")

	ErrTransferFailed = errors.New("token transfer rejected")
)
