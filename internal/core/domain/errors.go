package domain

import "errors"

// Code is a machine-readable error code surfaced to callers.
type Code string

const (
	CodeUnknown Code = "UNKNOWN"

	// Launch errors
	CodeAlreadyLaunched       Code = "ALREADY_LAUNCHED"
	CodeContractLocked        Code = "CONTRACT_LOCKED"
	CodeDurationOutOfRange    Code = "DURATION_OUT_OF_RANGE"
	CodeSupplyTooLow          Code = "SUPPLY_TOO_LOW"
	CodeInvalidWindow         Code = "INVALID_WINDOW"
	CodeInsufficientAllowance Code = "INSUFFICIENT_ALLOWANCE"
	CodeInsufficientFee       Code = "INSUFFICIENT_FEE"

	// Purchase errors
	CodeNotStarted          Code = "NOT_STARTED"
	CodeEnded               Code = "ENDED"
	CodeSoldOut             Code = "SOLD_OUT"
	CodeSelfPurchase        Code = "SELF_PURCHASE"
	CodeInsufficientPayment Code = "INSUFFICIENT_PAYMENT"
	CodeExceedsRemaining    Code = "EXCEEDS_REMAINING"

	// Settlement and withdrawal errors
	CodeNotYetClosed      Code = "NOT_YET_CLOSED"
	CodeAlreadySettled    Code = "ALREADY_SETTLED"
	CodeNotSettled        Code = "NOT_SETTLED"
	CodeNothingToWithdraw Code = "NOTHING_TO_WITHDRAW"
	CodeAlreadyRetrieved  Code = "ALREADY_RETRIEVED"

	// Authorization and governance errors
	CodeNotOwner      Code = "NOT_OWNER"
	CodeNotAuthorized Code = "NOT_AUTHORIZED"
	CodeInvalidBounds Code = "INVALID_BOUNDS"

	// Generic errors
	CodeCampaignNotFound Code = "CAMPAIGN_NOT_FOUND"
	CodeTransferFailed   Code = "TRANSFER_FAILED"
	CodeAmountOverflow   Code = "AMOUNT_OVERFLOW"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
)

// Error is a rejected operation. Values are compared by identity, so callers
// classify failures with errors.Is against the sentinels below.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

var (
	ErrAlreadyLaunched       = newError(CodeAlreadyLaunched, "developer already launched a campaign")
	ErrContractLocked        = newError(CodeContractLocked, "launching is locked")
	ErrDurationOutOfRange    = newError(CodeDurationOutOfRange, "duration out of range")
	ErrSupplyTooLow          = newError(CodeSupplyTooLow, "supply below minimum")
	ErrInvalidWindow         = newError(CodeInvalidWindow, "end timestamp must be after start timestamp")
	ErrInsufficientAllowance = newError(CodeInsufficientAllowance, "insufficient allowance")
	ErrInsufficientFee       = newError(CodeInsufficientFee, "insufficient protocol fee")

	ErrNotStarted          = newError(CodeNotStarted, "campaign has not started yet")
	ErrEnded               = newError(CodeEnded, "campaign already ended")
	ErrSoldOut             = newError(CodeSoldOut, "campaign sold out")
	ErrSelfPurchase        = newError(CodeSelfPurchase, "developer cannot buy own campaign")
	ErrInsufficientPayment = newError(CodeInsufficientPayment, "payment below price per unit")
	ErrExceedsRemaining    = newError(CodeExceedsRemaining, "payment exceeds remaining supply")

	ErrNotYetClosed      = newError(CodeNotYetClosed, "campaign neither sold out nor ended")
	ErrAlreadySettled    = newError(CodeAlreadySettled, "campaign already settled")
	ErrNotSettled        = newError(CodeNotSettled, "campaign not settled")
	ErrNothingToWithdraw = newError(CodeNothingToWithdraw, "nothing to withdraw")
	ErrAlreadyRetrieved  = newError(CodeAlreadyRetrieved, "unsold units already retrieved")

	ErrNotOwner      = newError(CodeNotOwner, "caller is not the owner")
	ErrNotAuthorized = newError(CodeNotAuthorized, "caller is not allowed to perform this operation")
	ErrInvalidBounds = newError(CodeInvalidBounds, "invalid day bounds")

	ErrCampaignNotFound = newError(CodeCampaignNotFound, "campaign not found")
	ErrTransferFailed   = newError(CodeTransferFailed, "transfer failed")
	ErrAmountOverflow   = newError(CodeAmountOverflow, "amount overflow")
	ErrInvalidArgument  = newError(CodeInvalidArgument, "invalid argument")
)

// CodeOf returns the code carried by err, or CodeUnknown.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeUnknown
}
