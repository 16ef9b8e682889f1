package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrProductNotFound = errors.New("product not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest     = errors.New("error parsing request")
	ErrMissingOrderID = errors.New("order id is not provided")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrMissingToken               = errors.New("order token is not provided")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("actor is unauthorized to access the resource")
	ErrForbidden                  = errors.New("actor is forbidden to act on this approval stage")

	// * Business errors.
	ErrAlreadyDecided         = errors.New("approval stage is already decided")
	ErrMissingRejectionReason = errors.New("rejection requires a reason")
	ErrOrderNotEditable       = errors.New("order is not editable in its current status")
	ErrOrderNotResubmittable  = errors.New("order is not rejected, nothing to resubmit")
	ErrOrderNotPayable        = errors.New("order is not payable in its current state")
	ErrLastItem               = errors.New("order must keep at least one item")
	ErrInvalidQuantity        = errors.New("item quantity must be at least 1")
	ErrEmptyOrder             = errors.New("order must contain at least one item")
	ErrPaymentDeclined        = errors.New("payment was declined by the gateway")
)
