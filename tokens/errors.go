package tokens

import (
	"errors"
	"fmt"
)

// common errors
var (
	ErrUnknownChain       = errors.New("unknown chain id")
	ErrUnsupportedHop     = errors.New("no bridge for chain pair")
	ErrRouteNotFound      = errors.New("route not found")
	ErrSigningUnavailable = errors.New("signing unavailable")
	ErrProviderQuery      = errors.New("chain provider query error")
	ErrTxNotFound         = errors.New("tx not found")
	ErrTxNotConfirmed     = errors.New("tx not confirmed")
	ErrWrongRecipient     = errors.New("wrong recipient address")
	ErrWrongAmount        = errors.New("wrong transfer amount")
	ErrMissTokenAddress   = errors.New("miss token address config")
	ErrNoStatusStore      = errors.New("no status store configured")
	ErrEmptyRoutePlan     = errors.New("empty route plan")
	ErrBrokenRoutePlan    = errors.New("broken route plan")
	ErrRouteAborted       = errors.New("route execution aborted")
)

// WrapProviderError wrap provider query error with call context
func WrapProviderError(err error, method string, params ...interface{}) error {
	if err == nil {
		err = ErrTxNotFound
	}
	return fmt.Errorf("%w: call '%s %v' failed, err='%v'", ErrProviderQuery, method, params, err)
}

// IsRetryableError is transient provider error which may be retried
func IsRetryableError(err error) bool {
	return errors.Is(err, ErrProviderQuery)
}

// IsTerminalError is configuration or validation error which must
// surface to the caller immediately
func IsTerminalError(err error) bool {
	switch {
	case errors.Is(err, ErrUnknownChain),
		errors.Is(err, ErrUnsupportedHop),
		errors.Is(err, ErrRouteNotFound),
		errors.Is(err, ErrSigningUnavailable):
		return true
	}
	return false
}
