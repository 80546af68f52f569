// Package eth implements the bridge estimator, executor and status
// tracker for EVM chains on top of the chain data provider.
package eth

import (
	"time"

	"github.com/crosshop/CrossChain-Bridger/tokens"
)

var (
	retryRPCCount    = 3
	retryRPCInterval = 1 * time.Second
)

// Bridge evm bridge backend
type Bridge struct {
	provider tokens.ChainProvider
	signer   tokens.Signer
}

// NewBridge new bridge backend. signer may be nil, mutating operations
// then fail with ErrSigningUnavailable.
func NewBridge(provider tokens.ChainProvider, signer tokens.Signer) *Bridge {
	return &Bridge{
		provider: provider,
		signer:   signer,
	}
}

// HasSigner has signing capability
func (b *Bridge) HasSigner() bool {
	return b.signer != nil
}
