package router

import (
	"math/big"

	"github.com/crosshop/CrossChain-Bridger/tokens"
)

// CalculateFees calc bridge fee breakdown for a transfer between two
// registered chains. Pure, no I/O; the gas fee part is the target
// chain's static base gas fee from the registry.
func CalculateFees(amount *big.Int, fromChainID, toChainID uint64) (*tokens.FeeBreakdown, error) {
	if !IsSupported(fromChainID) || !IsSupported(toChainID) {
		return nil, tokens.ErrUnknownChain
	}
	if amount == nil || amount.Sign() < 0 {
		return nil, tokens.ErrWrongAmount
	}
	gasFee := GetChainConfig(toChainID).GetBaseGasFee()
	return tokens.BuildFeeBreakdown(amount, feePolicy.FeeRateBasisPoints, gasFee), nil
}
