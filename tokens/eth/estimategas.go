package eth

import (
	"context"
	"math/big"
	"time"

	"github.com/crosshop/CrossChain-Bridger/log"
	"github.com/crosshop/CrossChain-Bridger/router"
	"github.com/crosshop/CrossChain-Bridger/tokens"
)

// EstimateGas estimate gas cost of one hop from live fee data.
// The registry is checked before any network call, an unsupported pair
// never hits the provider. The gas limit is the fixed per-hop constant
// from the fee policy, the confirmation time is the registry's static
// per-target-chain latency.
func (b *Bridge) EstimateGas(ctx context.Context, hop *tokens.Hop) (*tokens.GasEstimate, error) {
	if !router.IsSupported(hop.FromChainID) || !router.IsSupported(hop.ToChainID) {
		return nil, tokens.ErrUnknownChain
	}
	if !router.HasBridge(hop.FromChainID, hop.ToChainID) {
		return nil, tokens.ErrUnsupportedHop
	}

	feeData, err := b.getFeeData(ctx, hop.FromChainID)
	if err != nil {
		return nil, err
	}

	gasLimit := router.GetFeePolicy().HopGasLimit
	gasPrice := feeData.EffectiveGasPrice()
	totalCost := new(big.Int).Mul(new(big.Int).SetUint64(gasLimit), gasPrice)
	estimatedTime, _ := router.EstimatedTimeOf(hop.ToChainID)

	log.Debug("estimate gas success",
		"fromChainID", hop.FromChainID, "toChainID", hop.ToChainID,
		"gasLimit", gasLimit, "gasPrice", gasPrice, "totalCost", totalCost)

	return &tokens.GasEstimate{
		GasLimit:             gasLimit,
		GasPrice:             gasPrice,
		TotalCost:            totalCost,
		EstimatedTimeMinutes: estimatedTime,
	}, nil
}

func (b *Bridge) getFeeData(ctx context.Context, chainID uint64) (feeData *tokens.FeeData, err error) {
	for i := 0; i < retryRPCCount; i++ {
		feeData, err = b.provider.GetFeeData(ctx, chainID)
		if err == nil {
			return feeData, nil
		}
		if !tokens.IsRetryableError(err) {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryRPCInterval):
		}
	}
	return nil, err
}
