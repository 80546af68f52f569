package tokens

import (
	"math/big"
)

// FeeRateDenominator basis points denominator
const FeeRateDenominator = 10000

// CalcBridgeFee calc protocol bridge fee of amount with fee rate in
// basis points. Integer division rounds down on purpose: the bridge is
// favored over the user by at most 1 unit in 10000. All arithmetic is
// big.Int so amounts beyond 2^128 keep full precision.
func CalcBridgeFee(amount *big.Int, feeRateBps uint64) *big.Int {
	if amount == nil || amount.Sign() <= 0 {
		return new(big.Int)
	}
	fee := new(big.Int).Mul(amount, new(big.Int).SetUint64(feeRateBps))
	return fee.Div(fee, big.NewInt(FeeRateDenominator))
}

// BuildFeeBreakdown build fee breakdown from bridge fee rate and the
// per-target-chain static gas fee
func BuildFeeBreakdown(amount *big.Int, feeRateBps uint64, gasFee *big.Int) *FeeBreakdown {
	if gasFee == nil {
		gasFee = new(big.Int)
	}
	bridgeFee := CalcBridgeFee(amount, feeRateBps)
	return &FeeBreakdown{
		BridgeFee: bridgeFee,
		GasFee:    new(big.Int).Set(gasFee),
		TotalFee:  new(big.Int).Add(bridgeFee, gasFee),
	}
}

// CheckTransferAmount amount must be a positive integer
func CheckTransferAmount(amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrWrongAmount
	}
	return nil
}
