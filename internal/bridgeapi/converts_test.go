package bridgeapi

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crosshop/CrossChain-Bridger/mongodb"
	"github.com/crosshop/CrossChain-Bridger/tokens"
)

func TestConvertRoutePlanToRouteInfo(t *testing.T) {
	plan := &tokens.RoutePlan{
		Hops: []*tokens.Hop{
			{FromChainID: 10, ToChainID: 1, BridgeContract: "0x01", TokenAddress: tokens.NativeTokenSentinel},
			{FromChainID: 1, ToChainID: 42161, BridgeContract: "0x02"},
		},
		ChainPath:            []uint64{10, 1, 42161},
		EstimatedTimeMinutes: 45,
		EstimatedCost:        big.NewInt(2150000000000000),
		Slippage:             0.3,
	}
	info := ConvertRoutePlanToRouteInfo(plan)
	assert.Equal(t, []uint64{10, 1, 42161}, info.ChainPath)
	assert.Len(t, info.Hops, 2)
	assert.Equal(t, uint64(45), info.EstimatedTimeMinutes)
	assert.Equal(t, "2150000000000000", info.EstimatedCost)
	assert.Equal(t, 0.3, info.Slippage)
	assert.False(t, info.Direct)
	assert.Equal(t, tokens.NativeTokenSentinel, info.Hops[0].TokenAddress)
}

func TestConvertFeeBreakdownToFeeInfo(t *testing.T) {
	fees := &tokens.FeeBreakdown{
		BridgeFee: big.NewInt(1000),
		GasFee:    big.NewInt(2000),
		TotalFee:  big.NewInt(3000),
	}
	info := ConvertFeeBreakdownToFeeInfo(fees)
	assert.Equal(t, "1000", info.BridgeFee)
	assert.Equal(t, "2000", info.GasFee)
	assert.Equal(t, "3000", info.TotalFee)
}

func TestConvertBridgeStatusToStatusInfo(t *testing.T) {
	status := &tokens.BridgeStatus{
		TxHash:      "0xabc",
		State:       tokens.StatusFailed,
		Reason:      tokens.ReasonTxFailedOnChain,
		FromChainID: 1,
		BlockHeight: 1234,
	}
	info := ConvertBridgeStatusToStatusInfo(status)
	assert.Equal(t, "Failed", info.State)
	assert.Equal(t, tokens.ReasonTxFailedOnChain, info.Reason)
	assert.Empty(t, info.Amount)

	status.Amount = big.NewInt(42)
	assert.Equal(t, "42", ConvertBridgeStatusToStatusInfo(status).Amount)
}

func TestConvertMgoBridgeStatusToStatusInfo(t *testing.T) {
	record := &mongodb.MgoBridgeStatus{
		TxHash:      "0xabc",
		State:       uint8(tokens.StatusConfirmed),
		FromChainID: 1,
		ToChainID:   8453,
		Amount:      "1000000",
		Timestamp:   1700000000,
	}
	info := ConvertMgoBridgeStatusToStatusInfo(record)
	assert.Equal(t, "Confirmed", info.State)
	assert.Equal(t, uint64(8453), info.ToChainID)
	assert.Equal(t, "1000000", info.Amount)
}
