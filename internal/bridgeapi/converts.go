package bridgeapi

import (
	"github.com/crosshop/CrossChain-Bridger/mongodb"
	"github.com/crosshop/CrossChain-Bridger/tokens"
)

// ConvertRoutePlanToRouteInfo convert
func ConvertRoutePlanToRouteInfo(plan *tokens.RoutePlan) *RouteInfo {
	hops := make([]*HopInfo, len(plan.Hops))
	for i, hop := range plan.Hops {
		hops[i] = &HopInfo{
			FromChainID:  hop.FromChainID,
			ToChainID:    hop.ToChainID,
			TokenAddress: hop.TokenAddress,
			Contract:     hop.BridgeContract,
		}
	}
	return &RouteInfo{
		ChainPath:            plan.ChainPath,
		Hops:                 hops,
		EstimatedTimeMinutes: plan.EstimatedTimeMinutes,
		EstimatedCost:        plan.EstimatedCost.String(),
		Slippage:             plan.Slippage,
		Direct:               plan.IsDirect(),
	}
}

// ConvertFeeBreakdownToFeeInfo convert
func ConvertFeeBreakdownToFeeInfo(fees *tokens.FeeBreakdown) *FeeInfo {
	return &FeeInfo{
		BridgeFee: fees.BridgeFee.String(),
		GasFee:    fees.GasFee.String(),
		TotalFee:  fees.TotalFee.String(),
	}
}

// ConvertGasEstimateToInfo convert
func ConvertGasEstimateToInfo(estimate *tokens.GasEstimate) *GasEstimateInfo {
	return &GasEstimateInfo{
		GasLimit:             estimate.GasLimit,
		GasPrice:             estimate.GasPrice.String(),
		TotalCost:            estimate.TotalCost.String(),
		EstimatedTimeMinutes: estimate.EstimatedTimeMinutes,
	}
}

// ConvertBridgeStatusToStatusInfo convert
func ConvertBridgeStatusToStatusInfo(status *tokens.BridgeStatus) *StatusInfo {
	info := &StatusInfo{
		TxHash:      status.TxHash,
		State:       status.State.String(),
		Reason:      status.Reason,
		Sender:      status.Sender,
		FromChainID: status.FromChainID,
		ToChainID:   status.ToChainID,
		BlockHeight: status.BlockHeight,
		Timestamp:   status.Timestamp,
	}
	if status.Amount != nil {
		info.Amount = status.Amount.String()
	}
	return info
}

// ConvertMgoBridgeStatusToStatusInfo convert
func ConvertMgoBridgeStatusToStatusInfo(record *mongodb.MgoBridgeStatus) *StatusInfo {
	return ConvertBridgeStatusToStatusInfo(mongodb.ConvertToBridgeStatus(record))
}

// ConvertMgoBridgeStatusesToStatusInfos convert
func ConvertMgoBridgeStatusesToStatusInfos(records []*mongodb.MgoBridgeStatus) []*StatusInfo {
	result := make([]*StatusInfo, len(records))
	for i, record := range records {
		result[i] = ConvertMgoBridgeStatusToStatusInfo(record)
	}
	return result
}
