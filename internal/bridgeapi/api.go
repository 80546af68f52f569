package bridgeapi

import (
	"context"
	"time"

	rpcjson "github.com/gorilla/rpc/v2/json2"

	"github.com/crosshop/CrossChain-Bridger/common"
	"github.com/crosshop/CrossChain-Bridger/log"
	"github.com/crosshop/CrossChain-Bridger/mongodb"
	"github.com/crosshop/CrossChain-Bridger/params"
	"github.com/crosshop/CrossChain-Bridger/router"
	"github.com/crosshop/CrossChain-Bridger/tokens"
	"github.com/crosshop/CrossChain-Bridger/tokens/eth"
)

var bridgeBackend *eth.Bridge

const queryTimeout = 60 * time.Second

// InitBridgeAPI init the backend the query methods delegate to
func InitBridgeAPI(bridge *eth.Bridge) {
	bridgeBackend = bridge
}

func newRPCError(ec rpcjson.ErrorCode, message string) error {
	return &rpcjson.Error{
		Code:    ec,
		Message: message,
	}
}

func newRPCInternalError(err error) error {
	return newRPCError(-32000, "rpcError: "+err.Error())
}

// GetServerInfo get server info
func GetServerInfo() *ServerInfo {
	return &ServerInfo{
		Identifier: params.GetIdentifier(),
		Version:    params.VersionWithMeta,
		HasSigner:  bridgeBackend != nil && bridgeBackend.HasSigner(),
	}
}

// GetVersionInfo get version info
func GetVersionInfo() string {
	return params.VersionWithMeta
}

// GetSupportedChains get registered chains with adjacency
func GetSupportedChains() []*ChainInfo {
	chainIDs := router.AllChainIDs()
	result := make([]*ChainInfo, 0, len(chainIDs))
	for _, chainID := range chainIDs {
		chainCfg := router.GetChainConfig(chainID)
		if chainCfg == nil {
			continue
		}
		result = append(result, &ChainInfo{
			ChainID:        chainID,
			Name:           chainCfg.Name,
			LatencyMinutes: chainCfg.LatencyMinutes,
			Neighbors:      router.EdgesFrom(chainID),
		})
	}
	return result
}

// GetRoute plan a route between two chains
func GetRoute(fromChainIDStr, toChainIDStr, tokenSymbol, amountStr string) (*RouteInfo, error) {
	log.Info("[api] get route", "fromChainID", fromChainIDStr, "toChainID", toChainIDStr, "token", tokenSymbol)
	fromChainID, toChainID, err := parseChainIDPair(fromChainIDStr, toChainIDStr)
	if err != nil {
		return nil, err
	}
	amount, err := common.GetBigIntFromStr(amountStr)
	if err != nil {
		return nil, newRPCInternalError(err)
	}
	plan, err := router.FindRoute(fromChainID, toChainID, tokenSymbol, amount)
	if err != nil {
		return nil, newRPCInternalError(err)
	}
	return ConvertRoutePlanToRouteInfo(plan), nil
}

// GetFees calc fee breakdown of a transfer
func GetFees(fromChainIDStr, toChainIDStr, amountStr string) (*FeeInfo, error) {
	fromChainID, toChainID, err := parseChainIDPair(fromChainIDStr, toChainIDStr)
	if err != nil {
		return nil, err
	}
	amount, err := common.GetBigIntFromStr(amountStr)
	if err != nil {
		return nil, newRPCInternalError(err)
	}
	fees, err := router.CalculateFees(amount, fromChainID, toChainID)
	if err != nil {
		return nil, newRPCInternalError(err)
	}
	return ConvertFeeBreakdownToFeeInfo(fees), nil
}

// GetEstimateGas estimate gas of a single hop
func GetEstimateGas(fromChainIDStr, toChainIDStr, tokenSymbol string) (*GasEstimateInfo, error) {
	fromChainID, toChainID, err := parseChainIDPair(fromChainIDStr, toChainIDStr)
	if err != nil {
		return nil, err
	}
	contract, ok := router.BridgeContract(fromChainID, toChainID)
	if !ok {
		return nil, newRPCInternalError(tokens.ErrUnsupportedHop)
	}
	hop := &tokens.Hop{
		FromChainID:    fromChainID,
		ToChainID:      toChainID,
		BridgeContract: contract,
	}
	if tokenAddr, exist := router.TokenAddress(tokenSymbol, fromChainID); exist {
		hop.TokenAddress = tokenAddr
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	estimate, err := bridgeBackend.EstimateGas(ctx, hop)
	if err != nil {
		return nil, newRPCInternalError(err)
	}
	return ConvertGasEstimateToInfo(estimate), nil
}

// GetBridgeStatus get status of a submitted bridge transaction.
// Prefer the stored record when it is terminal, otherwise query the
// chain and refresh the store.
func GetBridgeStatus(fromChainIDStr, txHash string) (*StatusInfo, error) {
	fromChainID, err := common.GetUint64FromStr(fromChainIDStr)
	if err != nil {
		return nil, newRPCInternalError(err)
	}
	if mongodb.HasClient() {
		if record, dbErr := mongodb.FindBridgeStatus(fromChainID, txHash); dbErr == nil {
			if tokens.BridgeState(record.State).IsTerminal() {
				return ConvertMgoBridgeStatusToStatusInfo(record), nil
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	status, err := bridgeBackend.GetStatus(ctx, txHash, fromChainID)
	if err != nil {
		return nil, newRPCInternalError(err)
	}
	if status.State.IsTerminal() && mongodb.HasClient() {
		_ = mongodb.UpdateBridgeStatus(fromChainID, txHash, status)
	}
	return ConvertBridgeStatusToStatusInfo(status), nil
}

// RegisterBridgeStatus add a submitted bridge transaction to the status
// store so the poll job tracks it to a terminal state. Registering an
// already stored transaction is not an error.
func RegisterBridgeStatus(fromChainIDStr, txHash string) (string, error) {
	log.Info("[api] register bridge status", "fromChainID", fromChainIDStr, "txHash", txHash)
	if !mongodb.HasClient() {
		return "", newRPCInternalError(tokens.ErrNoStatusStore)
	}
	fromChainID, err := common.GetUint64FromStr(fromChainIDStr)
	if err != nil {
		return "", newRPCInternalError(err)
	}
	if record, dbErr := mongodb.FindBridgeStatus(fromChainID, txHash); dbErr == nil {
		if tokens.BridgeState(record.State).IsTerminal() {
			return "already registered", nil
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	status, err := bridgeBackend.GetStatus(ctx, txHash, fromChainID)
	if err != nil {
		return "", newRPCInternalError(err)
	}
	if status.IsIndeterminate() {
		return "", newRPCInternalError(tokens.ErrTxNotConfirmed)
	}
	if err = mongodb.AddBridgeStatus(mongodb.ConvertFromBridgeStatus(status)); err != nil {
		return "", newRPCInternalError(err)
	}
	if status.State.IsTerminal() {
		_ = mongodb.UpdateBridgeStatus(fromChainID, txHash, status)
	}
	return "success", nil
}

// GetBridgeHistory get bridge transactions sent by address, newest
// first. Prefers the status store, falls back to chain log queries when
// no store is configured or the store has no records for the address.
func GetBridgeHistory(address, fromChainIDStr string, offset, limit int) ([]*StatusInfo, error) {
	fromChainID, err := common.GetUint64FromStr(fromChainIDStr)
	if err != nil {
		return nil, newRPCInternalError(err)
	}
	if mongodb.HasClient() {
		records, dbErr := mongodb.FindBridgeHistory(address, fromChainID, offset, limit)
		if dbErr != nil {
			return nil, newRPCInternalError(dbErr)
		}
		if len(records) > 0 {
			return ConvertMgoBridgeStatusesToStatusInfos(records), nil
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	statuses, err := bridgeBackend.GetHistory(ctx, address, fromChainID, limit)
	if err != nil {
		return nil, newRPCInternalError(err)
	}
	result := make([]*StatusInfo, len(statuses))
	for i, status := range statuses {
		result[i] = ConvertBridgeStatusToStatusInfo(status)
	}
	return result, nil
}

func parseChainIDPair(fromChainIDStr, toChainIDStr string) (fromChainID, toChainID uint64, err error) {
	fromChainID, err = common.GetUint64FromStr(fromChainIDStr)
	if err != nil {
		return 0, 0, newRPCInternalError(err)
	}
	toChainID, err = common.GetUint64FromStr(toChainIDStr)
	if err != nil {
		return 0, 0, newRPCInternalError(err)
	}
	return fromChainID, toChainID, nil
}
