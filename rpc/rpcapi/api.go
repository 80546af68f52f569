package rpcapi

import (
	"net/http"

	"github.com/crosshop/CrossChain-Bridger/internal/bridgeapi"
	"github.com/crosshop/CrossChain-Bridger/params"
	"github.com/crosshop/CrossChain-Bridger/router"
)

// BridgeAPI rpc api handler
type BridgeAPI struct{}

// RPCNullArgs null args
type RPCNullArgs struct{}

// GetVersionInfo api
func (s *BridgeAPI) GetVersionInfo(r *http.Request, args *RPCNullArgs, result *string) error {
	version := params.VersionWithMeta
	*result = version
	return nil
}

// GetServerInfo api
func (s *BridgeAPI) GetServerInfo(r *http.Request, args *RPCNullArgs, result *bridgeapi.ServerInfo) error {
	serverInfo := bridgeapi.GetServerInfo()
	*result = *serverInfo
	return nil
}

// GetSupportedChains api
func (s *BridgeAPI) GetSupportedChains(r *http.Request, args *RPCNullArgs, result *[]*bridgeapi.ChainInfo) error {
	*result = bridgeapi.GetSupportedChains()
	return nil
}

// GetAllTokenSymbols api
func (s *BridgeAPI) GetAllTokenSymbols(r *http.Request, args *RPCNullArgs, result *[]string) error {
	*result = router.AllTokenSymbols()
	return nil
}

// RouteArgs args
type RouteArgs struct {
	FromChainID string `json:"fromChainID"`
	ToChainID   string `json:"toChainID"`
	Token       string `json:"token"`
	Amount      string `json:"amount"`
}

// GetRoute api
func (s *BridgeAPI) GetRoute(r *http.Request, args *RouteArgs, result *bridgeapi.RouteInfo) error {
	res, err := bridgeapi.GetRoute(args.FromChainID, args.ToChainID, args.Token, args.Amount)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// GetFees api
func (s *BridgeAPI) GetFees(r *http.Request, args *RouteArgs, result *bridgeapi.FeeInfo) error {
	res, err := bridgeapi.GetFees(args.FromChainID, args.ToChainID, args.Amount)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// EstimateGas api
func (s *BridgeAPI) EstimateGas(r *http.Request, args *RouteArgs, result *bridgeapi.GasEstimateInfo) error {
	res, err := bridgeapi.GetEstimateGas(args.FromChainID, args.ToChainID, args.Token)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// StatusArgs args
type StatusArgs struct {
	ChainID string `json:"chainid"`
	TxHash  string `json:"txhash"`
}

// RegisterBridgeStatus api
func (s *BridgeAPI) RegisterBridgeStatus(r *http.Request, args *StatusArgs, result *string) error {
	res, err := bridgeapi.RegisterBridgeStatus(args.ChainID, args.TxHash)
	if err == nil {
		*result = res
	}
	return err
}

// GetBridgeStatus api
func (s *BridgeAPI) GetBridgeStatus(r *http.Request, args *StatusArgs, result *bridgeapi.StatusInfo) error {
	res, err := bridgeapi.GetBridgeStatus(args.ChainID, args.TxHash)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// HistoryArgs args
type HistoryArgs struct {
	ChainID string `json:"chainid"`
	Address string `json:"address"`
	Offset  int    `json:"offset"`
	Limit   int    `json:"limit"`
}

// GetBridgeHistory api
func (s *BridgeAPI) GetBridgeHistory(r *http.Request, args *HistoryArgs, result *[]*bridgeapi.StatusInfo) error {
	res, err := bridgeapi.GetBridgeHistory(args.Address, args.ChainID, args.Offset, args.Limit)
	if err == nil && res != nil {
		*result = res
	}
	return err
}
