package bridgeapi

// ServerInfo serverinfo
type ServerInfo struct {
	Identifier string `json:"identifier"`
	Version    string `json:"version"`
	HasSigner  bool   `json:"hasSigner"`
}

// ChainInfo supported chain info
type ChainInfo struct {
	ChainID        uint64   `json:"chainID"`
	Name           string   `json:"name"`
	LatencyMinutes uint64   `json:"latencyMinutes"`
	Neighbors      []uint64 `json:"neighbors"`
}

// HopInfo one leg of a planned route
type HopInfo struct {
	FromChainID  uint64 `json:"fromChainID"`
	ToChainID    uint64 `json:"toChainID"`
	TokenAddress string `json:"tokenAddress"`
	Contract     string `json:"contract"`
}

// RouteInfo planned route with aggregate estimates
type RouteInfo struct {
	ChainPath            []uint64   `json:"chainPath"`
	Hops                 []*HopInfo `json:"hops"`
	EstimatedTimeMinutes uint64     `json:"estimatedTimeMinutes"`
	EstimatedCost        string     `json:"estimatedCost"`
	Slippage             float64    `json:"slippage"`
	Direct               bool       `json:"direct"`
}

// FeeInfo fee breakdown of one transfer
type FeeInfo struct {
	BridgeFee string `json:"bridgeFee"`
	GasFee    string `json:"gasFee"`
	TotalFee  string `json:"totalFee"`
}

// GasEstimateInfo gas estimate of one hop
type GasEstimateInfo struct {
	GasLimit             uint64 `json:"gasLimit"`
	GasPrice             string `json:"gasPrice"`
	TotalCost            string `json:"totalCost"`
	EstimatedTimeMinutes uint64 `json:"estimatedTimeMinutes"`
}

// StatusInfo bridge transaction status
type StatusInfo struct {
	TxHash      string `json:"txHash"`
	State       string `json:"state"`
	Reason      string `json:"reason,omitempty"`
	Sender      string `json:"sender,omitempty"`
	FromChainID uint64 `json:"fromChainID"`
	ToChainID   uint64 `json:"toChainID,omitempty"`
	Amount      string `json:"amount,omitempty"`
	BlockHeight uint64 `json:"blockHeight,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}
