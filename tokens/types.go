package tokens

import (
	"math/big"
)

// NativeTokenSentinel is the pseudo address standing for the chain's
// native asset in hop token fields.
const NativeTokenSentinel = "0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE"

// BridgeState bridge status state
type BridgeState uint8

// BridgeState constants
const (
	StatusPending BridgeState = iota
	StatusConfirmed
	StatusFailed
)

func (s BridgeState) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusConfirmed:
		return "Confirmed"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// IsTerminal is confirmed or failed
func (s BridgeState) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusFailed
}

// failure reasons to distinguish on-chain failure from unobservable state
const (
	ReasonTxFailedOnChain = "tx failed on chain"
	ReasonIndeterminate   = "status query retries exhausted"
	ReasonConfirmTimeout  = "confirmation wait timed out"
)

// TransferRequest bridge transfer request
type TransferRequest struct {
	FromChainID uint64   `json:"fromChainID"`
	ToChainID   uint64   `json:"toChainID"`
	TokenSymbol string   `json:"tokenSymbol,omitempty"`
	Amount      *big.Int `json:"amount"`
	Recipient   string   `json:"recipient"`
}

// Hop one direct bridge transfer between two chains
type Hop struct {
	FromChainID    uint64 `json:"fromChainID"`
	ToChainID      uint64 `json:"toChainID"`
	BridgeContract string `json:"bridgeContract"`
	TokenAddress   string `json:"tokenAddress"`
}

// IsNativeToken is hop moving the native asset
func (h *Hop) IsNativeToken() bool {
	return h.TokenAddress == "" || h.TokenAddress == NativeTokenSentinel
}

// RoutePlan ordered hops from source to target chain
type RoutePlan struct {
	Hops                 []*Hop   `json:"hops"`
	ChainPath            []uint64 `json:"chainPath"`
	EstimatedTimeMinutes uint64   `json:"estimatedTime"`
	EstimatedCost        *big.Int `json:"estimatedCost"`
	Slippage             float64  `json:"slippage"`
}

// IsDirect is single hop route
func (p *RoutePlan) IsDirect() bool {
	return len(p.Hops) == 1
}

// GasEstimate gas estimate of one hop, recomputed on demand
type GasEstimate struct {
	GasLimit             uint64   `json:"gasLimit"`
	GasPrice             *big.Int `json:"gasPrice"`
	TotalCost            *big.Int `json:"totalCost"`
	EstimatedTimeMinutes uint64   `json:"estimatedTime"`
}

// FeeBreakdown bridge fee breakdown, all values in transfer base units
type FeeBreakdown struct {
	BridgeFee *big.Int `json:"bridgeFee"`
	GasFee    *big.Int `json:"gasFee"`
	TotalFee  *big.Int `json:"totalFee"`
}

// BridgeStatus status snapshot of one submitted hop transaction.
// Immutable once State is terminal.
type BridgeStatus struct {
	TxHash      string      `json:"txHash"`
	State       BridgeState `json:"state"`
	Reason      string      `json:"reason,omitempty"`
	Sender      string      `json:"sender,omitempty"`
	FromChainID uint64      `json:"fromChainID"`
	ToChainID   uint64      `json:"toChainID,omitempty"`
	Amount      *big.Int    `json:"amount,omitempty"`
	BlockHeight uint64      `json:"blockHeight,omitempty"`
	Timestamp   int64       `json:"timestamp"`
}

// IsIndeterminate reported failed without an on-chain failure receipt
func (s *BridgeStatus) IsIndeterminate() bool {
	return s.State == StatusFailed && s.Reason != ReasonTxFailedOnChain
}

// HopResult result of one executed hop
type HopResult struct {
	Hop    *Hop          `json:"hop"`
	TxHash string        `json:"txHash,omitempty"`
	Status *BridgeStatus `json:"status,omitempty"`
	Err    string        `json:"error,omitempty"`
}

// RouteReceipt result of executing a route plan
type RouteReceipt struct {
	Completed bool         `json:"completed"`
	Aborted   bool         `json:"aborted,omitempty"`
	StoppedAt uint64       `json:"stoppedAtChainID,omitempty"`
	Hops      []*HopResult `json:"hops"`
}
