// Package tokens defines the bridge data model and the interfaces of
// the external chain collaborators.
package tokens

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// FeeData live fee data of one chain
type FeeData struct {
	GasPrice             *big.Int `json:"gasPrice"`
	MaxFeePerGas         *big.Int `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas *big.Int `json:"maxPriorityFeePerGas,omitempty"`
}

// EffectiveGasPrice max fee if EIP-1559 fields are present, else gas price
func (f *FeeData) EffectiveGasPrice() *big.Int {
	if f.MaxFeePerGas != nil && f.MaxFeePerGas.Sign() > 0 {
		return f.MaxFeePerGas
	}
	return f.GasPrice
}

// TxLog one receipt event log
type TxLog struct {
	Address     string        `json:"address"`
	Topics      []common.Hash `json:"topics"`
	Data        hexutil.Bytes `json:"data"`
	Removed     bool          `json:"removed,omitempty"`
	TxHash      string        `json:"transactionHash,omitempty"`
	BlockNumber uint64        `json:"blockNumber,omitempty"`
}

// TxReceipt transaction receipt
type TxReceipt struct {
	TxHash      string   `json:"transactionHash"`
	Status      uint64   `json:"status"`
	From        string   `json:"from,omitempty"`
	To          string   `json:"to,omitempty"`
	BlockNumber uint64   `json:"blockNumber"`
	Logs        []*TxLog `json:"logs"`
}

// IsStatusOk is receipt with success status
func (r *TxReceipt) IsStatusOk() bool {
	return r.Status == 1
}

// LogFilter eth_getLogs style filter
type LogFilter struct {
	Address   string        `json:"address,omitempty"`
	Topics    []common.Hash `json:"topics,omitempty"`
	FromBlock *big.Int      `json:"fromBlock,omitempty"`
	ToBlock   *big.Int      `json:"toBlock,omitempty"`
}

// ChainProvider chain data provider.
// A nil receipt with nil error means the transaction is not yet mined.
type ChainProvider interface {
	GetFeeData(ctx context.Context, chainID uint64) (*FeeData, error)
	GetTransactionReceipt(ctx context.Context, chainID uint64, txHash string) (*TxReceipt, error)
	GetLogs(ctx context.Context, chainID uint64, filter *LogFilter) ([]*TxLog, error)
}

// Signer transaction signing and broadcasting capability
type Signer interface {
	Address() string
	SendTransaction(ctx context.Context, chainID uint64, to string, calldata []byte, value *big.Int) (txHash string, err error)
}
