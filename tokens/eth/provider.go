package eth

import (
	"context"
	"errors"
	"math/big"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/crosshop/CrossChain-Bridger/log"
	"github.com/crosshop/CrossChain-Bridger/router"
	"github.com/crosshop/CrossChain-Bridger/rpc/client"
	"github.com/crosshop/CrossChain-Bridger/tokens"
)

// ensure Provider impl tokens.ChainProvider
var _ tokens.ChainProvider = (*Provider)(nil)

// Provider queries chain data through the registry's gateway urls
type Provider struct{}

// NewProvider new json-rpc chain data provider
func NewProvider() *Provider {
	client.InitHTTPClient()
	return &Provider{}
}

// isNullResult a null json-rpc result wrapped by WrapProviderError
func isNullResult(err error) bool {
	return errors.Is(err, client.ErrNullResult) ||
		strings.Contains(err.Error(), client.ErrNullResult.Error())
}

// rpcCall call rpc method with gateway failover
func (p *Provider) rpcCall(ctx context.Context, chainID uint64, result interface{}, method string, params ...interface{}) error {
	chain := router.GetChainConfig(chainID)
	if chain == nil {
		return tokens.ErrUnknownChain
	}
	var err error
	for _, url := range chain.Gateways {
		err = client.RPCPostWithContext(ctx, result, url, method, params...)
		if err == nil {
			return nil
		}
	}
	return tokens.WrapProviderError(err, method, params...)
}

// GetFeeData get live fee data. EIP-1559 fields are best-effort, chains
// without eth_maxPriorityFeePerGas still return the legacy gas price.
func (p *Provider) GetFeeData(ctx context.Context, chainID uint64) (*tokens.FeeData, error) {
	var gasPrice hexutil.Big
	if err := p.rpcCall(ctx, chainID, &gasPrice, "eth_gasPrice"); err != nil {
		return nil, err
	}
	feeData := &tokens.FeeData{GasPrice: gasPrice.ToInt()}

	var tipCap hexutil.Big
	if err := p.rpcCall(ctx, chainID, &tipCap, "eth_maxPriorityFeePerGas"); err == nil {
		feeData.MaxPriorityFeePerGas = tipCap.ToInt()
		feeData.MaxFeePerGas = new(big.Int).Add(gasPrice.ToInt(), tipCap.ToInt())
	}

	if floor := router.GetChainConfig(chainID).GetGasPriceFloor(); floor != nil {
		if feeData.GasPrice.Cmp(floor) < 0 {
			feeData.GasPrice = floor
		}
		if feeData.MaxFeePerGas != nil && feeData.MaxFeePerGas.Cmp(floor) < 0 {
			feeData.MaxFeePerGas = floor
		}
	}
	return feeData, nil
}

// rpcReceipt wire format of eth_getTransactionReceipt
type rpcReceipt struct {
	TxHash      ethcommon.Hash  `json:"transactionHash"`
	Status      *hexutil.Uint64 `json:"status"`
	From        string          `json:"from"`
	To          *string         `json:"to"`
	BlockNumber *hexutil.Big    `json:"blockNumber"`
	Logs        []*rpcLog       `json:"logs"`
}

type rpcLog struct {
	Address     ethcommon.Address `json:"address"`
	Topics      []ethcommon.Hash  `json:"topics"`
	Data        hexutil.Bytes     `json:"data"`
	Removed     bool              `json:"removed"`
	TxHash      ethcommon.Hash    `json:"transactionHash"`
	BlockNumber *hexutil.Big      `json:"blockNumber"`
}

func (l *rpcLog) toTxLog() *tokens.TxLog {
	txLog := &tokens.TxLog{
		Address: strings.ToLower(l.Address.Hex()),
		Topics:  l.Topics,
		Data:    l.Data,
		Removed: l.Removed,
		TxHash:  l.TxHash.Hex(),
	}
	if l.BlockNumber != nil {
		txLog.BlockNumber = l.BlockNumber.ToInt().Uint64()
	}
	return txLog
}

// GetTransactionReceipt get receipt, nil result without error means the
// transaction is not mined yet
func (p *Provider) GetTransactionReceipt(ctx context.Context, chainID uint64, txHash string) (*tokens.TxReceipt, error) {
	var receipt *rpcReceipt
	err := p.rpcCall(ctx, chainID, &receipt, "eth_getTransactionReceipt", txHash)
	if err != nil {
		if isNullResult(err) {
			return nil, nil
		}
		return nil, err
	}
	if receipt == nil || receipt.BlockNumber == nil {
		return nil, nil
	}
	status := uint64(1)
	if receipt.Status != nil {
		status = uint64(*receipt.Status)
	}
	result := &tokens.TxReceipt{
		TxHash:      receipt.TxHash.Hex(),
		Status:      status,
		From:        receipt.From,
		BlockNumber: receipt.BlockNumber.ToInt().Uint64(),
		Logs:        make([]*tokens.TxLog, 0, len(receipt.Logs)),
	}
	if receipt.To != nil {
		result.To = *receipt.To
	}
	for _, rlog := range receipt.Logs {
		result.Logs = append(result.Logs, rlog.toTxLog())
	}
	return result, nil
}

// GetLogs get event logs of filter
func (p *Provider) GetLogs(ctx context.Context, chainID uint64, filter *tokens.LogFilter) ([]*tokens.TxLog, error) {
	arg := map[string]interface{}{
		"fromBlock": "earliest",
		"toBlock":   "latest",
	}
	if filter.Address != "" {
		arg["address"] = filter.Address
	}
	if len(filter.Topics) > 0 {
		topics := make([]interface{}, len(filter.Topics))
		for i, topic := range filter.Topics {
			if topic == (ethcommon.Hash{}) {
				topics[i] = nil
			} else {
				topics[i] = topic
			}
		}
		arg["topics"] = topics
	}
	if filter.FromBlock != nil {
		arg["fromBlock"] = hexutil.EncodeBig(filter.FromBlock)
	}
	if filter.ToBlock != nil {
		arg["toBlock"] = hexutil.EncodeBig(filter.ToBlock)
	}

	var rlogs []*rpcLog
	err := p.rpcCall(ctx, chainID, &rlogs, "eth_getLogs", arg)
	if err != nil {
		if isNullResult(err) {
			return nil, nil
		}
		return nil, err
	}
	logs := make([]*tokens.TxLog, 0, len(rlogs))
	for _, rlog := range rlogs {
		logs = append(logs, rlog.toTxLog())
	}
	return logs, nil
}

// GetNonce get pending account nonce
func (p *Provider) GetNonce(ctx context.Context, chainID uint64, address string) (uint64, error) {
	var nonce hexutil.Uint64
	err := p.rpcCall(ctx, chainID, &nonce, "eth_getTransactionCount", address, "pending")
	if err != nil {
		return 0, err
	}
	return uint64(nonce), nil
}

// SendRawTransaction broadcast signed raw tx
func (p *Provider) SendRawTransaction(ctx context.Context, chainID uint64, rawTx []byte) (string, error) {
	var txHash ethcommon.Hash
	err := p.rpcCall(ctx, chainID, &txHash, "eth_sendRawTransaction", hexutil.Encode(rawTx))
	if err != nil {
		return "", err
	}
	log.Info("send raw transaction success", "chainID", chainID, "txHash", txHash.Hex())
	return txHash.Hex(), nil
}
