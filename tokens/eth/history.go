package eth

import (
	"context"
	"sort"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/crosshop/CrossChain-Bridger/common"
	"github.com/crosshop/CrossChain-Bridger/params"
	"github.com/crosshop/CrossChain-Bridger/router"
	"github.com/crosshop/CrossChain-Bridger/tokens"
)

// GetHistory query bridge-out events sent by address on chain, newest
// first, truncated to limit. Every bridge contract with an outgoing
// edge on the chain is queried.
func (b *Bridge) GetHistory(ctx context.Context, address string, chainID uint64, limit int) ([]*tokens.BridgeStatus, error) {
	if !router.IsSupported(chainID) {
		return nil, tokens.ErrUnknownChain
	}
	if !IsValidAddress(address) {
		return nil, tokens.ErrWrongRecipient
	}
	if limit <= 0 {
		limit = params.DefaultHistoryLimit
	}

	senderTopic := ethcommon.BytesToHash(
		ethcommon.LeftPadBytes(ethcommon.HexToAddress(address).Bytes(), 32))

	var history []*tokens.BridgeStatus
	for _, toChainID := range router.EdgesFrom(chainID) {
		contract, _ := router.BridgeContract(chainID, toChainID)
		logs, err := b.provider.GetLogs(ctx, chainID, &tokens.LogFilter{
			Address: contract,
			// LogBridgeOut(token indexed, from indexed, to indexed, ...)
			Topics: []ethcommon.Hash{LogBridgeOutTopic, {}, senderTopic},
		})
		if err != nil {
			return nil, err
		}
		for _, rlog := range logs {
			if status := bridgeStatusFromLog(rlog, contract, address, chainID); status != nil {
				history = append(history, status)
			}
		}
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].BlockHeight > history[j].BlockHeight
	})
	if len(history) > limit {
		history = history[:limit]
	}
	return history, nil
}

func bridgeStatusFromLog(rlog *tokens.TxLog, contract, sender string, chainID uint64) *tokens.BridgeStatus {
	if rlog.Removed || len(rlog.Topics) != 4 || rlog.Topics[0] != LogBridgeOutTopic {
		return nil
	}
	if rlog.Address != "" && !common.IsEqualIgnoreCase(rlog.Address, contract) {
		return nil
	}
	status := &tokens.BridgeStatus{
		TxHash:      rlog.TxHash,
		State:       tokens.StatusConfirmed,
		Sender:      sender,
		FromChainID: chainID,
		BlockHeight: rlog.BlockNumber,
		Timestamp:   time.Now().Unix(),
	}
	logData := []byte(rlog.Data)
	if len(logData) == 96 {
		status.Amount = common.GetBigInt(logData, 0, 32)
		toChainID := common.GetBigInt(logData, 64, 32)
		if toChainID.IsUint64() {
			status.ToChainID = toChainID.Uint64()
		}
	}
	return status
}
