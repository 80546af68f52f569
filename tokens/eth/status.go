package eth

import (
	"context"
	"time"

	"github.com/crosshop/CrossChain-Bridger/common"
	"github.com/crosshop/CrossChain-Bridger/log"
	"github.com/crosshop/CrossChain-Bridger/router"
	"github.com/crosshop/CrossChain-Bridger/tokens"
)

// GetStatus get the bridge status of a submitted hop transaction on its
// source chain. No receipt yet means Pending. A receipt decides the
// terminal state: success becomes Confirmed with the bridge-out log
// decoded best-effort, failure becomes Failed with an on-chain reason.
// Provider errors are retried a bounded number of times; when retries
// are exhausted the status is Failed with an indeterminate reason so
// callers can tell "chain says it failed" from "we could not find out".
func (b *Bridge) GetStatus(ctx context.Context, txHash string, fromChainID uint64) (*tokens.BridgeStatus, error) {
	if !router.IsSupported(fromChainID) {
		return nil, tokens.ErrUnknownChain
	}

	status := &tokens.BridgeStatus{
		TxHash:      txHash,
		State:       tokens.StatusPending,
		FromChainID: fromChainID,
		Timestamp:   time.Now().Unix(),
	}

	var receipt *tokens.TxReceipt
	var err error
	for i := 0; i < retryRPCCount; i++ {
		receipt, err = b.provider.GetTransactionReceipt(ctx, fromChainID, txHash)
		if err == nil {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryRPCInterval):
		}
	}
	if err != nil {
		log.Warn("get status retries exhausted",
			"chainID", fromChainID, "txHash", txHash, "err", err)
		status.State = tokens.StatusFailed
		status.Reason = tokens.ReasonIndeterminate
		return status, nil
	}

	if receipt == nil {
		// not mined yet
		return status, nil
	}

	status.Sender = receipt.From
	status.BlockHeight = receipt.BlockNumber
	if !receipt.IsStatusOk() {
		status.State = tokens.StatusFailed
		status.Reason = tokens.ReasonTxFailedOnChain
		return status, nil
	}

	status.State = tokens.StatusConfirmed
	b.decodeBridgeOutLog(status, receipt)
	return status, nil
}

// decodeBridgeOutLog recover target chain and bridged amount from the
// bridge-out event log. Best-effort enrichment, a missing or malformed
// log leaves the defaults and never fails the status.
func (b *Bridge) decodeBridgeOutLog(status *tokens.BridgeStatus, receipt *tokens.TxReceipt) {
	for _, rlog := range receipt.Logs {
		if rlog.Removed || len(rlog.Topics) != 4 || rlog.Topics[0] != LogBridgeOutTopic {
			continue
		}
		logData := []byte(rlog.Data)
		if len(logData) != 96 {
			log.Debug("bridge-out log with wrong data length",
				"txHash", status.TxHash, "length", len(logData))
			return
		}
		status.Amount = common.GetBigInt(logData, 0, 32)
		toChainID := common.GetBigInt(logData, 64, 32)
		if toChainID.IsUint64() {
			status.ToChainID = toChainID.Uint64()
		}
		return
	}
}
