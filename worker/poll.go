package worker

import (
	"context"
	"time"

	"github.com/crosshop/CrossChain-Bridger/mongodb"
	"github.com/crosshop/CrossChain-Bridger/tokens"
)

const restIntervalInPollJob = 10 * time.Second

// StatusBackend queries confirmation state of submitted transactions.
type StatusBackend interface {
	GetStatus(ctx context.Context, txHash string, fromChainID uint64) (*tokens.BridgeStatus, error)
}

// StartStatusPollJob poll stored pending records until terminal
func StartStatusPollJob(backend StatusBackend) {
	logWorker("poll", "start bridge status poll job")
	for {
		res, err := mongodb.FindPendingBridgeStatuses()
		if err != nil {
			logWorkerError("poll", "find pending bridge statuses error", err)
		}
		if len(res) > 0 {
			logWorker("poll", "find pending bridge statuses", "count", len(res))
		}
		for _, record := range res {
			err = processPendingStatus(backend, record)
			if err != nil {
				logWorkerError("poll", "process pending status error", err,
					"chainID", record.FromChainID, "txHash", record.TxHash)
			}
		}
		restInJob(restIntervalInPollJob)
	}
}

func processPendingStatus(backend StatusBackend, record *mongodb.MgoBridgeStatus) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	status, err := backend.GetStatus(ctx, record.TxHash, record.FromChainID)
	if err != nil {
		return err
	}
	if status.State == tokens.StatusPending {
		return nil
	}
	logWorker("poll", "bridge status reached terminal state",
		"chainID", record.FromChainID, "txHash", record.TxHash,
		"state", status.State.String(), "reason", status.Reason)
	return mongodb.UpdateBridgeStatus(record.FromChainID, record.TxHash, status)
}

func restInJob(duration time.Duration) {
	time.Sleep(duration)
}
