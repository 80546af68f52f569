package worker

import (
	"context"
	"math/big"
	"time"

	"github.com/crosshop/CrossChain-Bridger/params"
	"github.com/crosshop/CrossChain-Bridger/tokens"
)

// polling backoff of confirmation waits
const (
	pollInitialInterval = 500 * time.Millisecond
	pollMaxInterval     = 8 * time.Second
)

// BridgeBackend the hop submit and status query capability the
// executor drives
type BridgeBackend interface {
	SubmitHop(ctx context.Context, hop *tokens.Hop, amount *big.Int, recipient string) (string, error)
	GetStatus(ctx context.Context, txHash string, fromChainID uint64) (*tokens.BridgeStatus, error)
}

// Executor executes route plans hop by hop
type Executor struct {
	backend BridgeBackend

	// confirmation wait timeout per hop
	confirmTimeout time.Duration
}

// NewExecutor new route executor
func NewExecutor(backend BridgeBackend) *Executor {
	return &Executor{
		backend:        backend,
		confirmTimeout: time.Duration(params.GetConfirmTimeout()) * time.Second,
	}
}

// ExecuteRoute submit the plan's hops strictly in sequence, waiting for
// source-chain confirmation of hop i before submitting hop i+1. A failed
// or timed out hop aborts the remaining route, the receipt then reports
// partial completion and the chain where funds stopped. Cancellation is
// honored between hops only, a submitted transaction cannot be recalled.
func (e *Executor) ExecuteRoute(ctx context.Context, plan *tokens.RoutePlan, amount *big.Int, recipient string) (*tokens.RouteReceipt, error) {
	if err := checkRoutePlan(plan); err != nil {
		return nil, err
	}
	if err := tokens.CheckTransferAmount(amount); err != nil {
		return nil, err
	}

	receipt := &tokens.RouteReceipt{
		StoppedAt: plan.Hops[0].FromChainID,
		Hops:      make([]*tokens.HopResult, 0, len(plan.Hops)),
	}

	for i, hop := range plan.Hops {
		if err := ctx.Err(); err != nil {
			receipt.Aborted = true
			logWorkerWarn("execute", "route cancelled between hops",
				"hopIndex", i, "stoppedAtChainID", receipt.StoppedAt)
			return receipt, tokens.ErrRouteAborted
		}

		result := &tokens.HopResult{Hop: hop}
		receipt.Hops = append(receipt.Hops, result)

		txHash, err := e.backend.SubmitHop(ctx, hop, amount, recipient)
		if err != nil {
			result.Err = err.Error()
			receipt.Aborted = true
			logWorkerError("execute", "submit hop failed", err,
				"hopIndex", i, "fromChainID", hop.FromChainID, "toChainID", hop.ToChainID)
			return receipt, err
		}
		result.TxHash = txHash
		logWorker("execute", "hop submitted",
			"hopIndex", i, "fromChainID", hop.FromChainID,
			"toChainID", hop.ToChainID, "txHash", txHash)

		status, err := e.waitHopConfirmation(ctx, txHash, hop.FromChainID)
		result.Status = status
		if err != nil {
			receipt.Aborted = true
			return receipt, err
		}
		if status.State != tokens.StatusConfirmed {
			receipt.Aborted = true
			logWorkerWarn("execute", "hop not confirmed, abort remaining route",
				"hopIndex", i, "txHash", txHash, "state", status.State.String(), "reason", status.Reason)
			return receipt, tokens.ErrRouteAborted
		}

		// funds landed on the hop's target chain
		receipt.StoppedAt = hop.ToChainID
	}

	receipt.Completed = true
	logWorker("execute", "route completed",
		"hops", len(plan.Hops), "targetChainID", receipt.StoppedAt)
	return receipt, nil
}

// waitHopConfirmation poll the hop status with bounded exponential
// backoff until it turns terminal or the confirmation timeout expires.
// A timeout yields a Failed status with an indeterminate timeout reason
// instead of hanging.
func (e *Executor) waitHopConfirmation(ctx context.Context, txHash string, fromChainID uint64) (*tokens.BridgeStatus, error) {
	deadline := time.Now().Add(e.confirmTimeout)
	interval := pollInitialInterval

	for {
		status, err := e.backend.GetStatus(ctx, txHash, fromChainID)
		if err != nil {
			return nil, err
		}
		if status.State.IsTerminal() {
			return status, nil
		}

		if time.Now().After(deadline) {
			logWorkerWarn("execute", "confirmation wait timed out",
				"txHash", txHash, "fromChainID", fromChainID, "timeout", e.confirmTimeout)
			return &tokens.BridgeStatus{
				TxHash:      txHash,
				State:       tokens.StatusFailed,
				Reason:      tokens.ReasonConfirmTimeout,
				FromChainID: fromChainID,
				Timestamp:   now(),
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
		if interval < pollMaxInterval {
			interval *= 2
			if interval > pollMaxInterval {
				interval = pollMaxInterval
			}
		}
	}
}

func checkRoutePlan(plan *tokens.RoutePlan) error {
	if plan == nil || len(plan.Hops) == 0 {
		return tokens.ErrEmptyRoutePlan
	}
	for i := 0; i+1 < len(plan.Hops); i++ {
		if plan.Hops[i].ToChainID != plan.Hops[i+1].FromChainID {
			return tokens.ErrBrokenRoutePlan
		}
	}
	return nil
}
