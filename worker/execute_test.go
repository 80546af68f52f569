package worker

import (
	"context"
	"errors"
	"math/big"
	"strconv"
	"testing"
	"time"

	"github.com/crosshop/CrossChain-Bridger/tokens"
)

// fakeBackend scripted bridge backend recording the call sequence
type fakeBackend struct {
	submitted []uint64 // source chain of each submitted hop
	submitErr map[uint64]error
	statuses  map[string]*tokens.BridgeStatus
	statusErr error

	onStatus func(txHash string)
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		submitErr: make(map[uint64]error),
		statuses:  make(map[string]*tokens.BridgeStatus),
	}
}

func (b *fakeBackend) SubmitHop(ctx context.Context, hop *tokens.Hop, amount *big.Int, recipient string) (string, error) {
	if err := b.submitErr[hop.FromChainID]; err != nil {
		return "", err
	}
	b.submitted = append(b.submitted, hop.FromChainID)
	return txHashOf(hop.FromChainID), nil
}

func (b *fakeBackend) GetStatus(ctx context.Context, txHash string, fromChainID uint64) (*tokens.BridgeStatus, error) {
	if b.onStatus != nil {
		b.onStatus(txHash)
	}
	if b.statusErr != nil {
		return nil, b.statusErr
	}
	if status, exist := b.statuses[txHash]; exist {
		return status, nil
	}
	return &tokens.BridgeStatus{TxHash: txHash, State: tokens.StatusPending, FromChainID: fromChainID}, nil
}

func txHashOf(chainID uint64) string {
	return "0xtx" + strconv.FormatUint(chainID, 10)
}

func confirmAll(b *fakeBackend, chainIDs ...uint64) {
	for _, chainID := range chainIDs {
		b.statuses[txHashOf(chainID)] = &tokens.BridgeStatus{
			TxHash:      txHashOf(chainID),
			State:       tokens.StatusConfirmed,
			FromChainID: chainID,
		}
	}
}

func twoHopPlan() *tokens.RoutePlan {
	return &tokens.RoutePlan{
		Hops: []*tokens.Hop{
			{FromChainID: 10, ToChainID: 1, BridgeContract: "0x01"},
			{FromChainID: 1, ToChainID: 42161, BridgeContract: "0x02"},
		},
		ChainPath: []uint64{10, 1, 42161},
	}
}

func newTestExecutor(backend BridgeBackend) *Executor {
	return &Executor{backend: backend, confirmTimeout: 100 * time.Millisecond}
}

func TestExecuteRouteCompleted(t *testing.T) {
	backend := newFakeBackend()
	confirmAll(backend, 10, 1)
	executor := newTestExecutor(backend)

	receipt, err := executor.ExecuteRoute(context.Background(), twoHopPlan(), big.NewInt(100), "0x90529c2cea2c77856e777c993c6392cc60c5d5a2")
	if err != nil {
		t.Fatalf("execute route failed: %v", err)
	}
	if !receipt.Completed || receipt.Aborted {
		t.Fatalf("expected completed receipt, got %+v", receipt)
	}
	if receipt.StoppedAt != 42161 {
		t.Fatalf("expected funds at 42161, got %v", receipt.StoppedAt)
	}
	if len(receipt.Hops) != 2 {
		t.Fatalf("expected 2 hop results, got %v", len(receipt.Hops))
	}
	// hops submitted strictly in order
	if len(backend.submitted) != 2 || backend.submitted[0] != 10 || backend.submitted[1] != 1 {
		t.Fatalf("wrong submit order %v", backend.submitted)
	}
}

func TestExecuteRouteSubmitErrorAborts(t *testing.T) {
	backend := newFakeBackend()
	confirmAll(backend, 10)
	submitErr := errors.New("nonce too low")
	backend.submitErr[1] = submitErr
	executor := newTestExecutor(backend)

	receipt, err := executor.ExecuteRoute(context.Background(), twoHopPlan(), big.NewInt(100), "0x90529c2cea2c77856e777c993c6392cc60c5d5a2")
	if err != submitErr {
		t.Fatalf("expected submit error, got %v", err)
	}
	if receipt.Completed || !receipt.Aborted {
		t.Fatalf("expected aborted receipt, got %+v", receipt)
	}
	if receipt.StoppedAt != 1 {
		t.Fatalf("funds stopped on first hop target chain 1, got %v", receipt.StoppedAt)
	}
	if len(receipt.Hops) != 2 {
		t.Fatalf("expected 2 hop results incl the failed attempt, got %v", len(receipt.Hops))
	}
	if receipt.Hops[1].Err == "" {
		t.Fatal("failed hop result must carry the error")
	}
}

func TestExecuteRouteFailedHopAborts(t *testing.T) {
	backend := newFakeBackend()
	confirmAll(backend, 10)
	backend.statuses[txHashOf(1)] = &tokens.BridgeStatus{
		TxHash:      txHashOf(1),
		State:       tokens.StatusFailed,
		Reason:      tokens.ReasonTxFailedOnChain,
		FromChainID: 1,
	}
	executor := newTestExecutor(backend)

	receipt, err := executor.ExecuteRoute(context.Background(), twoHopPlan(), big.NewInt(100), "0x90529c2cea2c77856e777c993c6392cc60c5d5a2")
	if err != tokens.ErrRouteAborted {
		t.Fatalf("expected ErrRouteAborted, got %v", err)
	}
	if !receipt.Aborted || receipt.Completed {
		t.Fatalf("expected aborted receipt, got %+v", receipt)
	}
	if receipt.StoppedAt != 1 {
		t.Fatalf("funds stopped at chain 1, got %v", receipt.StoppedAt)
	}
	if receipt.Hops[1].Status == nil || receipt.Hops[1].Status.State != tokens.StatusFailed {
		t.Fatal("failed hop result must carry the failed status")
	}
}

func TestExecuteRouteConfirmTimeout(t *testing.T) {
	backend := newFakeBackend() // every status stays pending
	executor := newTestExecutor(backend)

	plan := &tokens.RoutePlan{
		Hops:      []*tokens.Hop{{FromChainID: 10, ToChainID: 1, BridgeContract: "0x01"}},
		ChainPath: []uint64{10, 1},
	}
	receipt, err := executor.ExecuteRoute(context.Background(), plan, big.NewInt(100), "0x90529c2cea2c77856e777c993c6392cc60c5d5a2")
	if err != tokens.ErrRouteAborted {
		t.Fatalf("expected ErrRouteAborted, got %v", err)
	}
	status := receipt.Hops[0].Status
	if status == nil || status.Reason != tokens.ReasonConfirmTimeout {
		t.Fatalf("expected confirmation timeout status, got %+v", status)
	}
	if !status.IsIndeterminate() {
		t.Fatal("timeout status must be indeterminate")
	}
}

func TestExecuteRouteCancelledBetweenHops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	backend := newFakeBackend()
	confirmAll(backend, 10, 1)
	backend.onStatus = func(txHash string) {
		if txHash == txHashOf(10) {
			cancel()
		}
	}
	executor := newTestExecutor(backend)

	receipt, err := executor.ExecuteRoute(ctx, twoHopPlan(), big.NewInt(100), "0x90529c2cea2c77856e777c993c6392cc60c5d5a2")
	if err != tokens.ErrRouteAborted {
		t.Fatalf("expected ErrRouteAborted, got %v", err)
	}
	if !receipt.Aborted {
		t.Fatal("expected aborted receipt")
	}
	// first hop confirmed, second never submitted
	if len(backend.submitted) != 1 {
		t.Fatalf("expected 1 submitted hop, got %v", len(backend.submitted))
	}
	if receipt.StoppedAt != 1 {
		t.Fatalf("funds stopped at chain 1, got %v", receipt.StoppedAt)
	}
}

func TestExecuteRoutePlanValidation(t *testing.T) {
	executor := newTestExecutor(newFakeBackend())
	recipient := "0x90529c2cea2c77856e777c993c6392cc60c5d5a2"

	if _, err := executor.ExecuteRoute(context.Background(), nil, big.NewInt(1), recipient); err != tokens.ErrEmptyRoutePlan {
		t.Fatalf("expected ErrEmptyRoutePlan, got %v", err)
	}
	if _, err := executor.ExecuteRoute(context.Background(), &tokens.RoutePlan{}, big.NewInt(1), recipient); err != tokens.ErrEmptyRoutePlan {
		t.Fatalf("expected ErrEmptyRoutePlan for no hops, got %v", err)
	}

	broken := &tokens.RoutePlan{Hops: []*tokens.Hop{
		{FromChainID: 10, ToChainID: 1},
		{FromChainID: 8453, ToChainID: 42161},
	}}
	if _, err := executor.ExecuteRoute(context.Background(), broken, big.NewInt(1), recipient); err != tokens.ErrBrokenRoutePlan {
		t.Fatalf("expected ErrBrokenRoutePlan, got %v", err)
	}

	valid := twoHopPlan()
	if _, err := executor.ExecuteRoute(context.Background(), valid, big.NewInt(0), recipient); err != tokens.ErrWrongAmount {
		t.Fatalf("expected ErrWrongAmount, got %v", err)
	}
}
