package eth

import (
	"context"
	"errors"
	"math/big"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/crosshop/CrossChain-Bridger/tokens"
)

func buildBridgeOutLogData(amount *big.Int, fromChainID, toChainID uint64) []byte {
	data := make([]byte, 0, 96)
	data = append(data, packBigInt(amount)...)
	data = append(data, packUint64(fromChainID)...)
	data = append(data, packUint64(toChainID)...)
	return data
}

func buildBridgeOutLog(amount *big.Int, fromChainID, toChainID uint64) *tokens.TxLog {
	return &tokens.TxLog{
		Topics: []ethcommon.Hash{
			LogBridgeOutTopic,
			ethcommon.HexToHash("0x01"),
			ethcommon.HexToHash("0x02"),
			ethcommon.HexToHash("0x03"),
		},
		Data: buildBridgeOutLogData(amount, fromChainID, toChainID),
	}
}

func TestGetStatusPending(t *testing.T) {
	initTestRegistry(t)
	provider := &fakeProvider{receipt: nil, receiptErr: nil}
	bridge := NewBridge(provider, nil)

	status, err := bridge.GetStatus(context.Background(), "0xabc", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.State != tokens.StatusPending {
		t.Fatalf("expected Pending, got %v", status.State)
	}
	if status.State.IsTerminal() {
		t.Fatal("pending must not be terminal")
	}
}

func TestGetStatusConfirmed(t *testing.T) {
	initTestRegistry(t)
	amount := big.NewInt(1000000)
	provider := &fakeProvider{
		receipt: &tokens.TxReceipt{
			TxHash:      "0xabc",
			Status:      1,
			BlockNumber: 1234,
			Logs:        []*tokens.TxLog{buildBridgeOutLog(amount, 1, 8453)},
		},
	}
	bridge := NewBridge(provider, nil)

	status, err := bridge.GetStatus(context.Background(), "0xabc", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.State != tokens.StatusConfirmed {
		t.Fatalf("expected Confirmed, got %v", status.State)
	}
	if status.BlockHeight != 1234 {
		t.Fatalf("expected block height 1234, got %v", status.BlockHeight)
	}
	if status.Amount == nil || status.Amount.Cmp(amount) != 0 {
		t.Fatalf("expected decoded amount %v, got %v", amount, status.Amount)
	}
	if status.ToChainID != 8453 {
		t.Fatalf("expected decoded target chain 8453, got %v", status.ToChainID)
	}
}

func TestGetStatusFailedOnChain(t *testing.T) {
	initTestRegistry(t)
	provider := &fakeProvider{
		receipt: &tokens.TxReceipt{TxHash: "0xabc", Status: 0, BlockNumber: 1234},
	}
	bridge := NewBridge(provider, nil)

	status, err := bridge.GetStatus(context.Background(), "0xabc", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.State != tokens.StatusFailed {
		t.Fatalf("expected Failed, got %v", status.State)
	}
	if status.Reason != tokens.ReasonTxFailedOnChain {
		t.Fatalf("expected on-chain failure reason, got %q", status.Reason)
	}
	if status.IsIndeterminate() {
		t.Fatal("on-chain failure must be determinate")
	}
}

func TestGetStatusRetriesExhausted(t *testing.T) {
	initTestRegistry(t)
	provider := &fakeProvider{
		receiptErr: tokens.WrapProviderError(errors.New("connection refused"), "eth_getTransactionReceipt"),
	}
	bridge := NewBridge(provider, nil)

	status, err := bridge.GetStatus(context.Background(), "0xabc", 1)
	if err != nil {
		t.Fatalf("exhausted retries must yield a status, got error: %v", err)
	}
	if status.State != tokens.StatusFailed {
		t.Fatalf("expected Failed, got %v", status.State)
	}
	if status.Reason != tokens.ReasonIndeterminate {
		t.Fatalf("expected indeterminate reason, got %q", status.Reason)
	}
	if !status.IsIndeterminate() {
		t.Fatal("exhausted retries must be indeterminate")
	}
	if provider.receiptCalls != retryRPCCount {
		t.Fatalf("expected %v receipt calls, got %v", retryRPCCount, provider.receiptCalls)
	}
}

func TestGetStatusUnknownChain(t *testing.T) {
	initTestRegistry(t)
	bridge := NewBridge(&fakeProvider{}, nil)

	if _, err := bridge.GetStatus(context.Background(), "0xabc", 999); err != tokens.ErrUnknownChain {
		t.Fatalf("expected ErrUnknownChain, got %v", err)
	}
}

func TestDecodeBridgeOutLogMalformed(t *testing.T) {
	initTestRegistry(t)
	badLog := buildBridgeOutLog(big.NewInt(7), 1, 8453)
	badLog.Data = badLog.Data[:64] // truncated
	provider := &fakeProvider{
		receipt: &tokens.TxReceipt{
			TxHash:      "0xabc",
			Status:      1,
			BlockNumber: 1234,
			Logs:        []*tokens.TxLog{badLog},
		},
	}
	bridge := NewBridge(provider, nil)

	status, err := bridge.GetStatus(context.Background(), "0xabc", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.State != tokens.StatusConfirmed {
		t.Fatalf("malformed log must not fail the status, got %v", status.State)
	}
	if status.Amount != nil || status.ToChainID != 0 {
		t.Fatal("malformed log must leave defaults")
	}
}
