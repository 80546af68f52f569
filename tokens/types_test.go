package tokens

import (
	"testing"
)

func TestBridgeStateString(t *testing.T) {
	cases := []struct {
		state    BridgeState
		expected string
	}{
		{StatusPending, "Pending"},
		{StatusConfirmed, "Confirmed"},
		{StatusFailed, "Failed"},
		{BridgeState(99), "Unknown"},
	}
	for _, c := range cases {
		if got := c.state.String(); got != c.expected {
			t.Fatalf("state %d: expected %v, got %v", c.state, c.expected, got)
		}
	}
}

func TestBridgeStateIsTerminal(t *testing.T) {
	if StatusPending.IsTerminal() {
		t.Fatal("pending should not be terminal")
	}
	if !StatusConfirmed.IsTerminal() {
		t.Fatal("confirmed should be terminal")
	}
	if !StatusFailed.IsTerminal() {
		t.Fatal("failed should be terminal")
	}
}

func TestHopIsNativeToken(t *testing.T) {
	cases := []struct {
		tokenAddress string
		expected     bool
	}{
		{"", true},
		{NativeTokenSentinel, true},
		{"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", false},
	}
	for _, c := range cases {
		hop := &Hop{TokenAddress: c.tokenAddress}
		if got := hop.IsNativeToken(); got != c.expected {
			t.Fatalf("token %q: expected %v, got %v", c.tokenAddress, c.expected, got)
		}
	}
}

func TestRoutePlanIsDirect(t *testing.T) {
	direct := &RoutePlan{Hops: []*Hop{{FromChainID: 1, ToChainID: 10}}}
	if !direct.IsDirect() {
		t.Fatal("single hop plan should be direct")
	}
	multi := &RoutePlan{Hops: []*Hop{
		{FromChainID: 10, ToChainID: 1},
		{FromChainID: 1, ToChainID: 42161},
	}}
	if multi.IsDirect() {
		t.Fatal("two hop plan should not be direct")
	}
}

func TestBridgeStatusIsIndeterminate(t *testing.T) {
	onChainFailure := &BridgeStatus{State: StatusFailed, Reason: ReasonTxFailedOnChain}
	if onChainFailure.IsIndeterminate() {
		t.Fatal("on-chain failure is determinate")
	}
	exhausted := &BridgeStatus{State: StatusFailed, Reason: ReasonIndeterminate}
	if !exhausted.IsIndeterminate() {
		t.Fatal("exhausted retries should be indeterminate")
	}
	timedOut := &BridgeStatus{State: StatusFailed, Reason: ReasonConfirmTimeout}
	if !timedOut.IsIndeterminate() {
		t.Fatal("confirmation timeout should be indeterminate")
	}
	confirmed := &BridgeStatus{State: StatusConfirmed}
	if confirmed.IsIndeterminate() {
		t.Fatal("confirmed status is not indeterminate")
	}
}

func TestIsRetryableError(t *testing.T) {
	wrapped := WrapProviderError(ErrTxNotFound, "eth_getTransactionReceipt", "0x00")
	if !IsRetryableError(wrapped) {
		t.Fatal("wrapped provider error should be retryable")
	}
	if IsRetryableError(ErrUnknownChain) {
		t.Fatal("unknown chain error should not be retryable")
	}
}

func TestIsTerminalError(t *testing.T) {
	for _, err := range []error{ErrUnknownChain, ErrUnsupportedHop, ErrRouteNotFound, ErrSigningUnavailable} {
		if !IsTerminalError(err) {
			t.Fatalf("expected terminal error: %v", err)
		}
	}
	if IsTerminalError(ErrProviderQuery) {
		t.Fatal("provider query error should not be terminal")
	}
}
