package router

import (
	"math/big"
	"reflect"
	"testing"

	"github.com/crosshop/CrossChain-Bridger/tokens"
)

func TestFindRouteDirect(t *testing.T) {
	initTestRegistry(t)

	plan, err := FindRoute(1, 8453, "USDC", big.NewInt(1000000))
	if err != nil {
		t.Fatalf("find route failed: %v", err)
	}
	if !plan.IsDirect() {
		t.Fatalf("expected direct route, got %v hops", len(plan.Hops))
	}
	if !reflect.DeepEqual(plan.ChainPath, []uint64{1, 8453}) {
		t.Fatalf("wrong chain path %v", plan.ChainPath)
	}
	if plan.EstimatedTimeMinutes != 10 {
		t.Fatalf("expected estimated time 10, got %v", plan.EstimatedTimeMinutes)
	}
	if plan.Slippage != 0.1 {
		t.Fatalf("expected direct slippage 0.1, got %v", plan.Slippage)
	}
	if plan.EstimatedCost.String() != "100000000000000" {
		t.Fatalf("expected cost of target chain base gas fee, got %v", plan.EstimatedCost)
	}
	hop := plan.Hops[0]
	if hop.BridgeContract != "0x1111111111111111111111111111111111111111" {
		t.Fatalf("wrong hop contract %v", hop.BridgeContract)
	}
	if hop.TokenAddress != "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48" {
		t.Fatalf("wrong hop token %v", hop.TokenAddress)
	}
}

func TestFindRoutePrefersHub(t *testing.T) {
	initTestRegistry(t)

	// 10 -> 42161 has two 2-hop paths, via 1 and via 8453
	plan, err := FindRoute(10, 42161, "USDC", big.NewInt(1000000))
	if err != nil {
		t.Fatalf("find route failed: %v", err)
	}
	if !reflect.DeepEqual(plan.ChainPath, []uint64{10, 1, 42161}) {
		t.Fatalf("expected path through hub chain 1, got %v", plan.ChainPath)
	}
	if plan.EstimatedTimeMinutes != 45 {
		t.Fatalf("expected estimated time 45, got %v", plan.EstimatedTimeMinutes)
	}
	if plan.Slippage != 0.3 {
		t.Fatalf("expected multi hop slippage 0.3, got %v", plan.Slippage)
	}
	expectedCost := new(big.Int)
	expectedCost.SetString("2150000000000000", 10)
	if plan.EstimatedCost.Cmp(expectedCost) != 0 {
		t.Fatalf("expected cost %v, got %v", expectedCost, plan.EstimatedCost)
	}
	if len(plan.Hops) != 2 {
		t.Fatalf("expected 2 hops, got %v", len(plan.Hops))
	}
	if plan.Hops[0].ToChainID != plan.Hops[1].FromChainID {
		t.Fatal("hops are not contiguous")
	}
}

func TestFindRouteNativeFallback(t *testing.T) {
	initTestRegistry(t)

	plan, err := FindRoute(1, 8453, "", big.NewInt(5))
	if err != nil {
		t.Fatalf("find route failed: %v", err)
	}
	if plan.Hops[0].TokenAddress != tokens.NativeTokenSentinel {
		t.Fatalf("expected native sentinel, got %v", plan.Hops[0].TokenAddress)
	}
	if !plan.Hops[0].IsNativeToken() {
		t.Fatal("hop should be native")
	}
}

func TestFindRouteErrors(t *testing.T) {
	initTestRegistry(t)

	if _, err := FindRoute(999, 1, "USDC", big.NewInt(1)); err != tokens.ErrUnknownChain {
		t.Fatalf("expected ErrUnknownChain, got %v", err)
	}
	if _, err := FindRoute(1, 999, "USDC", big.NewInt(1)); err != tokens.ErrUnknownChain {
		t.Fatalf("expected ErrUnknownChain, got %v", err)
	}
	if _, err := FindRoute(1, 8453, "USDC", big.NewInt(0)); err != tokens.ErrWrongAmount {
		t.Fatalf("expected ErrWrongAmount, got %v", err)
	}
	// 42161 has no outgoing edges
	if _, err := FindRoute(42161, 10, "USDC", big.NewInt(1)); err != tokens.ErrRouteNotFound {
		t.Fatalf("expected ErrRouteNotFound, got %v", err)
	}
}

func TestNeighborsHubFirst(t *testing.T) {
	initTestRegistry(t)

	// edges of 10 are [1, 8453], hub 1 already first
	if got := neighborsHubFirst(10, 1); !reflect.DeepEqual(got, []uint64{1, 8453}) {
		t.Fatalf("unexpected neighbor order %v", got)
	}
	// edges of 8453 are [1, 42161], with hub 42161 it moves to front
	if got := neighborsHubFirst(8453, 42161); !reflect.DeepEqual(got, []uint64{42161, 1}) {
		t.Fatalf("unexpected neighbor order %v", got)
	}
	// no hub keeps ascending order
	if got := neighborsHubFirst(8453, 0); !reflect.DeepEqual(got, []uint64{1, 42161}) {
		t.Fatalf("unexpected neighbor order %v", got)
	}
}
