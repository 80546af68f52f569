package tokens

import (
	"math/big"
	"testing"
)

func TestCalcBridgeFee(t *testing.T) {
	cases := []struct {
		amount     string
		feeRateBps uint64
		expected   string
	}{
		{"10000", 10, "10"},
		{"9999", 10, "9"},   // rounds down
		{"999", 10, "0"},    // below one fee unit
		{"1000000", 30, "3000"},
		{"0", 10, "0"},
		{"340282366920938463463374607431768211456", 10, "340282366920938463463374607431768211"}, // 2^128
	}
	for _, c := range cases {
		amount, _ := new(big.Int).SetString(c.amount, 10)
		fee := CalcBridgeFee(amount, c.feeRateBps)
		if fee.String() != c.expected {
			t.Fatalf("amount %v rate %v: expected fee %v, got %v", c.amount, c.feeRateBps, c.expected, fee)
		}
	}
}

func TestCalcBridgeFeeNilAmount(t *testing.T) {
	if fee := CalcBridgeFee(nil, 10); fee.Sign() != 0 {
		t.Fatalf("expected zero fee for nil amount, got %v", fee)
	}
	if fee := CalcBridgeFee(big.NewInt(-5), 10); fee.Sign() != 0 {
		t.Fatalf("expected zero fee for negative amount, got %v", fee)
	}
}

func TestBuildFeeBreakdown(t *testing.T) {
	amount := big.NewInt(1000000)
	gasFee := big.NewInt(2000)
	fees := BuildFeeBreakdown(amount, 10, gasFee)
	if fees.BridgeFee.String() != "1000" {
		t.Fatalf("expected bridge fee 1000, got %v", fees.BridgeFee)
	}
	if fees.GasFee.String() != "2000" {
		t.Fatalf("expected gas fee 2000, got %v", fees.GasFee)
	}
	if fees.TotalFee.String() != "3000" {
		t.Fatalf("expected total fee 3000, got %v", fees.TotalFee)
	}
}

func TestBuildFeeBreakdownNilGasFee(t *testing.T) {
	fees := BuildFeeBreakdown(big.NewInt(10000), 10, nil)
	if fees.GasFee.Sign() != 0 {
		t.Fatalf("expected zero gas fee, got %v", fees.GasFee)
	}
	if fees.TotalFee.Cmp(fees.BridgeFee) != 0 {
		t.Fatalf("expected total fee equal bridge fee, got %v vs %v", fees.TotalFee, fees.BridgeFee)
	}
}

func TestCheckTransferAmount(t *testing.T) {
	if err := CheckTransferAmount(big.NewInt(1)); err != nil {
		t.Fatalf("unexpected error for positive amount: %v", err)
	}
	if err := CheckTransferAmount(big.NewInt(0)); err != ErrWrongAmount {
		t.Fatalf("expected ErrWrongAmount for zero amount, got %v", err)
	}
	if err := CheckTransferAmount(nil); err != ErrWrongAmount {
		t.Fatalf("expected ErrWrongAmount for nil amount, got %v", err)
	}
}
