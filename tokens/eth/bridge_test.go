package eth

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/crosshop/CrossChain-Bridger/params"
	"github.com/crosshop/CrossChain-Bridger/router"
	"github.com/crosshop/CrossChain-Bridger/tokens"
)

const testConfigContent = `
Identifier = "crossbridge-test"

[[Chains]]
ChainID = 1
Name = "Ethereum"
LatencyMinutes = 20
BaseGasFee = "2000000000000000"
Gateways = ["http://127.0.0.1:8545"]

[[Chains]]
ChainID = 8453
Name = "Base"
LatencyMinutes = 10
BaseGasFee = "100000000000000"
Gateways = ["http://127.0.0.1:8547"]

[[Chains]]
ChainID = 42161
Name = "Arbitrum"
LatencyMinutes = 25
BaseGasFee = "150000000000000"
Gateways = ["http://127.0.0.1:8548"]

[[Bridges]]
FromChainID = 1
ToChainID = 8453
Contract = "0x1111111111111111111111111111111111111111"

[[Bridges]]
FromChainID = 1
ToChainID = 42161
Contract = "0x5555555555555555555555555555555555555555"

[Tokens.USDC]
1 = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
8453 = "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"

[FeePolicy]
FeeRateBasisPoints = 10
HubChainID = 1
HopGasLimit = 200000
`

func initTestRegistry(t *testing.T) {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configFile, []byte(testConfigContent), 0600); err != nil {
		t.Fatalf("write test config failed: %v", err)
	}
	config := params.LoadBridgeConfig(configFile, false)
	router.InitRegistry(config)
}

// fakeProvider scripted chain provider for tests
type fakeProvider struct {
	feeData    *tokens.FeeData
	feeDataErr error

	receipt    *tokens.TxReceipt
	receiptErr error

	logs    []*tokens.TxLog
	logsErr error

	receiptCalls int
}

func (p *fakeProvider) GetFeeData(ctx context.Context, chainID uint64) (*tokens.FeeData, error) {
	return p.feeData, p.feeDataErr
}

func (p *fakeProvider) GetTransactionReceipt(ctx context.Context, chainID uint64, txHash string) (*tokens.TxReceipt, error) {
	p.receiptCalls++
	return p.receipt, p.receiptErr
}

func (p *fakeProvider) GetLogs(ctx context.Context, chainID uint64, filter *tokens.LogFilter) ([]*tokens.TxLog, error) {
	return p.logs, p.logsErr
}
