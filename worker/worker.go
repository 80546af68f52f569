package worker

import (
	"time"

	"github.com/crosshop/CrossChain-Bridger/mongodb"
	"github.com/crosshop/CrossChain-Bridger/rpc/client"
	"github.com/crosshop/CrossChain-Bridger/tokens/eth"
)

const interval = 10 * time.Millisecond

// StartBridgeWork start bridge background jobs
func StartBridgeWork(isServer bool) {
	logWorker("worker", "start bridge worker")

	client.InitHTTPClient()

	if !isServer {
		logWorker("worker", "client mode has no background jobs, use the sub commands")
		return
	}

	if !mongodb.HasClient() {
		logWorker("worker", "no status store configured, skip status poll job")
		return
	}

	provider := eth.NewProvider()
	bridge := eth.NewBridge(provider, nil)

	go StartStatusPollJob(bridge)
	time.Sleep(interval)
}
