package utils

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/crosshop/CrossChain-Bridger/log"
)

// TopWaitGroup wait group of top level goroutines
var TopWaitGroup = new(sync.WaitGroup)

var cleanupChan = make(chan struct{})
var cleanupOnce sync.Once

// IsCleanuping is shutdown in progress
func IsCleanuping() bool {
	select {
	case <-cleanupChan:
		return true
	default:
		return false
	}
}

// CleanupChan channel closed on shutdown
func CleanupChan() <-chan struct{} {
	return cleanupChan
}

// WaitAndCleanup wait for shutdown then run the cleanup func
func WaitAndCleanup(cleanup func()) {
	<-cleanupChan
	cleanup()
}

// StartCleanupMonitor listen exit signals and trigger cleanup
func StartCleanupMonitor() {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-signalChan
		log.Info("receive exit signal", "signal", sig)
		cleanupOnce.Do(func() {
			close(cleanupChan)
		})
	}()
}
