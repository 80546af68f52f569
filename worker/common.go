// Package worker runs route execution and the background status jobs.
package worker

import (
	"time"

	"github.com/crosshop/CrossChain-Bridger/log"
)

func now() int64 {
	return time.Now().Unix()
}

func logWorker(job, msg string, ctx ...interface{}) {
	log.Info("["+job+"] "+msg, ctx...)
}

func logWorkerWarn(job, msg string, ctx ...interface{}) {
	log.Warn("["+job+"] "+msg, ctx...)
}

func logWorkerError(job, msg string, err error, ctx ...interface{}) {
	fields := []interface{}{"err", err}
	fields = append(fields, ctx...)
	log.Error("["+job+"] "+msg, fields...)
}
