// Package log is a wrapper of logrus with key-value context arguments.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
)

// JSONFormat print log in json format
var JSONFormat bool

var logger = logrus.New()

// SetLogger set log level and format
func SetLogger(logLevel uint32, jsonFormat, colorFormat bool) {
	logger.SetLevel(logrus.Level(logLevel))
	JSONFormat = jsonFormat
	if jsonFormat {
		logger.Formatter = &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		}
	} else {
		logger.Formatter = &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02T15:04:05.000",
			ForceColors:     colorFormat,
			DisableColors:   !colorFormat,
		}
	}
}

// SetLogFile set log file path and rotation
func SetLogFile(logFile string, logRotation, logMaxAge uint64) {
	if logFile == "" {
		return
	}
	logFileAbs, err := filepath.Abs(logFile)
	if err != nil {
		logger.Fatalf("wrong log file path '%v': %v", logFile, err)
	}
	writer, err := rotatelogs.New(
		logFileAbs+".%Y%m%d%H",
		rotatelogs.WithLinkName(logFileAbs),
		rotatelogs.WithRotationTime(time.Duration(logRotation)*time.Hour),
		rotatelogs.WithMaxAge(time.Duration(logMaxAge)*time.Hour),
	)
	if err != nil {
		logger.Fatalf("set log file '%v' failed: %v", logFile, err)
	}
	logger.SetOutput(writer)
}

// WithFields encapsulate logrus.WithFields
func WithFields(ctx ...interface{}) *logrus.Entry {
	length := len(ctx)
	fields := make(logrus.Fields, length/2)
	for k := 0; k+1 < length; k += 2 {
		key, ok := ctx[k].(string)
		if !ok {
			key = fmt.Sprintf("%v", ctx[k])
		}
		fields[key] = ctx[k+1]
	}
	return logger.WithFields(fields)
}

// Trace trace
func Trace(msg string, ctx ...interface{}) {
	WithFields(ctx...).Trace(msg)
}

// Debug debug
func Debug(msg string, ctx ...interface{}) {
	WithFields(ctx...).Debug(msg)
}

// Info info
func Info(msg string, ctx ...interface{}) {
	WithFields(ctx...).Info(msg)
}

// Warn warn
func Warn(msg string, ctx ...interface{}) {
	WithFields(ctx...).Warn(msg)
}

// Error error
func Error(msg string, ctx ...interface{}) {
	WithFields(ctx...).Error(msg)
}

// Fatal fatal
func Fatal(msg string, ctx ...interface{}) {
	WithFields(ctx...).Fatal(msg)
}

// Tracef tracef
func Tracef(format string, args ...interface{}) {
	logger.Tracef(format, args...)
}

// Debugf debugf
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Infof infof
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Warnf warnf
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Errorf errorf
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Fatalf fatalf
func Fatalf(format string, args ...interface{}) {
	logger.Fatalf(format, args...)
}

// Printf printf to stdout regardless of level
func Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}

// Println println to stdout regardless of level
func Println(args ...interface{}) {
	fmt.Fprintln(os.Stdout, args...)
}
