package utils

import (
	"github.com/urfave/cli/v2"

	"github.com/crosshop/CrossChain-Bridger/log"
)

var (
	// DataDirFlag --datadir flag
	DataDirFlag = &cli.StringFlag{
		Name:  "datadir",
		Usage: "Data directory (default in the execute directory)",
		Value: "",
	}
	// ConfigFileFlag -c|--config flag
	ConfigFileFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Specify config file",
	}
	// RunServerFlag --runserver flag
	RunServerFlag = &cli.BoolFlag{
		Name:  "runserver",
		Usage: "Run as server with api service and status store",
	}
	// LogFileFlag --log flag
	LogFileFlag = &cli.StringFlag{
		Name:  "log",
		Usage: "Specify log file, support rotate",
	}
	// LogRotationFlag --rotate flag
	LogRotationFlag = &cli.Uint64Flag{
		Name:  "rotate",
		Usage: "Log rotation time (unit hour)",
		Value: 24,
	}
	// LogMaxAgeFlag --maxage flag
	LogMaxAgeFlag = &cli.Uint64Flag{
		Name:  "maxage",
		Usage: "Log max age (unit hour)",
		Value: 720,
	}
	// VerbosityFlag -v|--verbosity flag
	VerbosityFlag = &cli.Uint64Flag{
		Name:    "verbosity",
		Aliases: []string{"v"},
		Usage:   "Logging verbosity: 0=panic, 1=fatal, 2=error, 3=warn, 4=info, 5=debug, 6=trace",
		Value:   4,
	}
	// JSONFormatFlag --json flag
	JSONFormatFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Output log in json format",
	}
	// ColorFormatFlag --color flag
	ColorFormatFlag = &cli.BoolFlag{
		Name:  "color",
		Usage: "Output log in color text format",
		Value: true,
	}
)

// SetLogger set log level, json format, color format, log file
func SetLogger(ctx *cli.Context) {
	logLevel := ctx.Uint64(VerbosityFlag.Name)
	jsonFormat := ctx.Bool(JSONFormatFlag.Name)
	colorFormat := ctx.Bool(ColorFormatFlag.Name)
	log.SetLogger(uint32(logLevel), jsonFormat, colorFormat)

	logFile := ctx.String(LogFileFlag.Name)
	if logFile != "" {
		logRotation := ctx.Uint64(LogRotationFlag.Name)
		logMaxAge := ctx.Uint64(LogMaxAgeFlag.Name)
		log.SetLogFile(logFile, logRotation, logMaxAge)
	}
}

// GetConfigFilePath specified by `-c|--config`
func GetConfigFilePath(ctx *cli.Context) string {
	return ctx.String(ConfigFileFlag.Name)
}

// GetDataDir specified by `--datadir`
func GetDataDir(ctx *cli.Context) string {
	return ctx.String(DataDirFlag.Name)
}
