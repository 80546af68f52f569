// Command bridger is main program to start the bridge service or run
// its sub commands.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/crosshop/CrossChain-Bridger/cmd/utils"
	"github.com/crosshop/CrossChain-Bridger/common"
	"github.com/crosshop/CrossChain-Bridger/internal/bridgeapi"
	"github.com/crosshop/CrossChain-Bridger/log"
	"github.com/crosshop/CrossChain-Bridger/mongodb"
	"github.com/crosshop/CrossChain-Bridger/params"
	"github.com/crosshop/CrossChain-Bridger/router"
	"github.com/crosshop/CrossChain-Bridger/rpc/client"
	rpcserver "github.com/crosshop/CrossChain-Bridger/rpc/server"
	"github.com/crosshop/CrossChain-Bridger/tokens/eth"
	"github.com/crosshop/CrossChain-Bridger/worker"
)

var (
	clientIdentifier = "bridger"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
	// The app that holds all commands and flags.
	app = utils.NewApp(clientIdentifier, gitCommit, gitDate, "the bridger command line interface")
)

func initApp() {
	app.Action = bridger
	app.HideVersion = true // we have a command to print the version
	app.Commands = []*cli.Command{
		routeCommand,
		feesCommand,
		estimateCommand,
		bridgeCommand,
		statusCommand,
		historyCommand,
		utils.VersionCommand,
	}
	app.Flags = []cli.Flag{
		utils.DataDirFlag,
		utils.ConfigFileFlag,
		utils.RunServerFlag,
		utils.LogFileFlag,
		utils.LogRotationFlag,
		utils.LogMaxAgeFlag,
		utils.VerbosityFlag,
		utils.JSONFormatFlag,
		utils.ColorFormatFlag,
	}
}

func main() {
	_ = godotenv.Load()
	initApp()
	if err := app.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func bridger(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	if ctx.NArg() > 0 {
		return fmt.Errorf("invalid command: %q", ctx.Args().Get(0))
	}
	isServer := ctx.Bool(utils.RunServerFlag.Name)

	params.SetDataDir(utils.GetDataDir(ctx))
	configFile := utils.GetConfigFilePath(ctx)
	config := params.LoadBridgeConfig(configFile, isServer)

	router.InitRegistry(config)
	client.InitHTTPClient()

	bridge := newBridgeBackend(false)
	bridgeapi.InitBridgeAPI(bridge)

	utils.StartCleanupMonitor()

	if isServer {
		appName := common.MakeName(params.GetIdentifier(), params.VersionWithMeta)
		if params.HasMongoDB() {
			dbConfig := config.Server.MongoDB
			mongodb.MongoServerInit(
				appName,
				dbConfig.DBURL,
				dbConfig.DBName,
				dbConfig.UserName,
				dbConfig.Password,
			)
		}
		worker.StartBridgeWork(true)
		time.Sleep(100 * time.Millisecond)
		rpcserver.StartAPIServer()
	} else {
		worker.StartBridgeWork(false)
	}

	utils.TopWaitGroup.Wait()
	return nil
}

func newBridgeBackend(needSigner bool) *eth.Bridge {
	provider := eth.NewProvider()
	if !params.HasSigner() {
		if needSigner {
			log.Fatal("no signer configured")
		}
		return eth.NewBridge(provider, nil)
	}
	signerCfg := params.GetSignerConfig()
	signer, err := eth.NewKeystoreSigner(signerCfg.KeystoreFile, signerCfg.PasswordFile, provider)
	if err != nil {
		log.Fatal("load keystore signer failed", "err", err)
	}
	return eth.NewBridge(provider, signer)
}
