package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/crosshop/CrossChain-Bridger/cmd/utils"
	"github.com/crosshop/CrossChain-Bridger/common"
	"github.com/crosshop/CrossChain-Bridger/log"
	"github.com/crosshop/CrossChain-Bridger/params"
	"github.com/crosshop/CrossChain-Bridger/router"
	"github.com/crosshop/CrossChain-Bridger/rpc/client"
	"github.com/crosshop/CrossChain-Bridger/tokens"
	"github.com/crosshop/CrossChain-Bridger/tokens/eth"
	"github.com/crosshop/CrossChain-Bridger/worker"
)

var (
	commonFlags = []cli.Flag{
		utils.ConfigFileFlag,
		utils.VerbosityFlag,
		utils.JSONFormatFlag,
		utils.ColorFormatFlag,
	}

	routeCommand = &cli.Command{
		Name:      "route",
		Usage:     "plan a bridge route between two chains",
		Action:    planRoute,
		ArgsUsage: "<fromChainID> <toChainID> <tokenSymbol> <amount>",
		Flags:     commonFlags,
	}

	feesCommand = &cli.Command{
		Name:      "fees",
		Usage:     "calc fee breakdown of a transfer",
		Action:    calcFees,
		ArgsUsage: "<fromChainID> <toChainID> <amount>",
		Flags:     commonFlags,
	}

	estimateCommand = &cli.Command{
		Name:      "estimate",
		Usage:     "estimate gas of one bridge hop",
		Action:    estimateGas,
		ArgsUsage: "<fromChainID> <toChainID> [tokenSymbol]",
		Flags:     commonFlags,
	}

	bridgeCommand = &cli.Command{
		Name:      "bridge",
		Usage:     "plan and execute a bridge route",
		Action:    executeBridge,
		ArgsUsage: "<fromChainID> <toChainID> <tokenSymbol> <amount> <recipient>",
		Flags:     commonFlags,
	}

	statusCommand = &cli.Command{
		Name:      "status",
		Usage:     "query status of a submitted bridge transaction",
		Action:    queryStatus,
		ArgsUsage: "<fromChainID> <txHash>",
		Flags:     commonFlags,
	}

	historyCommand = &cli.Command{
		Name:      "history",
		Usage:     "list bridge transactions sent by an address, newest first",
		Action:    queryHistory,
		ArgsUsage: "<fromChainID> <address>",
		Flags:     commonFlags,
	}
)

func prepare(ctx *cli.Context, minArgs int) error {
	utils.SetLogger(ctx)
	if ctx.NArg() < minArgs {
		_ = cli.ShowSubcommandHelp(ctx)
		return fmt.Errorf("miss required arguments")
	}
	configFile := utils.GetConfigFilePath(ctx)
	config := params.LoadBridgeConfig(configFile, false)
	router.InitRegistry(config)
	client.InitHTTPClient()
	return nil
}

func printResult(result interface{}) {
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal("marshal result failed", "err", err)
	}
	fmt.Println(string(jsonData))
}

func planRoute(ctx *cli.Context) error {
	if err := prepare(ctx, 4); err != nil {
		return err
	}
	fromChainID, err := common.GetUint64FromStr(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	toChainID, err := common.GetUint64FromStr(ctx.Args().Get(1))
	if err != nil {
		return err
	}
	tokenSymbol := ctx.Args().Get(2)
	amount, err := common.GetBigIntFromStr(ctx.Args().Get(3))
	if err != nil {
		return err
	}
	plan, err := router.FindRoute(fromChainID, toChainID, tokenSymbol, amount)
	if err != nil {
		return err
	}
	printResult(plan)
	return nil
}

func calcFees(ctx *cli.Context) error {
	if err := prepare(ctx, 3); err != nil {
		return err
	}
	fromChainID, err := common.GetUint64FromStr(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	toChainID, err := common.GetUint64FromStr(ctx.Args().Get(1))
	if err != nil {
		return err
	}
	amount, err := common.GetBigIntFromStr(ctx.Args().Get(2))
	if err != nil {
		return err
	}
	fees, err := router.CalculateFees(amount, fromChainID, toChainID)
	if err != nil {
		return err
	}
	printResult(fees)
	return nil
}

func estimateGas(ctx *cli.Context) error {
	if err := prepare(ctx, 2); err != nil {
		return err
	}
	fromChainID, err := common.GetUint64FromStr(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	toChainID, err := common.GetUint64FromStr(ctx.Args().Get(1))
	if err != nil {
		return err
	}
	tokenSymbol := ctx.Args().Get(2)
	hop, err := buildSingleHop(fromChainID, toChainID, tokenSymbol)
	if err != nil {
		return err
	}
	bridge := newBridgeBackend(false)
	estimate, err := bridge.EstimateGas(context.Background(), hop)
	if err != nil {
		return err
	}
	printResult(estimate)
	return nil
}

func executeBridge(ctx *cli.Context) error {
	if err := prepare(ctx, 5); err != nil {
		return err
	}
	fromChainID, err := common.GetUint64FromStr(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	toChainID, err := common.GetUint64FromStr(ctx.Args().Get(1))
	if err != nil {
		return err
	}
	tokenSymbol := ctx.Args().Get(2)
	amount, err := common.GetBigIntFromStr(ctx.Args().Get(3))
	if err != nil {
		return err
	}
	recipient := ctx.Args().Get(4)
	if !eth.IsValidAddress(recipient) {
		return fmt.Errorf("invalid recipient address %v", recipient)
	}

	plan, err := router.FindRoute(fromChainID, toChainID, tokenSymbol, amount)
	if err != nil {
		return err
	}
	log.Info("route planned", "path", plan.ChainPath,
		"estimatedTime", plan.EstimatedTimeMinutes, "slippage", plan.Slippage)

	bridge := newBridgeBackend(true)
	executor := worker.NewExecutor(bridge)
	receipt, err := executor.ExecuteRoute(context.Background(), plan, amount, recipient)
	if receipt != nil {
		printResult(receipt)
	}
	return err
}

func queryStatus(ctx *cli.Context) error {
	if err := prepare(ctx, 2); err != nil {
		return err
	}
	fromChainID, err := common.GetUint64FromStr(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	txHash := ctx.Args().Get(1)
	bridge := newBridgeBackend(false)
	status, err := bridge.GetStatus(context.Background(), txHash, fromChainID)
	if err != nil {
		return err
	}
	printResult(status)
	return nil
}

func queryHistory(ctx *cli.Context) error {
	if err := prepare(ctx, 2); err != nil {
		return err
	}
	fromChainID, err := common.GetUint64FromStr(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	address := ctx.Args().Get(1)
	if !eth.IsValidAddress(address) {
		return fmt.Errorf("invalid address %v", address)
	}
	bridge := newBridgeBackend(false)
	statuses, err := bridge.GetHistory(context.Background(), address, fromChainID, 0)
	if err != nil {
		return err
	}
	printResult(statuses)
	return nil
}

func buildSingleHop(fromChainID, toChainID uint64, tokenSymbol string) (*tokens.Hop, error) {
	contract, ok := router.BridgeContract(fromChainID, toChainID)
	if !ok {
		return nil, tokens.ErrUnsupportedHop
	}
	hop := &tokens.Hop{
		FromChainID:    fromChainID,
		ToChainID:      toChainID,
		BridgeContract: contract,
	}
	if tokenAddr, exist := router.TokenAddress(tokenSymbol, fromChainID); exist {
		hop.TokenAddress = tokenAddr
	}
	return hop, nil
}
