package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/urfave/cli/v2"

	"github.com/crosshop/CrossChain-Bridger/params"
)

// NewApp creates a cli app with sane defaults
func NewApp(identifier, gitCommit, gitDate, usage string) *cli.App {
	app := cli.NewApp()
	app.Name = identifier
	app.Version = params.VersionWithCommit(gitCommit, gitDate)
	app.Usage = usage
	return app
}

// VersionCommand version subcommand
var VersionCommand = &cli.Command{
	Action:    version,
	Name:      "version",
	Usage:     "Print version numbers",
	ArgsUsage: " ",
	Description: `
The output of this command is supposed to be machine-readable.
`,
}

func version(ctx *cli.Context) error {
	fmt.Println(filepath.Base(os.Args[0]))
	fmt.Println("Version:", params.VersionWithMeta)
	fmt.Println("Go Version:", runtime.Version())
	fmt.Println("OS:", runtime.GOOS)
	return nil
}
