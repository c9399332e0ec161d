package cmd

import (
	"fmt"
	"os"

	"stock-check/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "stock-check",
	Short: "Warehouse stock verification service",
	Long: `Stock Check verifies a physical asset count against the asset register.
Operators scan serial numbers or asset tags; each scan is checked against the
register, recorded in a session and reconciled into missing-item and
adjustment reports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console logger at debug level for readable timestamps on the CLI
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
