package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mtbank-sync",
	Short: "Synchronize MTBank accounts and transactions into the canonical ledger format",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP(runCmdPhone, "p", "", "phone number the bank account is registered to")
	runCmd.MarkFlagRequired(runCmdPhone)
	runCmd.Flags().StringP(runCmdFrom, "f", "", "sync start date, YYYY-MM-DD")
	runCmd.MarkFlagRequired(runCmdFrom)
	runCmd.Flags().StringP(runCmdTo, "t", "", "sync end date, YYYY-MM-DD (defaults to now)")
	runCmd.Flags().StringP(runCmdConfig, "c", "", "config file path")
}
