package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zmsync/go-mtbank-sync/cmd/setup"
	"github.com/zmsync/go-mtbank-sync/internal/common"
	"github.com/zmsync/go-mtbank-sync/internal/common/log"
	"github.com/zmsync/go-mtbank-sync/internal/mtbank"
)

// The password comes from the environment only; a flag would leak it into
// shell history and process listings.
const passwordEnvVar = "MTBANK_SYNC_PASSWORD"

var (
	runCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run one synchronization and print the result batch as JSON",
		Long:    ``,
		Example: "MTBANK_SYNC_PASSWORD=... mtbank-sync run -p 375291234567 -f 2026-08-01",
		Run:     run,
	}
	runCmdPhone  = "phone"
	runCmdFrom   = "from"
	runCmdTo     = "to"
	runCmdConfig = "config"
)

func run(ccmd *cobra.Command, args []string) {
	ctx := context.Background()

	phone, _ := ccmd.Flags().GetString(runCmdPhone)
	fromStr, _ := ccmd.Flags().GetString(runCmdFrom)
	toStr, _ := ccmd.Flags().GetString(runCmdTo)
	cfgFile, _ := ccmd.Flags().GetString(runCmdConfig)

	fromDate, err := time.Parse(common.DateFormatYYYYMMDD, fromStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --from date: %v\n", err)
		os.Exit(1)
	}

	var toDate time.Time
	if toStr != "" {
		toDate, err = time.Parse(common.DateFormatYYYYMMDD, toStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --to date: %v\n", err)
			os.Exit(1)
		}
	}

	s, err := setup.Init("sync", cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to setup app: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	creds := mtbank.Credentials{
		Phone:    phone,
		Password: os.Getenv(passwordEnvVar),
	}

	result, err := s.Service.Sync.Sync(ctx, creds, fromDate, toDate)
	if err != nil {
		log.Error(ctx, "sync failed", log.Err(err))
		if common.IsInvalidPreferences(err) {
			fmt.Fprintf(os.Stderr, "bad credentials, please re-enter them: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "temporary failure, try again later: %v\n", err)
		}
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode result: %v\n", err)
		os.Exit(1)
	}
}
