package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Derive matches missing for positive interactions",
	Long: `reconcile scans every positive interaction and creates the match it should
have produced. Gaps appear when the process stops between the two writes or when
the candidate had no profile at swipe time.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dryRun, err := cmd.Flags().GetBool("dry-run")
		if err != nil {
			return err
		}

		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx := cmd.Context()
		st, err := openStore(ctx, cfg, log)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer func() {
			if err := st.Close(); err != nil {
				log.Warn("closing store", zap.Error(err))
			}
		}()

		_, reconcile, err := buildServices(ctx, cfg, st, log)
		if err != nil {
			return err
		}

		report, err := reconcile.Run(ctx, dryRun)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func init() {
	rootCmd.AddCommand(reconcileCmd)

	reconcileCmd.Flags().Bool("dry-run", false, "report missing matches without creating them")
}
