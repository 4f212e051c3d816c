package cmd

import (
	"errors"
	"fmt"

	"jobswipe_server/auth"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token <userId>",
	Short: "Issue a bearer token for local development",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		if cfg.Auth.JWTSecret == "" {
			return errors.New("auth.jwt_secret is required (AUTH_JWT_SECRET)")
		}

		ttl := cfg.Auth.TokenTTL
		if cmd.Flags().Changed("ttl") {
			if ttl, err = cmd.Flags().GetDuration("ttl"); err != nil {
				return err
			}
		}

		token, err := auth.NewHMACService(cfg.Auth.JWTSecret, ttl).Issue(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().Duration("ttl", 0, "token lifetime (default auth.token_ttl)")
}
