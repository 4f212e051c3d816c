package cmd

import (
	"errors"

	"jobswipe_server/config"
	"jobswipe_server/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tablesCmd = &cobra.Command{
	Use:   "create-tables",
	Short: "Create the DynamoDB tables and indexes that do not exist yet",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		if cfg.Store.Driver != config.StoreDynamoDB {
			return errors.New("create-tables needs store.driver=dynamodb")
		}

		ctx := cmd.Context()
		client, err := store.InitializeDynamoDBClient(ctx, cfg.AWS.Region, cfg.DynamoDB.Endpoint)
		if err != nil {
			return err
		}

		tables := store.NewTables(cfg.DynamoDB.TablePrefix)
		svc := &store.DynamoService{Client: client, Log: log}
		if err := svc.EnsureTables(ctx, tables); err != nil {
			return err
		}
		log.Info("tables ready", zap.Strings("tables", tables.All()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}
