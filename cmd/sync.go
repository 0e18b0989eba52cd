package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonioSertic23/nextup/pkg/logger"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "pull the full watch history from the catalog",
	Long:  `pull the full watch history from the catalog and reconcile local progress`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		m, _, err := newManager()
		if err != nil {
			log.Fatalw("failed to set up", "error", err)
		}

		result, err := m.SyncAccount(ctx, userID, catalogToken())
		if err != nil {
			log.Fatalw("sync failed", "error", err)
		}

		fmt.Printf("synced %d shows\n", result.Synced)
		for _, failure := range result.Failed {
			fmt.Printf("failed: %s: %v\n", failure.Item, failure.Err)
		}
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
