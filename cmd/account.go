package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonioSertic23/nextup/pkg/logger"
)

// accountCmd represents the account command
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "manage the local account",
	Long:  `manage the local account`,
}

// accountInitCmd represents the account init command
var accountInitCmd = &cobra.Command{
	Use:   "init",
	Short: "create the default watchlist for the user",
	Long:  `create the default watchlist for the user if it does not exist yet`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		m, _, err := newManager()
		if err != nil {
			log.Fatalw("failed to set up", "error", err)
		}

		list, err := m.EnsureDefaultList(ctx, userID)
		if err != nil {
			log.Fatalw("failed to create default list", "error", err)
		}

		fmt.Printf("default list %q ready for user %s\n", list.Name, userID)
	},
}

func init() {
	accountCmd.AddCommand(accountInitCmd)
	rootCmd.AddCommand(accountCmd)
}
