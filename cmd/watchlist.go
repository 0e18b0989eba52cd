package cmd

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/AntonioSertic23/nextup/pkg/logger"
)

var (
	watchlistSort  string
	watchlistOrder string
)

// watchlistCmd represents the watchlist command
var watchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "list the shows you are tracking",
	Long:  `list the shows you are tracking`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		m, _, err := newManager()
		if err != nil {
			log.Fatalw("failed to set up", "error", err)
		}

		entries, err := m.GetWatchlist(ctx, userID, watchlistSort, watchlistOrder)
		if err != nil {
			log.Fatalw("failed to list watchlist", "error", err)
		}

		if len(entries) == 0 {
			fmt.Println("watchlist is empty")
			return
		}

		for _, entry := range entries {
			status := fmt.Sprintf("%d/%d", entry.WatchedEpisodes, entry.TotalEpisodes)
			if entry.IsCompleted {
				status = "done"
			}

			lastWatched := "never watched"
			if entry.Show.LastWatchedAt != nil {
				lastWatched = "watched " + humanize.Time(*entry.Show.LastWatchedAt)
			}

			fmt.Printf("%-40s %8s  %s\n", entry.Show.Title, status, lastWatched)
		}
	},
}

// watchlistAddCmd represents the watchlist add command
var watchlistAddCmd = &cobra.Command{
	Use:   "add <show>",
	Short: "add a show to the watchlist",
	Long:  `add a show to the watchlist by trakt id, slug, imdb or tvdb id`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		m, _, err := newManager()
		if err != nil {
			log.Fatalw("failed to set up", "error", err)
		}

		detail, err := m.GetShowDetail(ctx, userID, args[0])
		if err != nil {
			log.Fatalw("failed to resolve show", "show", args[0], "error", err)
		}

		row, err := m.AddShow(ctx, userID, detail.Show.ID)
		if err != nil {
			log.Fatalw("failed to add show", "show", detail.Show.Title, "error", err)
		}

		fmt.Printf("added %s (%d/%d watched)\n", detail.Show.Title, row.WatchedEpisodes, row.TotalEpisodes)
	},
}

// watchlistRemoveCmd represents the watchlist remove command
var watchlistRemoveCmd = &cobra.Command{
	Use:   "remove <show>",
	Short: "remove a show from the watchlist",
	Long:  `remove a show from the watchlist, keeping its watch history`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		m, _, err := newManager()
		if err != nil {
			log.Fatalw("failed to set up", "error", err)
		}

		detail, err := m.GetShowDetail(ctx, userID, args[0])
		if err != nil {
			log.Fatalw("failed to resolve show", "show", args[0], "error", err)
		}

		if err := m.RemoveShow(ctx, userID, detail.Show.ID); err != nil {
			log.Fatalw("failed to remove show", "show", detail.Show.Title, "error", err)
		}

		fmt.Printf("removed %s\n", detail.Show.Title)
	},
}

func init() {
	watchlistCmd.Flags().StringVar(&watchlistSort, "sort", "added", "sort by added, title, last_watched or progress")
	watchlistCmd.Flags().StringVar(&watchlistOrder, "order", "desc", "asc or desc")
	watchlistCmd.AddCommand(watchlistAddCmd)
	watchlistCmd.AddCommand(watchlistRemoveCmd)
	rootCmd.AddCommand(watchlistCmd)
}
