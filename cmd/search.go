package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AntonioSertic23/nextup/pkg/logger"
	"github.com/AntonioSertic23/nextup/pkg/pagination"
)

var searchPage int

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "search the catalog for shows",
	Long:  `search the catalog for shows`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		m, _, err := newManager()
		if err != nil {
			log.Fatalw("failed to set up", "error", err)
		}

		resp, err := m.SearchShows(ctx, catalogToken(), strings.Join(args, " "), pagination.Params{
			Page:     searchPage,
			PageSize: 20,
		})
		if err != nil {
			log.Fatalw("search failed", "error", err)
		}

		if len(resp.Results) == 0 {
			fmt.Println("no results")
			return
		}

		for _, result := range resp.Results {
			show := result.Show
			year := ""
			if y, err := show.Year.Get(); err == nil {
				year = fmt.Sprintf(" (%d)", y)
			}
			fmt.Printf("%s%s  [%d / %s]\n", show.Title, year, show.IDs.Trakt, show.IDs.Slug)
		}

		if resp.Meta.HasMore() {
			fmt.Printf("more results: --page %d\n", resp.Meta.Page+1)
		}
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "result page")
	rootCmd.AddCommand(searchCmd)
}
