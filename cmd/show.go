package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AntonioSertic23/nextup/pkg/logger"
)

var titleCaser = cases.Title(language.English)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <identifier>",
	Short: "show a series with your progress",
	Long:  `show a series with your progress; accepts a trakt/tvdb/tmdb id, imdb id or slug`,
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
			log.Fatalw("failed to get show", "error", err)
		}

		header := detail.Show.Title
		if detail.Show.Year != nil {
			header = fmt.Sprintf("%s (%d)", header, *detail.Show.Year)
		}
		if detail.Show.Status != nil {
			header = fmt.Sprintf("%s [%s]", header, titleCaser.String(*detail.Show.Status))
		}
		fmt.Println(header)
		fmt.Printf("watched %d of %d episodes\n", detail.Progress.WatchedEpisodes, detail.Progress.TotalEpisodes)
		if detail.Progress.NextEpisode != nil {
			next := detail.Progress.NextEpisode
			fmt.Printf("next up: s%02de%02d %s\n", next.SeasonNumber, next.Number, next.Title)
		}

		for _, season := range detail.Seasons {
			fmt.Printf("\nSeason %d\n", season.Number)
			for _, episode := range season.Episodes {
				marker := " "
				if episode.Watched {
					marker = "x"
				}
				fmt.Printf("  [%s] e%02d %s\n", marker, episode.Number, episode.Title)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
