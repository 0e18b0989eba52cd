package cmd

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/AntonioSertic23/nextup/pkg/logger"
	"github.com/AntonioSertic23/nextup/pkg/manager"
)

// episodeRefPattern matches references like s01e03 or S1E3.
var episodeRefPattern = regexp.MustCompile(`(?i)^s(\d+)e(\d+)$`)

// markCmd represents the mark command
var markCmd = &cobra.Command{
	Use:   "mark <show> <episode>...",
	Short: "mark episodes as watched",
	Long:  `mark episodes as watched, e.g. nextup mark breaking-bad s01e01 s01e02`,
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runEpisodesCommand(args, func(m manager.Manager, ctx context.Context, showID string, ids []string) (*manager.Progress, error) {
			return m.MarkEpisodes(ctx, userID, catalogToken(), showID, ids)
		})
	},
}

// unmarkCmd represents the unmark command
var unmarkCmd = &cobra.Command{
	Use:   "unmark <show> <episode>...",
	Short: "mark episodes as unwatched",
	Long:  `mark episodes as unwatched, e.g. nextup unmark breaking-bad s01e02`,
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runEpisodesCommand(args, func(m manager.Manager, ctx context.Context, showID string, ids []string) (*manager.Progress, error) {
			return m.UnmarkEpisodes(ctx, userID, catalogToken(), showID, ids)
		})
	},
}

func runEpisodesCommand(args []string, apply func(manager.Manager, context.Context, string, []string) (*manager.Progress, error)) {
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

	ids, err := resolveEpisodeRefs(detail, args[1:])
	if err != nil {
		log.Fatalw("failed to resolve episodes", "error", err)
	}

	progress, err := apply(m, ctx, detail.Show.ID, ids)
	if err != nil {
		log.Fatalw("failed to update progress", "error", err)
	}

	printProgress(detail.Show.Title, progress)
}

// resolveEpisodeRefs maps SxxEyy references to stored episode ids.
func resolveEpisodeRefs(detail *manager.ShowDetail, refs []string) ([]string, error) {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		match := episodeRefPattern.FindStringSubmatch(ref)
		if match == nil {
			return nil, fmt.Errorf("invalid episode reference %q, expected SxxEyy", ref)
		}
		season, _ := strconv.Atoi(match[1])
		number, _ := strconv.Atoi(match[2])

		id := ""
		for _, s := range detail.Seasons {
			if int(s.Number) != season {
				continue
			}
			for _, e := range s.Episodes {
				if int(e.Number) == number {
					id = e.ID
					break
				}
			}
		}
		if id == "" {
			return nil, fmt.Errorf("episode %s not found for %s", ref, detail.Show.Title)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func printProgress(title string, progress *manager.Progress) {
	fmt.Printf("%s: %d of %d episodes watched\n", title, progress.WatchedEpisodes, progress.TotalEpisodes)
	if progress.IsCompleted {
		fmt.Println("show complete")
		return
	}
	if progress.NextEpisode != nil {
		fmt.Printf("next up: s%02de%02d %s\n", progress.NextEpisode.SeasonNumber, progress.NextEpisode.Number, progress.NextEpisode.Title)
	}
}

func init() {
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(unmarkCmd)
}
