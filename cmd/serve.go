package cmd

import (
	"github.com/spf13/cobra"

	"github.com/AntonioSertic23/nextup/pkg/logger"
	"github.com/AntonioSertic23/nextup/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the tracker server",
	Long:  `start the tracker server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		m, cfg, err := newManager()
		if err != nil {
			log.Fatalw("failed to set up", "error", err)
		}

		srv := server.New(log, m)
		log.Error(srv.Serve(cfg.Server.Port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
