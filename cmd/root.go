package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AntonioSertic23/nextup/config"
	"github.com/AntonioSertic23/nextup/pkg/catalog"
	nexthttp "github.com/AntonioSertic23/nextup/pkg/http"
	"github.com/AntonioSertic23/nextup/pkg/manager"
	"github.com/AntonioSertic23/nextup/pkg/storage/sqlite"
)

var (
	cfgFile string
	userID  string
	token   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nextup",
	Short: "nextup cli",
	Long:  `track what to watch next across your shows`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "local", "user the operation runs as")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "catalog bearer token (defaults to NEXTUP_CATALOG_TOKEN)")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("NEXTUP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("catalog.url", "https://api.trakt.tv")
	viper.SetDefault("catalog.clientId", "")
	viper.SetDefault("catalog.token", "")
	viper.SetDefault("catalog.backoff", time.Second)
	viper.SetDefault("catalog.maxRetries", 3)

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("storage.filePath", "nextup.sqlite")

	viper.SetDefault("sync.showThrottle", 300*time.Millisecond)
	viper.SetDefault("sync.seasonFetchBatch", 4)
	viper.SetDefault("sync.pageSize", 100)
}

// newManager wires the catalog client and storage into the core the way the
// serve command does, for one-shot CLI use.
func newManager() (manager.Manager, config.Config, error) {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		return manager.Manager{}, cfg, err
	}

	httpClient := nexthttp.NewRateLimitedHTTPClient(
		nexthttp.WithBaseBackoff(cfg.Catalog.BaseBackoff),
		nexthttp.WithMaxRetries(cfg.Catalog.MaxRetries),
	)
	client := catalog.New(cfg.Catalog.URL, cfg.Catalog.ClientID, catalog.WithHTTPClient(httpClient))

	store, err := sqlite.New(cfg.Storage.FilePath)
	if err != nil {
		return manager.Manager{}, cfg, err
	}

	return manager.New(client, store, cfg.Sync), cfg, nil
}

// catalogToken resolves the token flag, falling back to configuration.
func catalogToken() string {
	if token != "" {
		return token
	}
	return viper.GetString("catalog.token")
}
