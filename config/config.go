package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Catalog Catalog `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
	Sync    Sync    `json:"sync" yaml:"sync" mapstructure:"sync"`
}

// Catalog configures the upstream catalog API client
type Catalog struct {
	URL         string        `json:"url" yaml:"url" mapstructure:"url"`
	ClientID    string        `json:"clientId" yaml:"clientId" mapstructure:"clientId"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

// Sync houses tunables for the full-account sync and watchlist enrichment
type Sync struct {
	// ShowThrottle is the minimum delay between shows during a full sync
	ShowThrottle time.Duration `json:"showThrottle" yaml:"showThrottle" mapstructure:"showThrottle"`
	// SeasonFetchBatch caps concurrent season fetches on collection reads
	SeasonFetchBatch int `json:"seasonFetchBatch" yaml:"seasonFetchBatch" mapstructure:"seasonFetchBatch"`
	// PageSize is the page size used against the bulk watched endpoint
	PageSize int `json:"pageSize" yaml:"pageSize" mapstructure:"pageSize"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}
