package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var log = zerolog.New(os.Stderr).With().Timestamp().Str("component", "store").Logger()

// Config carries everything the persistence layer and its collaborators need
// from the environment.
type Config interface {
	BasePath() string
	NotifyEndpoint() string
	NotifyKey() string
}

// LoadConfig resolves configuration from a .gratitude config file and the
// GRATITUDE_* environment, in viper's usual precedence order.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.gratitude.db")
	viper.SetConfigName(".gratitude") // .yaml is implicit
	viper.SetEnvPrefix("GRATITUDE")
	viper.AutomaticEnv()

	if override := os.Getenv("GRATITUDE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("$HOME")
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:     path,
		Endpoint: viper.GetString("notify.endpoint"),
		Key:      viper.GetString("notify.key"),
	}, nil
}

type fileConfig struct {
	Path     string `json:"path"`
	Endpoint string `json:"notifyEndpoint"`
	Key      string `json:"notifyKey"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) NotifyEndpoint() string {
	return f.Endpoint
}

func (f *fileConfig) NotifyKey() string {
	return f.Key
}
