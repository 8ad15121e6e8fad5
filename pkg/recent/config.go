// Package recent persists committed picker selections so later sessions can
// surface them again.
package recent

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the recents database lives.
type Config interface {
	BasePath() string
}

// LoadConfig reads the optional .datepick config file and the DATEPICK_*
// environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.datepick.db")
	viper.SetConfigName(".datepick") // .yaml is implicit
	viper.SetEnvPrefix("DATEPICK")
	viper.AutomaticEnv()

	if override := os.Getenv("DATEPICK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
