package store

import (
	"log"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the settings the store and backend adapters need.
type Config interface {
	BasePath() string
	BackendURL() string
	Timeout() time.Duration
}

// LoadConfig discovers configuration from a .daybook file in the working
// directory (or DAYBOOK_CONFIG_PATH), with DAYBOOK_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.daybook.db")
	viper.SetDefault("backend", "http://localhost:5000")
	viper.SetDefault("timeout", "10s")
	viper.SetConfigName(".daybook") // .yaml is implicit
	viper.SetEnvPrefix("DAYBOOK")
	viper.AutomaticEnv()

	if override := os.Getenv("DAYBOOK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{
		Path:        path,
		Backend:     viper.GetString("backend"),
		CallTimeout: viper.GetDuration("timeout"),
	}, nil
}

type fileConfig struct {
	Path        string        `json:"path"`
	Backend     string        `json:"backend"`
	CallTimeout time.Duration `json:"timeout"`
}

func (f *fileConfig) BasePath() string { return f.Path }

func (f *fileConfig) BackendURL() string { return f.Backend }

func (f *fileConfig) Timeout() time.Duration {
	if f.CallTimeout <= 0 {
		return 10 * time.Second
	}
	return f.CallTimeout
}
