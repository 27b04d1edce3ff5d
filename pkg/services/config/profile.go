// Package config loads the planner profile: server address, artifact paths,
// and extraction endpoint settings.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Server struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type Artifact struct {
	CalendarPath string `mapstructure:"calendar_path"`
	ProgressPath string `mapstructure:"progress_path"`
}

type Extractor struct {
	BaseURL   string `mapstructure:"base_url"`
	Model     string `mapstructure:"model"`
	APIKeyEnv string `mapstructure:"api_key_env"`
}

type Profile struct {
	Server    Server    `mapstructure:"server"`
	Artifact  Artifact  `mapstructure:"artifact"`
	Extractor Extractor `mapstructure:"extractor"`
}

// APIKey resolves the extraction key from the configured environment
// variable. Empty means the extraction endpoints are disabled.
func (p *Profile) APIKey() string {
	return os.Getenv(p.Extractor.APIKeyEnv)
}

func LoadProfile(profilePath string) (*Profile, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("artifact.calendar_path", "financial_calendar.ics")
	v.SetDefault("artifact.progress_path", "planner_progress.json")
	v.SetDefault("extractor.model", "gpt-3.5-turbo")
	v.SetDefault("extractor.api_key_env", "OPENAI_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var profile Profile
	if err := v.Unmarshal(&profile); err != nil {
		return nil, fmt.Errorf("failed to parse planner profile: %w", err)
	}
	return &profile, nil
}

// DefaultProfile is the profile used when no config file is present.
func DefaultProfile() *Profile {
	return &Profile{
		Server:   Server{Host: "localhost", Port: 8080},
		Artifact: Artifact{CalendarPath: "financial_calendar.ics", ProgressPath: "planner_progress.json"},
		Extractor: Extractor{
			Model:     "gpt-3.5-turbo",
			APIKeyEnv: "OPENAI_API_KEY",
		},
	}
}
