package main

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/plan-atlas/pkg/server"
	"github.com/de-tools/plan-atlas/pkg/services/config"
	"github.com/de-tools/plan-atlas/pkg/services/extract"
	"github.com/de-tools/plan-atlas/pkg/services/planner"
	"github.com/de-tools/plan-atlas/pkg/services/workout"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Plan Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the planner profile (defaults are used when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	profile := config.DefaultProfile()
	if cfgPath != "" {
		loaded, err := config.LoadProfile(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load planner profile: %w", err)
		}
		profile = loaded
		logger.Info().Str("path", cfgPath).Msg("planner profile loaded")
	}

	var extractor extract.Extractor
	if chat := extract.NewChatClient(profile.Extractor.BaseURL, profile.APIKey(), profile.Extractor.Model); chat != nil {
		extractor = extract.NewExtractor(chat)
	} else {
		logger.Warn().
			Str("env", profile.Extractor.APIKeyEnv).
			Msg("no API key found, parse and braindump endpoints are disabled")
	}

	walker := planner.NewWalker(planner.NewBuilder(workout.NewSuggester()))

	addr := net.JoinHostPort(profile.Server.Host, strconv.Itoa(profile.Server.Port))
	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		CalendarPath:    profile.Artifact.CalendarPath,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Extractor: extractor,
			Walker:    walker,
		},
	})

	return api.Start()
}
