package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/de-tools/plan-atlas/pkg/runtime/terminal"
	"github.com/de-tools/plan-atlas/pkg/services/extract"
	"github.com/de-tools/plan-atlas/pkg/services/planner"
	"github.com/de-tools/plan-atlas/pkg/services/workout"
)

func main() {
	_ = godotenv.Load()

	var extractor extract.Extractor
	if chat := extract.NewChatClient("", os.Getenv("OPENAI_API_KEY"), ""); chat != nil {
		extractor = extract.NewExtractor(chat)
	}

	cli := terminal.NewCLI(terminal.Options{
		Walker:    planner.NewWalker(planner.NewBuilder(workout.NewSuggester())),
		Extractor: extractor,
		Output:    os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
