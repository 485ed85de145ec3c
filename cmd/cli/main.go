package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/health-agent/internal/models"
	"github.com/povarna/generative-ai-agents/health-agent/internal/setup"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	query := flag.String("q", "", "Query text. Reads stdin when empty")
	asJSON := flag.Bool("json", false, "Print the full outcome as JSON")
	interactive := flag.Bool("i", false, "Answer one query per stdin line until EOF")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).Level(zerolog.WarnLevel)

	_ = godotenv.Load()

	ctx := context.Background()
	cfg := setup.LoadConfig()
	deps, err := setup.Wire(ctx, cfg, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	defer deps.Close()

	if *interactive {
		scanner := bufio.NewScanner(os.Stdin)
		fmt.Fprint(os.Stderr, "> ")
		for scanner.Scan() {
			printOutcome(deps.Pipeline.ProcessQuery(ctx, scanner.Text()), *asJSON)
			fmt.Fprint(os.Stderr, "> ")
		}
		return
	}

	text := *query
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read stdin")
		}
		text = strings.TrimSpace(string(data))
	}

	printOutcome(deps.Pipeline.ProcessQuery(ctx, text), *asJSON)
}

func printOutcome(outcome models.QueryOutcome, asJSON bool) {
	if !asJSON {
		fmt.Println(outcome.Response)
		fmt.Fprintf(os.Stderr, "[intent=%s confidence=%.2f method=%s safety=%s]\n",
			outcome.Intent, outcome.Confidence, outcome.Method, outcome.Safety)
		return
	}

	out, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode outcome")
	}
	fmt.Println(string(out))
}
