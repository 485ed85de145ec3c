package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/health-agent/internal/database"
	"github.com/povarna/generative-ai-agents/health-agent/internal/knowledge"
	"github.com/povarna/generative-ai-agents/health-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/health-agent/internal/tfidf"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "kbctl",
		Short:         "Manage the health knowledge base",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newImportCommand(),
		newListCommand(),
		newDeleteCommand(),
		newSearchCommand(),
	)
	return root
}

func connect(ctx context.Context) (*database.DB, error) {
	db, err := database.New(ctx, setup.LoadDatabaseConfig())
	if err != nil {
		return nil, err
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <knowledge_base.json>",
		Short: "Validate a JSON knowledge base and upsert it into Postgres",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			entries, err := knowledge.NewFileSource(args[0]).Load(ctx)
			if err != nil {
				return err
			}

			db, err := connect(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.EnsureSchema(ctx); err != nil {
				return err
			}

			n, err := db.UpsertKnowledgeEntries(ctx, entries)
			if err != nil {
				return err
			}

			log.Info().Int("entries", n).Str("file", args[0]).Msg("Knowledge base imported")
			return nil
		},
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored knowledge entries in retrieval order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			db, err := connect(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			rows, err := db.ListKnowledgeEntries(ctx)
			if err != nil {
				return err
			}
			for _, row := range rows {
				fmt.Fprintln(cmd.OutOrStdout(), row.Print())
			}
			return nil
		},
	}
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <topic>",
		Short: "Delete the entry with the given topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			db, err := connect(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			deleted, err := db.DeleteByTopic(ctx, args[0])
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("no entry with topic %q", args[0])
			}

			log.Info().Str("topic", args[0]).Msg("Knowledge entry deleted")
			return nil
		},
	}
}

func newSearchCommand() *cobra.Command {
	var (
		topK   int
		file   string
		fromDB bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run a retrieval query offline and print scored matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var source knowledge.Source = knowledge.NewFileSource(file)
			if fromDB {
				db, err := connect(ctx)
				if err != nil {
					return err
				}
				defer db.Close()
				source = knowledge.NewPostgresSource(db)
			}

			logger := zerolog.Nop()
			idx, err := knowledge.BuildIndex(ctx, source, tfidf.DefaultOptions(), &logger)
			if err != nil {
				return err
			}

			matches := idx.SearchScored(args[0], topK)
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no matches")
				return nil
			}
			for _, m := range matches {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %.4f  %s\n", m.Rank, m.Score, m.Entry.Topic)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&topK, "top-k", "k", 3, "Maximum number of matches")
	cmd.Flags().StringVarP(&file, "file", "f", "data/knowledge_base.json", "Knowledge base JSON file")
	cmd.Flags().BoolVar(&fromDB, "db", false, "Search the Postgres knowledge base instead of the file")
	return cmd
}
