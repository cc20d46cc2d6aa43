package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"document-qa/internal/config"
	"document-qa/internal/helper"
	"document-qa/internal/models"
	"document-qa/internal/session"
)

const configFilePath = "./configs/config.yaml"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, relying on environment variables")
	}

	configPath := flag.String("config", configFilePath, "Path to the config file")
	filePath := flag.String("file", "", "Path to the document file (.pdf or .txt)")
	query := flag.String("query", "", "Single question to answer (omit for an interactive loop)")
	showChunks := flag.Bool("show-chunks", false, "Print the document chunks after indexing")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *filePath == "" {
		log.Fatal().Msg("Please provide a document file using the -file flag")
	}

	cfg := loadConfig(*configPath)
	sess := session.New(cfg, nil, nil)
	ctx := context.Background()

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error reading document file")
	}

	log.Info().Str("file", *filePath).Msg("Indexing document, this may take a while")
	if err := sess.Upload(ctx, *filePath, data); err != nil {
		log.Fatal().Err(err).Msg("Error indexing document")
	}

	if *showChunks {
		helper.PrettyPrint(sess.Chunks())
	}

	if *query != "" {
		askOnce(ctx, sess, *query)
		return
	}

	runLoop(ctx, sess)
}

func loadConfig(path string) *config.Config {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", path).Msg("No config file, using defaults")
			return config.Default()
		}
		log.Fatal().Err(err).Msg("Error loading config")
	}
	return cfg
}

// askOnce runs a single question through the session and renders the result.
// Validation and authentication errors end the run; anything else is shown
// and the user may ask again.
func askOnce(ctx context.Context, sess *session.Session, query string) {
	result, err := sess.Ask(ctx, query)
	if err != nil {
		if errors.Is(err, models.ErrMissingAPIKey) {
			log.Fatal().Err(err).Msg("Please configure your API key (config file or OPENAI_API_KEY)")
		}
		log.Error().Err(err).Msg("Error answering question")
		return
	}
	printResult(result)
}

func runLoop(ctx context.Context, sess *session.Session) {
	fmt.Printf("Ask a question about %s (empty line or Ctrl-D to quit)\n\n", sess.DocumentName())
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			break
		}
		askOnce(ctx, sess, query)
	}
}

func printResult(result *models.QueryResult) {
	fmt.Printf("\n%s\n", strings.TrimSpace(result.Answer.Body))

	if len(result.Answer.Citations) > 0 {
		fmt.Printf("\nCited: %s\n", strings.Join(result.Answer.Citations, ", "))
	}

	fmt.Println("\nSources:")
	for _, chunk := range result.RetrievedChunks {
		fmt.Printf("--- %s ---\n%s\n", chunk.Label, strings.TrimSpace(chunk.Text))
	}
	fmt.Println()
}
