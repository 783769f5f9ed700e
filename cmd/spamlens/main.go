package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spamlens/spamlens/internal/config"
	"github.com/spamlens/spamlens/internal/factory"
	"github.com/spamlens/spamlens/internal/logging"
	"github.com/spamlens/spamlens/internal/tui"
)

var (
	verbose bool
	jsonLog bool
	baseURL string
	logFile string
)

func main() {
	// A missing .env is fine
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "spamlens",
		Short: "Client for the spam classification service",
		Long: "spamlens submits email text to the classification service, shows the " +
			"verdict with its feature indicators, and hosts the chat assistant.",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "output logs in JSON format")
	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "classification service base URL (overrides config)")

	root.AddCommand(newTUICmd(), newClassifyCmd(), newChatCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig builds the configuration, applying command-line overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if baseURL != "" {
		cfg.GetViper().Set("gateway.base_url", baseURL)
	}
	return cfg, nil
}

func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			// The TUI owns stdout, so logs go to a file
			logger, err := logging.InitFileLogger(logFile, verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			storeFactory := factory.NewStoreFactory(cfg, logger)
			sessionStore, err := storeFactory.CreateSessionStore()
			if err != nil {
				return fmt.Errorf("failed to create session store: %w", err)
			}

			clientFactory := factory.NewClientFactory(cfg, logger)
			gateway := clientFactory.CreateGateway()

			session := clientFactory.CreateSessionController(sessionStore)
			session.Restore(cmd.Context())

			classifier := clientFactory.CreateClassifierController(gateway)
			chat := clientFactory.CreateChatController(gateway)

			app := tui.NewApp(session, classifier, chat)
			_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
			return err
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "spamlens.log", "log file path while the TUI is running")
	return cmd
}

func newClassifyCmd() *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "classify [text]",
		Short: "Classify email text once and print the verdict",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			logger, err := logging.InitConsoleLogger(verbose, jsonLog)
			if err != nil {
				return err
			}
			defer logger.Sync()

			text, err := readInput(args, inputFile)
			if err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("no email content provided")
			}

			textProcessor := factory.NewTextProcessorFactory(logger).CreateTextProcessor()
			text = textProcessor.ProcessText(text, cfg.GetClassifier().MaxInputSize)

			gateway := factory.NewClientFactory(cfg, logger).CreateGateway()

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.GetGateway().Timeout)
			defer cancel()

			result, err := gateway.Classify(ctx, text)
			if err != nil {
				logger.Error("Classification failed", zap.Error(err))
				return fmt.Errorf("classification failed: %w", err)
			}

			verdict := "SAFE"
			if result.IsSpam {
				verdict = "SPAM"
			}
			fmt.Printf("%s (spam probability %s)\n", verdict, result.ProbabilityPercent())
			fmt.Printf("  urgency %.0f%%  links %.0f%%  grammar %.0f%%  formatting %.0f%%\n",
				result.Indicators.Urgency*100,
				result.Indicators.Links*100,
				result.Indicators.Grammar*100,
				result.Indicators.Formatting*100)
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "read email content from file (- for stdin)")
	return cmd
}

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>",
		Short: "Send one message to the assistant and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			logger, err := logging.InitConsoleLogger(verbose, jsonLog)
			if err != nil {
				return err
			}
			defer logger.Sync()

			gateway := factory.NewClientFactory(cfg, logger).CreateGateway()

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.GetGateway().Timeout)
			defer cancel()

			reply, err := gateway.Chat(ctx, strings.Join(args, " "))
			if err != nil {
				logger.Error("Chat request failed", zap.Error(err))
				return fmt.Errorf("chat request failed: %w", err)
			}

			fmt.Println(reply)
			return nil
		},
	}
}

// readInput resolves the email content from args, a file, or stdin
func readInput(args []string, inputFile string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if inputFile == "" || inputFile == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}
