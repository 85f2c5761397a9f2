// Command ask answers one weather question from the command line using the
// same wiring as the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"weatheragent.app/internal/app"
	"weatheragent.app/internal/core/conversation"
	"weatheragent.app/pkg/logger"
)

func main() {
	session := flag.String("session", "", "session id to continue")
	asJSON := flag.Bool("json", false, "print the full result as JSON")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ask [-session id] [-json] <question>")
		flag.PrintDefaults()
	}
	flag.Parse()

	question := strings.Join(flag.Args(), " ")
	if strings.TrimSpace(question) == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found or error loading it")
	}
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	logger.Setup(level)

	application, err := app.NewApplication()
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	result, err := application.ConversationUseCase().Ask(ctx, conversation.AskRequest{
		Question:  question,
		SessionID: *session,
	})
	stop()

	if shutdownErr := application.Shutdown(context.Background()); shutdownErr != nil {
		slog.Warn("Error during shutdown", "error", shutdownErr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if *asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		_ = encoder.Encode(result)
		return
	}

	fmt.Println(result.Answer)
	fmt.Fprintf(os.Stderr, "session=%s outcome=%s turns=%d\n", result.SessionID, result.Outcome, result.Turns)
}
