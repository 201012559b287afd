package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/tempo/internal/cli"
	"github.com/alexanderramin/tempo/internal/keyring"
	"github.com/alexanderramin/tempo/internal/llm"
	"github.com/alexanderramin/tempo/internal/logger"
	"github.com/alexanderramin/tempo/internal/planner"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := logger.Init(logger.LoadConfig()); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	keys := keyring.NewOSStore()

	// Environment keys win over the keyring.
	llmCfg := llm.LoadConfig()
	if llmCfg.NeedsAPIKey() && llmCfg.APIKey == "" {
		llmCfg.APIKey = keyring.Lookup(keys, string(llmCfg.Provider))
	}

	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(logger.Logger)
	}

	// A missing key must not block "tempo key set", so client errors are
	// deferred to the first generation call.
	var svc planner.Service
	client, err := llm.NewClient(ctx, llmCfg, observer)
	if err != nil {
		logger.Warn("llm client unavailable", "provider", llmCfg.Provider, "err", err)
		svc = planner.Unavailable(err)
	} else {
		svc = planner.NewService(client, planner.LoadConfig().Options()...)
	}

	app := &cli.App{
		Planner:  svc,
		Keys:     keys,
		Provider: string(llmCfg.Provider),
	}

	// Detect interactive terminal for the session entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
