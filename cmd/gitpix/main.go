package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bashhack/gitpix/internal/config"
	"github.com/bashhack/gitpix/internal/errors"
)

// Version information - injected at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	versionInfo := config.VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	cfg, err := LoadConfig(versionInfo, os.Args[1:])
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}

	app := NewDefaultApp(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-c
		_, _ = fmt.Fprintf(app.Stdout, "\nReceived signal %v, stopping after the current commit...\n", sig)

		// The committer checks the context before every commit.
		cancel()

		// A second signal means the user does not want to wait.
		<-c
		app.CleanupOnSignal()
		app.exit(130)
	}()

	cmd := newRootCommand(app)
	cmd.SetArgs(os.Args[1:])

	if err := cmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(app.Stderr, "❌ Error: %v\n", err)
		if errors.Is(err, errors.ErrInvalidFlag) {
			_, _ = fmt.Fprintln(app.Stderr, "Run 'gitpix --help' for usage.")
		}
		_ = app.Close()
		app.exit(1)
	}

	_ = app.Close()
}
