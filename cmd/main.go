package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		log.Fatalf("storytrails: %v", err)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "storytrails",
		Usage:   "Reading tracker API server",
		Version: fmt.Sprintf("%s (%s, %s)", buildVersion, buildCommit, buildDate),
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			tokenCommand(),
		},
		Action: serve,
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Run the HTTP API (and the gRPC health server when enabled)",
		Action: serve,
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:   "migrate",
		Usage:  "Apply pending database migrations and exit",
		Action: migrate,
	}
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Sign an access token for a user id",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "user-id",
				Aliases:  []string{"u"},
				Usage:    "User id to put in the id claim",
				Required: true,
			},
			&cli.DurationFlag{
				Name:  "ttl",
				Usage: "Token lifetime; defaults to TOKEN_TTL",
			},
		},
		Action: issueToken,
	}
}

func logAppVersion(w io.Writer) {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Fprintf(w, tmpl, buildVersion, buildDate, buildCommit)
}
