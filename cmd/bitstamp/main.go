// Command bitstamp dispatches any exchange operation from the command line and
// prints the normalized response as JSON.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/logrusorgru/aurora"
	"github.com/urfave/cli/v2"
)

var (
	configPath string
	baseURL    string
	clientID   string
	apiKey     string
	apiSecret  string
	logLevel   string
	nonceMode  string
	noColor    bool

	au = aurora.NewAurora(true)
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "bitstamp"
	app.Usage = "call the Bitstamp REST API and print normalized responses"
	app.EnableBashCompletion = true
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to a YAML config file",
			EnvVars:     []string{"BITSTAMP_CONFIG"},
			Destination: &configPath,
		},
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "override the API base URL",
			Destination: &baseURL,
		},
		&cli.StringFlag{
			Name:        "client-id",
			Usage:       "override config client id for private calls",
			Destination: &clientID,
		},
		&cli.StringFlag{
			Name:        "key",
			Usage:       "override config API key for private calls",
			Destination: &apiKey,
		},
		&cli.StringFlag{
			Name:        "secret",
			Usage:       "override config API secret for private calls",
			Destination: &apiSecret,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "debug, info, warn or error",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "nonce-mode",
			Usage:       "unix or counter",
			Destination: &nonceMode,
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "disable coloured output",
			Destination: &noColor,
		},
	}
	app.Before = func(_ *cli.Context) error {
		au = aurora.NewAurora(!noColor)
		return nil
	}
	app.Commands = []*cli.Command{
		opsCommand,
		callCommand,
	}
	return app
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, au.Red(err.Error()))
		os.Exit(1)
	}
}
