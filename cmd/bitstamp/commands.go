package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"bitstampgo/pkg/core"
	"bitstampgo/pkg/exchange/bitstamp"
	"bitstampgo/pkg/session"
)

var opsCommand = &cli.Command{
	Name:   "ops",
	Usage:  "lists every supported operation with its path and method",
	Action: listOperations,
}

var callCommand = &cli.Command{
	Name:      "call",
	Usage:     "invokes an operation and prints the normalized response",
	ArgsUsage: "<OPERATION> [name=value ...]",
	Action:    callOperation,
}

func listOperations(c *cli.Context) error {
	w := c.App.Writer
	for _, ep := range bitstamp.Endpoints() {
		access := au.Green("public")
		if ep.Private {
			access = au.Yellow("private")
		}
		fmt.Fprintf(w, "%-32s %-5s %-26s %s\n", au.Bold(ep.Operation.String()), ep.Method, ep.Path, access)
	}
	return nil
}

func callOperation(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowSubcommandHelp(c)
	}

	op, err := core.ParseOperation(strings.ToUpper(c.Args().First()))
	if err != nil {
		return err
	}

	params, err := parseParams(c.Args().Tail())
	if err != nil {
		return err
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	overrides{
		BaseURL:   baseURL,
		ClientID:  clientID,
		APIKey:    apiKey,
		APISecret: apiSecret,
		LogLevel:  logLevel,
		NonceMode: nonceMode,
	}.apply(cfg)

	s, err := session.New(cfg, session.WithLogger(newLogger(os.Stderr, cfg.LogLevel)))
	if err != nil {
		return err
	}
	defer s.Close()

	result, err := s.Do(c.Context, op, params)
	if err != nil {
		return err
	}

	return printJSON(c.App.Writer, result)
}

// parseParams turns name=value arguments into request parameters.
func parseParams(args []string) (core.Params, error) {
	params := make(core.Params, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected name=value", arg)
		}
		params[name] = value
	}
	return params, nil
}
