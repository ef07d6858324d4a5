// FILE: lixenwraith/settings/cmd/pastesettings/main.go
// Command pastesettings shows how a deployment file configures a settings module
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/lixenwraith/settings"
)

func main() {
	app := &cli.App{
		Name:  "pastesettings",
		Usage: "apply a deployment file to a settings module",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug messages",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "print the settings module after applying the deployment file",
				Flags:  append(deploymentFlags(), rootFlag(), formatFlag()),
				Action: showAction,
			},
			{
				Name:   "convert",
				Usage:  "print the coerced settings of an application section",
				Flags:  append(deploymentFlags(), formatFlag()),
				Action: convertAction,
			},
			{
				Name:   "tree",
				Usage:  "parse a tree tuple from standard input and print it as JSON",
				Action: treeAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func deploymentFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "config",
			Aliases:  []string{"c"},
			Usage:    "deployment file",
			EnvVars:  []string{"PASTESETTINGS_CONFIG"},
			Required: true,
		},
		&cli.StringFlag{
			Name:  "app",
			Usage: "application section",
			Value: settings.DefaultApp,
		},
	}
}

func rootFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "root",
		Usage: "directory holding settings module files",
		Value: ".",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "format",
		Usage: "output format: toml, json or yaml",
		Value: settings.FormatTOML,
	}
}

func newLogger(c *cli.Context) zerolog.Logger {
	level := zerolog.InfoLevel
	if c.Bool("verbose") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func showAction(c *cli.Context) error {
	logger := newLogger(c)

	result, err := settings.NewBuilder().
		WithFile(c.String("config")).
		WithApp(c.String("app")).
		WithSettingsRoot(c.String("root")).
		WithLogger(logger).
		Build()
	if err != nil {
		return err
	}

	m, ok := result.Namespace.(*settings.Module)
	if !ok {
		return fmt.Errorf("cannot print namespace of type %T", result.Namespace)
	}
	return settings.Dump(c.App.Writer, m.Snapshot(), c.String("format"))
}

func convertAction(c *cli.Context) error {
	logger := newLogger(c)

	d, err := settings.LoadDeployment(c.String("config"))
	if err != nil {
		return err
	}
	global, local, err := d.App(c.String("app"))
	if err != nil {
		return err
	}

	converter := settings.NewConverter(nil)
	s, err := converter.Convert(global, local)
	if err != nil {
		return err
	}
	logger.Debug().Msg(converter.Debug(s))

	return settings.Dump(c.App.Writer, s.Map(), c.String("format"))
}

func treeAction(c *cli.Context) error {
	data, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return fmt.Errorf("failed to read tree: %w", err)
	}

	tree, err := settings.ParseTree(string(data))
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(c.App.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tree)
}
