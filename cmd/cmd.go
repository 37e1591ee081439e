// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   defaultConfigPath,
	}
}

// clientFlags select where song commands read from.
func clientFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		&cli.StringFlag{
			Name:  "url",
			Usage: "Base URL of a running server (default: client.base_url)",
		},
		&cli.StringFlag{
			Name:    "api-key",
			Aliases: []string{"k"},
			Usage:   "API key sent as x-api-key (default: client.api_key)",
		},
		&cli.BoolFlag{
			Name:  "local",
			Usage: "Read the catalog from the config file instead of calling a server",
		},
	}
}

// serveCommand runs the HTTP API.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the song API server",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "host",
				Usage: "Interface to bind (default: server.host)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to bind (default: server.port)",
			},
			&cli.BoolFlag{
				Name:  "allow-bypass",
				Usage: "Let requests without an API key through (manual testing only)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the landing page in the system browser",
			},
		},
		Action: r.Serve,
	}
}

// songsCommand queries the catalog.
func songsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "songs",
		Usage: "Query songs from a running server or the local catalog",
		Commands: []*cli.Command{
			{
				Name:  "all",
				Usage: "List every song (requires an access_all key)",
				Flags: append(clientFlags(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: json, csv, markdown, txt",
						Value:   "json",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write to a file instead of stdout",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
					},
				),
				Action: r.SongsAll,
			},
			{
				Name:  "get",
				Usage: "Find one song by title (requires an access_single key)",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "title",
					},
				},
				Flags: append(clientFlags(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				),
				Action: r.SongsGet,
			},
			{
				Name:  "lookup",
				Usage: "Find many songs by title concurrently",
				Flags: append(clientFlags(),
					&cli.StringSliceFlag{
						Name:     "title",
						Aliases:  []string{"t"},
						Usage:    "Title to look up (repeatable)",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent lookups (default: client.workers)",
					},
					&cli.FloatFlag{
						Name:  "rate",
						Usage: "Requests per second (default: client.rate_limit)",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				),
				Action: r.SongsLookup,
			},
			{
				Name:   "health",
				Usage:  "Check a running server's /health endpoint",
				Flags:  clientFlags(),
				Action: r.SongsHealth,
			},
		},
	}
}

// setupCommand handles configuration bootstrap.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write the example configuration file",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupConfig,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for browsing songs.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive song browser",
		Flags:   clientFlags(),
		Action:  r.TUI,
	}
}
