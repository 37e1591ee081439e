package main

import (
	"context"
	"fmt"

	"github.com/justfortestingnothibghere/Api/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the example configuration to --config.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" {
		return fmt.Errorf("%w: --config", shared.ErrMissingArgument)
	}

	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}

	config, err := shared.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load created config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("created config is invalid: %w", err)
	}

	r.logger.Info("config file created", "path", configPath)

	r.writePlain("✓ Wrote %s (%d songs, %d API keys)\n", configPath, len(config.Songs), len(config.Auth.Keys))
	r.writePlain("\nNext steps:\n")
	r.writePlain("1. Replace the keys under [[auth.keys]] or set SONGAPI_ALL_KEY / SONGAPI_SINGLE_KEY\n")
	r.writePlain("2. Run 'songapi serve --config %s'\n", configPath)

	return nil
}
