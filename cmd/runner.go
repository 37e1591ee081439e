package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/justfortestingnothibghere/Api/internal/models"
	"github.com/justfortestingnothibghere/Api/internal/services"
	"github.com/justfortestingnothibghere/Api/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
	getenv     func(string) string
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
	Getenv     func(string) string
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
		getenv:     opts.Getenv,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, songsCommand, setupCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// loadConfig returns the config for path, falling back to the startup config.
//
// A path other than the one loaded at startup must exist. Environment overrides are re-applied.
func (r *Runner) loadConfig(path string) (*shared.Config, error) {
	if path == "" || path == r.configPath {
		return r.config, nil
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(r.getenv); err != nil {
		return nil, err
	}

	r.configPath = path
	r.config = config
	return config, nil
}

// songService picks the in-process catalog (--local) or an HTTP client for a running server.
func (r *Runner) songService(cmd *cli.Command) (services.Service, error) {
	config, err := r.loadConfig(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if cmd.Bool("local") {
		catalog, err := models.CatalogFromConfig(config.Songs)
		if err != nil {
			return nil, err
		}
		return services.NewCatalogService(catalog), nil
	}

	return r.apiService(cmd, config), nil
}

func (r *Runner) apiService(cmd *cli.Command, config *shared.Config) *services.APIService {
	baseURL := config.Client.BaseURL
	if v := cmd.String("url"); v != "" {
		baseURL = v
	}
	apiKey := config.Client.APIKey
	if v := cmd.String("api-key"); v != "" {
		apiKey = v
	}

	api := services.NewAPIService(baseURL, apiKey, r.httpClient)
	if config.Server.ProtectedPrefix != "" {
		api = api.WithPrefix(config.Server.ProtectedPrefix)
	}
	return api
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
