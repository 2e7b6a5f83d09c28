package cmd

import (
	"io"
	"os"
	"sync"

	"pt-web-ui/internal/config"
	"pt-web-ui/internal/config/jsonstore"
	"pt-web-ui/internal/launcher"
	ptlog "pt-web-ui/internal/log"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Config captured from flags before Execute()
	ConfigPath string
	JSONOutput bool
	Out        io.Writer
	Err        io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a mock/test App.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app: app,
		Out: app.Out,
		Err: app.Err,
	}
}

func (p *AppProvider) init() (*App, error) {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	ptlog.Configure(ptlog.Config{
		Level:  ptlog.FromSyslog(config.DefaultLogOutputLevel),
		Output: errOut,
	})
	logger := ptlog.WithComponent("cli")

	path := config.ResolvePath(p.ConfigPath)
	logger.Info().Str("path", path).Msg("config file path")
	store := jsonstore.New(jsonstore.OSFileIO{}, path)
	applyLogLevel(store, logger)

	return &App{
		ConfigStore: store,
		Out:         out,
		Err:         errOut,
		JSON:        p.JSONOutput,
		Logger:      logger,
	}, nil
}

// applyLogLevel honours the logOutputLevel setting when it differs from
// the built-in default.
func applyLogLevel(store config.Store, logger zerolog.Logger) {
	level := store.GetInt(config.KeyLogOutputLevel, config.DefaultLogOutputLevel)
	if level == config.DefaultLogOutputLevel {
		return
	}
	logger.Info().Int("level", level).Msg("logging level overridden from config file")
	ptlog.SetLevel(ptlog.FromSyslog(level))
}

// Execute runs the CLI.
func Execute() error {
	provider := &AppProvider{
		Out: os.Stdout,
		Err: os.Stderr,
	}

	rootCmd := newRootCmd(provider)
	return rootCmd.Execute()
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pt-web-ui",
		Short: "Show the local web UI in a kiosk browser",
		Long: `pt-web-ui waits for the local backend web server to answer and then
shows it in a fullscreen kiosk browser.

Settings such as the logging level, URL and window geometry are read from
a JSON settings file (see "pt-web-ui config --help"). Command-line flags
and PT_WEB_UI_* environment variables take precedence over the file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			opts, err := launchOptions(cmd.Flags())
			if err != nil {
				return err
			}

			ctx, stop := launcher.NotifyContext(cmd.Context())
			defer stop()

			l := launcher.New(app.ConfigStore, app.waiter(), app.runner())
			_, err = l.Launch(ctx, opts)
			return err
		},
	}

	// Global flags - these populate the provider config
	rootCmd.PersistentFlags().BoolVar(&provider.JSONOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&provider.ConfigPath, "config", "", "Path to the settings file (default: $"+config.EnvConfigPath+" or the platform default)")

	addViewFlags(rootCmd)

	// Register all commands
	rootCmd.AddCommand(newWaitCmd(provider))
	rootCmd.AddCommand(newConfigCmd(provider))
	rootCmd.AddCommand(newVersionCmd(provider))

	return rootCmd
}

func (a *App) waiter() launcher.Waiter {
	if a.Waiter != nil {
		return a.Waiter
	}
	return newWaiter(0, 0)
}

func (a *App) runner() launcher.Runner {
	if a.Runner != nil {
		return a.Runner
	}
	return launcher.ExecRunner{Stdout: a.Out, Stderr: a.Err}
}
