package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/lootlogger/internal/config"
	"github.com/idilsaglam/lootlogger/internal/logging"
	"github.com/idilsaglam/lootlogger/internal/presenter"
	"github.com/idilsaglam/lootlogger/internal/store"
	"github.com/idilsaglam/lootlogger/internal/store/seed"
	"github.com/idilsaglam/lootlogger/internal/tui"
	"github.com/idilsaglam/lootlogger/internal/ui"
)

// App carries root flags and the session built from them.
type App struct {
	ConfigPath string
	Seed       string
	Demo       int
	Theme      string
	LogFile    string
	Verbose    bool

	cfg *config.Config
	log *zap.Logger

	// runTUI is swapped out in tests.
	runTUI func(presenter.ListPresenter, *zap.Logger) error
}

// Run executes the command line and returns an exit code (0 ok, 1 error).
func Run(args []string) int {
	return run(&App{runTUI: tui.Run}, args)
}

func run(app *App, args []string) int {
	cmd := NewRootCmd(app)
	cmd.SetArgs(args)
	err := cmd.Execute()
	// Flush on both paths; cobra skips post-run hooks when RunE fails.
	if app.log != nil {
		if err != nil {
			app.log.Error("command failed", zap.Error(err))
		}
		_ = app.log.Sync()
	}
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	return 0
}

func NewRootCmd(app *App) *cobra.Command {
	if app.runTUI == nil {
		app.runTUI = tui.Run
	}

	cmd := &cobra.Command{
		Use:           "lootlogger",
		Short:         "Keep track of your loot and what it is worth",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive list with five random items
  lootlogger --demo 5

  # Start from a seed file
  lootlogger --seed loot.yaml

  # Print the grouped list once
  lootlogger ls --seed loot.json
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.session()
			if err != nil {
				return err
			}
			return app.runTUI(p, app.log)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Config file (default ~/.lootlogger/config.yaml, or $LOOTLOGGER_CONFIG)")
	cmd.PersistentFlags().StringVar(&app.Seed, "seed", "", "JSON or YAML file of items to start with")
	cmd.PersistentFlags().IntVar(&app.Demo, "demo", 0, "Number of random demo items to add")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", "", "Theme ("+strings.Join(ui.Themes, "|")+")")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "Write debug logs to this file")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Log at debug level")

	cmd.AddCommand(newLsCmd(app))
	return cmd
}

// setup resolves config with precedence flags > env > file > defaults,
// then applies the theme and builds the logger.
func (app *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = app.Theme
	}
	if flags.Changed("demo") {
		cfg.DemoItems = app.Demo
	}
	if flags.Changed("seed") {
		cfg.SeedFile = app.Seed
	}
	if flags.Changed("log-file") {
		cfg.Log.File = app.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ui.SetTheme(cfg.Theme)
	log, err := logging.New(cfg.Log, app.Verbose)
	if err != nil {
		return err
	}
	app.cfg, app.log = cfg, log
	return nil
}

// session builds the store for this run and wraps it in a presenter.
func (app *App) session() (*presenter.Presenter, error) {
	s := store.New(store.WithLogger(app.log))
	if app.cfg.SeedFile != "" {
		n, err := seed.Into(s, app.cfg.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
		app.log.Info("seeded", zap.String("file", app.cfg.SeedFile), zap.Int("items", n))
	}
	for i := 0; i < app.cfg.DemoItems; i++ {
		s.CreateItem()
	}
	return presenter.New(s, app.log), nil
}
