package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/autolayout/pkg/buildinfo"
	"github.com/matzehuels/autolayout/pkg/demo"
	errs "github.com/matzehuels/autolayout/pkg/errors"
	"github.com/matzehuels/autolayout/pkg/layout"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "autolayout"

	// configFile is the config file name inside the config directory.
	configFile = "config.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
//
// Before any subcommand runs, the config file is loaded, --verbose (or
// verbose = true in the config) switches the logger to debug level, and the
// logger is attached to the command context.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Autolayout builds and solves constraint-based layouts",
		Long:         `Autolayout is a CLI for exploring a constraint-based layout builder: it builds demo scenes from edge, axis and dimension constraints, solves them and prints, exports or draws the result.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			if c.verbose || cfg.Verbose {
				c.SetLogLevel(LogDebug)
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
			c.Logger.Debug("loaded config", "width", cfg.Container.Width, "height", cfg.Container.Height, "direction", cfg.Direction)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/autolayout/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Scene Options
// =============================================================================

// sceneFlags are the layout flags shared by demo, graph and browse.
type sceneFlags struct {
	width  float64
	height float64
	rtl    bool
	strict bool
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.width, "width", 0, "container width (default from config)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "container height (default from config)")
	cmd.Flags().BoolVar(&f.rtl, "rtl", false, "lay the container out right to left")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "fail when a required constraint is dropped")
}

// options merges config values with the flags that were set explicitly.
func (c *CLI) options(cmd *cobra.Command, f sceneFlags) (demo.Options, error) {
	opts := demo.Options{
		Size:      layout.Size{Width: c.Config.Container.Width, Height: c.Config.Container.Height},
		Direction: c.Config.layoutDirection(),
		Priority:  layout.Priority(c.Config.Priority),
		Strict:    c.Config.Strict,
		Logger:    c.Logger,
	}
	if cmd.Flags().Changed("width") {
		if err := errs.ValidateExtent("width", f.width); err != nil {
			return demo.Options{}, err
		}
		opts.Size.Width = f.width
	}
	if cmd.Flags().Changed("height") {
		if err := errs.ValidateExtent("height", f.height); err != nil {
			return demo.Options{}, err
		}
		opts.Size.Height = f.height
	}
	if f.rtl {
		opts.Direction = layout.DirectionRightToLeft
	}
	if cmd.Flags().Changed("strict") {
		opts.Strict = f.strict
	}
	return opts, nil
}

// sceneNames completes demo names for shell completion.
func sceneNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return demo.Names(), cobra.ShellCompDirectiveNoFileComp
}

// =============================================================================
// File Output
// =============================================================================

// writeFile writes data to path, creating or truncating it.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
