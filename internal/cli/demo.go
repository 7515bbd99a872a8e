package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/autolayout/pkg/demo"
	errs "github.com/matzehuels/autolayout/pkg/errors"
	"github.com/matzehuels/autolayout/pkg/snapshot"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// validFormats is the set of supported demo output formats.
var validFormats = map[string]bool{formatTable: true, formatJSON: true}

// validateFormat checks the --format flag.
func validateFormat(f string) error {
	if !validFormats[f] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %s (must be 'table' or 'json')", f)
	}
	return nil
}

// demoOpts holds the command-line flags for the demo command.
type demoOpts struct {
	scene  sceneFlags
	format string // output format: "table" or "json"
	output string // JSON output file; stdout when empty
	stats  bool   // print builder and solver counters
}

// demoCommand creates the demo command, which builds and solves scenes.
func (c *CLI) demoCommand() *cobra.Command {
	opts := demoOpts{format: formatTable}

	cmd := &cobra.Command{
		Use:   "demo [name]",
		Short: "Build and solve a demo scene",
		Long: `Build and solve a demo scene and print the resulting frames.

Without a name every scene is solved in turn. Frames are given in the
parent's coordinate space. Use 'list' to see the available scenes.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: sceneNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			if opts.format == formatJSON && len(args) == 0 {
				return errs.New(errs.ErrCodeInvalidInput, "json output needs a demo name")
			}
			return c.runDemo(cmd, args, opts)
		},
	}

	opts.scene.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: table (default), json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write JSON to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print constraint and solver counters")

	return cmd
}

func (c *CLI) runDemo(cmd *cobra.Command, args []string, opts demoOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()

	scenes := demo.All()
	if len(args) == 1 {
		sc, err := demo.Lookup(args[0])
		if err != nil {
			return err
		}
		scenes = []demo.Scene{sc}
	}

	runOpts, err := c.options(cmd, opts.scene)
	if err != nil {
		return err
	}

	stats := &statsHooks{}
	if opts.stats {
		defer stats.register()()
	}

	prog := newProgress(logger)
	for i, sc := range scenes {
		res, err := demo.Run(ctx, sc, runOpts)
		if err != nil {
			return err
		}
		if opts.format == formatJSON {
			return writeSnapshot(out, res, opts.output)
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		printScene(out, res)
	}
	prog.done(fmt.Sprintf("Solved %d scene(s)", len(scenes)))

	if opts.stats {
		printStats(out, stats.summary())
	}
	return nil
}

// printScene prints a scene heading, its frame table and any constraints
// the solver dropped.
func printScene(w io.Writer, res *demo.Result) {
	fmt.Fprintln(w, StyleTitle.Render(res.Scene.Name)+" "+StyleDim.Render(res.Scene.Description))
	fmt.Fprintln(w, frameTable(res))
	for _, line := range droppedLines(res) {
		printWarning(w, "dropped %s", line)
	}
}

func writeSnapshot(w io.Writer, res *demo.Result, path string) error {
	snap := snapshot.Capture(res.Root, res.Solver, res.Layout)
	if path == "" {
		return snapshot.Write(snap, w)
	}
	if err := snapshot.WriteFile(snap, path); err != nil {
		return err
	}
	printSuccess(w, "Wrote %s", res.Scene.Name)
	printFile(w, filepath.Clean(path))
	return nil
}
