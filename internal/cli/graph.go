package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/autolayout/pkg/cache"
	"github.com/matzehuels/autolayout/pkg/demo"
	"github.com/matzehuels/autolayout/pkg/inspect"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	scene    sceneFlags
	output   string // output file; stdout when empty
	dot      bool   // emit DOT source instead of SVG
	detailed bool   // add frames and constant constraints to labels
	implicit bool   // include intrinsic size constraints
	noCache  bool   // skip the render cache
}

// svgTTL bounds how long rendered diagrams stay in the cache.
const svgTTL = 7 * 24 * time.Hour

// graphCommand creates the graph command, which draws a scene's element
// tree and constraints with Graphviz.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph [name]",
		Short: "Draw a scene's constraints as a Graphviz diagram",
		Long: `Draw a demo scene's element tree and its constraints.

Containment is drawn in grey, constraints between elements in blue with
their relation and priority. Output is SVG unless --dot is given.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: sceneNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd, args[0], opts)
		},
	}

	opts.scene.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "write DOT source instead of SVG")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show frames and fixed sizes in labels")
	cmd.Flags().BoolVar(&opts.implicit, "implicit", false, "include intrinsic size constraints")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "render without reading or writing the SVG cache")

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, name string, opts graphOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	sc, err := demo.Lookup(name)
	if err != nil {
		return err
	}
	runOpts, err := c.options(cmd, opts.scene)
	if err != nil {
		return err
	}
	res, err := demo.Run(ctx, sc, runOpts)
	if err != nil {
		return err
	}

	dot := inspect.ToDOT(res.Root, res.Solver, inspect.Options{
		Detailed: opts.detailed,
		Implicit: opts.implicit,
		Layout:   res.Layout,
	})
	data := []byte(dot)
	if !opts.dot {
		data, err = c.renderSVG(cmd, data, opts)
		if err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
	}
	logger.Debug("graph ready", "scene", name, "bytes", len(data), "dot", opts.dot)

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := writeFile(opts.output, data); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	printSuccess(out, "Drew %s", name)
	printFile(out, opts.output)
	return nil
}

// renderSVG renders dot through the SVG cache. Cache failures are logged and
// never fail the render.
func (c *CLI) renderSVG(cmd *cobra.Command, dot []byte, opts graphOpts) ([]byte, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	store := newCache(opts.noCache, logger)
	defer store.Close()

	key := cache.Key("svg", dot)
	if svg, hit, err := store.Get(ctx, key); err != nil {
		logger.Warn("cache read failed", "error", err)
	} else if hit {
		logger.Debug("cache hit", "key", key[:16])
		return svg, nil
	}

	var spinner *Spinner
	if opts.output != "" {
		spinner = newSpinner(ctx, cmd.ErrOrStderr(), "Rendering SVG...")
		spinner.Start()
	}
	svg, err := inspect.RenderSVG(string(dot))
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return nil, err
	}

	if err := store.Set(ctx, key, svg, svgTTL); err != nil {
		logger.Warn("cache write failed", "error", err)
	}
	return svg, nil
}
