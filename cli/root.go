// Package cli implements the volcanium command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/volcanium/config"
	"github.com/katalvlaran/volcanium/parser"
	"github.com/katalvlaran/volcanium/solver"
)

// runOptions collects the command-line flags.
type runOptions struct {
	configPath   string
	start        string
	singleBudget int
	pairBudget   int
	workers      int
	width        int
	prune        bool
	verbose      bool
	explain      bool
}

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(ctx, version).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the root command. Output goes to cmd.OutOrStdout(),
// diagnostics to cmd.ErrOrStderr().
func NewRootCommand(ctx context.Context, version string) *cobra.Command {
	opts := &runOptions{}
	rootCmd := &cobra.Command{
		Use:          "volcanium [input file]",
		Short:        "Compute the most pressure one agent, or two cooperating agents, can release from a valve scan report.",
		Args:         cobra.MaximumNArgs(1),
		RunE:         newRunAction(ctx, opts),
		Version:      version,
		SilenceUsage: true,
	}
	defaults := config.Default()
	flags := rootCmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to config file (default "+config.DefaultPath()+")")
	flags.StringVarP(&opts.start, "start", "s", defaults.Start, "start valve")
	flags.IntVar(&opts.singleBudget, "single-budget", defaults.Budgets.Single, "minutes available to a single agent")
	flags.IntVar(&opts.pairBudget, "pair-budget", defaults.Budgets.Pair, "minutes available to each of two agents")
	flags.IntVarP(&opts.workers, "workers", "w", defaults.Workers, "combiner goroutines (0 = GOMAXPROCS)")
	flags.IntVar(&opts.width, "width", defaults.Width, "bit-mask width limiting the number of working valves")
	flags.BoolVar(&opts.prune, "prune", defaults.Prune, "prune the single-agent search with an upper bound")
	flags.BoolVar(&opts.explain, "explain", false, "also print the valves opened by each plan")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	return rootCmd
}

func newRunAction(ctx context.Context, opts *runOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		overrideFromFlags(&cfg, cmd.Flags(), opts)
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := setupLogging(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format, opts.verbose); err != nil {
			return err
		}

		in, name, closeFn, err := openInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		defer closeFn()

		log.Debugf("Reading scan report from %s", name)
		g, err := parser.ParseGraph(in)
		if err != nil {
			return errors.WithMessagef(err, "reading %s", name)
		}

		solveOpts := append(cfg.SolverOptions(), solver.WithContext(ctx))
		res, err := solver.Solve(g, cfg.Start, cfg.SolverBudgets(), solveOpts...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d %d\n", res.Single, res.Pair)
		if opts.explain {
			printPlan(out, res)
		}

		return nil
	}
}

// overrideFromFlags applies only the flags the user actually set.
func overrideFromFlags(cfg *config.Config, fs *pflag.FlagSet, opts *runOptions) {
	if fs.Changed("start") {
		cfg.Start = opts.start
	}
	if fs.Changed("single-budget") {
		cfg.Budgets.Single = opts.singleBudget
	}
	if fs.Changed("pair-budget") {
		cfg.Budgets.Pair = opts.pairBudget
	}
	if fs.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if fs.Changed("width") {
		cfg.Width = opts.width
	}
	if fs.Changed("prune") {
		cfg.Prune = opts.prune
	}
}

// openInput returns the report reader: the named file, or stdin for no argument or "-".
func openInput(stdin io.Reader, args []string) (io.Reader, string, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return stdin, "stdin", func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", nil, errors.Wrapf(err, "opening %s", args[0])
	}

	return f, args[0], func() { _ = f.Close() }, nil
}

func printPlan(w io.Writer, res solver.Result) {
	fmt.Fprintf(w, "single: %s\n", strings.Join(res.SingleOpened, ","))
	fmt.Fprintf(w, "pair:   %s | %s\n", strings.Join(res.PairOpened[0], ","), strings.Join(res.PairOpened[1], ","))
}
