package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/events"
	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/runtime"
	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/watch"
)

type options struct {
	monochrome  bool
	quiet       bool
	since       string
	timeout     string
	runtimeName string
	current     bool
	configPath  string
	verbose     bool
	jsonOutput  bool
}

// app is one invocation of the root command.
type app struct {
	opts   options
	stdout io.Writer
	stderr io.Writer

	// newEngine resolves the container engine.
	newEngine func(cfg *runtime.Config) (*runtime.Engine, error)

	root *cobra.Command
}

func newApp(stdout, stderr io.Writer) *app {
	a := &app{
		stdout:    stdout,
		stderr:    stderr,
		newEngine: runtime.New,
	}

	a.root = &cobra.Command{
		Use:   "forage-wait [flags] <container>",
		Short: "Wait for a container to become healthy",
		Long: `forage-wait blocks until a container's health check reports healthy
or unhealthy, or until the timeout passes.

It follows the engine's health_status events for the container, so the
container must define a health check. The exit status is 0 when the
container becomes healthy and 1 otherwise.`,
		Example: `  forage-wait web1
  forage-wait -t 60 -q db
  forage-wait -s "$(date +%s)" -t 0 --runtime podman api`,
		Args:          a.checkArgs,
		RunE:          a.run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	a.root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return errors.InvalidRequest("%v", err)
	})
	a.root.CompletionOptions.DisableDefaultCmd = true

	f := a.root.Flags()
	f.BoolVarP(&a.opts.monochrome, "monochrome", "m", false, "Disable colored output")
	f.BoolVarP(&a.opts.quiet, "quiet", "q", false, "Suppress status messages")
	f.StringVarP(&a.opts.since, "since", "s", "", "Consider events since this Unix time (default now)")
	f.StringVarP(&a.opts.timeout, "timeout", "t", "", "Seconds to wait, 0 waits indefinitely (default 10)")
	f.StringVar(&a.opts.runtimeName, "runtime", "", "Container engine: auto, docker or podman (default auto)")
	f.BoolVar(&a.opts.current, "current", false, "Check the container's current health before waiting for events")
	f.StringVar(&a.opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/forage-wait/config.toml)")
	f.BoolVarP(&a.opts.verbose, "verbose", "v", false, "Enable debug logging")
	f.BoolVar(&a.opts.jsonOutput, "json", false, "Output logs in JSON format")

	return a
}

// Execute runs forage-wait with the process arguments.
func Execute() error {
	return newApp(os.Stdout, os.Stderr).execute(context.Background(), os.Args[1:])
}

func (a *app) execute(ctx context.Context, args []string) error {
	a.root.SetArgs(args)

	c, err := a.root.ExecuteContextC(ctx)
	if err == nil {
		if help, _ := c.Flags().GetBool("help"); help {
			return errors.HelpShown()
		}
		return nil
	}

	a.report(c, err)
	return err
}

// report prints errors the watch has not already reported.
func (a *app) report(c *cobra.Command, err error) {
	p := logging.NewPrinter(logging.Display{Monochrome: a.monochrome()}, a.stdout, a.stderr)

	switch errors.KindOf(err) {
	case errors.KindUnhealthy, errors.KindTimedOut, errors.KindInterrupted:
	case errors.KindInvalidRequest:
		p.Error("%v", err)
		fmt.Fprint(p.Stderr(), c.UsageString())
	default:
		p.Error("%v", err)
	}
}

func (a *app) checkArgs(c *cobra.Command, args []string) error {
	switch len(args) {
	case 1:
		return nil
	case 0:
		return errors.InvalidRequest("container name or id is required")
	default:
		return errors.InvalidRequest("expected one container, got %d arguments", len(args))
	}
}

func (a *app) monochrome() bool {
	return a.opts.monochrome || os.Getenv("NO_COLOR") != ""
}

func (a *app) run(c *cobra.Command, args []string) error {
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return err
	}
	a.merge(c, cfg)

	logging.Setup(a.opts.verbose, a.opts.jsonOutput, a.stderr)

	display := logging.Display{Quiet: a.opts.quiet, Monochrome: a.monochrome()}
	req, err := watch.NewRequest(args[0], a.opts.since, a.opts.timeout, display, time.Now())
	if err != nil {
		return err
	}

	rt, err := runtime.ParseType(a.opts.runtimeName)
	if err != nil {
		return errors.InvalidRequest("%v", err)
	}

	engine, err := a.newEngine(&runtime.Config{Type: rt})
	if err != nil {
		return errors.ResourceUnavailable("finding container engine", err)
	}

	wopts := []watch.Option{watch.WithOutput(a.stdout, a.stderr)}
	if a.opts.current {
		wopts = append(wopts, watch.WithInspector(engine))
	}
	w := watch.New(events.NewCLISource(engine, cfg.StopGrace.Duration), wopts...)

	ctx, stop := interruptContext(c.Context(), interruptSignals...)
	defer stop()

	logging.Info("waiting for container health",
		"container", req.Container,
		"runtime", engine.Name(),
		"timeout", req.Timeout)

	outcome, err := w.Watch(ctx, req)
	if err != nil {
		return err
	}
	return outcome.Err(req.Container)
}

// merge fills options not set on the command line from the config file.
func (a *app) merge(c *cobra.Command, cfg *config.Config) {
	f := c.Flags()
	if !f.Changed("timeout") {
		a.opts.timeout = strconv.Itoa(cfg.Timeout)
	}
	if !f.Changed("runtime") {
		a.opts.runtimeName = cfg.Runtime
	}
	if !f.Changed("quiet") {
		a.opts.quiet = cfg.Quiet
	}
	if !f.Changed("monochrome") {
		a.opts.monochrome = cfg.Monochrome
	}
	if !f.Changed("current") {
		a.opts.current = cfg.Current
	}
	if !f.Changed("verbose") {
		a.opts.verbose = cfg.Log.Verbose
	}
	if !f.Changed("json") {
		a.opts.jsonOutput = cfg.Log.JSON
	}
}
