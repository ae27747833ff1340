package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/leofalp/emcalc/core/docs"
	"github.com/leofalp/emcalc/internal/argexpr"
	"github.com/leofalp/emcalc/internal/config"
	"github.com/leofalp/emcalc/internal/units"
	"github.com/leofalp/emcalc/providers/mcpserver"
	"github.com/leofalp/emcalc/providers/observability"
	"github.com/leofalp/emcalc/providers/observability/slogobs"
	"github.com/leofalp/emcalc/providers/tool"
	"github.com/leofalp/emcalc/providers/tool/electromagnetism"
)

const usage = `Usage:
  emcalc list                                   list operations
  emcalc describe [-format markdown|json]       document operations
  emcalc call [-human] <tool> [json]            call with JSON arguments (stdin if omitted)
  emcalc eval [-human] <tool> name=expr...      call with expression arguments
  emcalc serve                                  serve MCP over stdio
`

var errUsage = errors.New("usage")

type app struct {
	cfg        config.Config
	observer   *slogobs.Observer
	dispatcher *tool.Dispatcher

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprint(stdout, usage)
		if len(args) == 0 {
			return 1
		}
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "emcalc: %v\n", err)
		return 1
	}

	observer := slogobs.New(slogobs.WithOutput(stderr))
	a := &app{
		cfg:      cfg,
		observer: observer,
		dispatcher: tool.NewDispatcher(
			electromagnetism.NewCatalog(electromagnetism.WithStrictInputs(cfg.StrictInputs)),
			tool.WithObserver(observer),
		),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	observer.Debug(ctx, "Configuration loaded",
		observability.Bool(observability.AttrStrictInputs, cfg.StrictInputs),
		observability.String("server.name", cfg.ServerName),
	)

	commands := map[string]func(context.Context, []string) error{
		"list":     a.list,
		"describe": a.describe,
		"call":     a.call,
		"eval":     a.eval,
		"serve":    a.serve,
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "emcalc: unknown command %q\n\n%s", args[0], usage)
		return 1
	}

	if err := cmd(ctx, args[1:]); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "emcalc: %v\n", err)
		}
		return 1
	}
	return 0
}

func (a *app) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// parseFlags wraps flag errors in errUsage; the flag package has already
// printed them.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

func (a *app) list(_ context.Context, args []string) error {
	fs := a.flagSet("list")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	for _, info := range a.dispatcher.Catalog().Infos() {
		fmt.Fprintf(a.stdout, "%-26s %-8s %s\n", info.Name, info.Unit, info.Description)
	}
	return nil
}

func (a *app) describe(_ context.Context, args []string) error {
	fs := a.flagSet("describe")
	formatName := fs.String("format", string(docs.FormatMarkdown), "output format: markdown or json")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	format, err := docs.ParseFormat(*formatName)
	if err != nil {
		return err
	}
	out, err := docs.Render(a.dispatcher.Catalog().Infos(), format)
	if err != nil {
		return err
	}
	_, err = io.WriteString(a.stdout, out)
	return err
}

func (a *app) call(ctx context.Context, args []string) error {
	fs := a.flagSet("call")
	human := fs.Bool("human", false, "print a one-line summary with SI prefixes")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		return errors.New("call needs a tool name and optionally a JSON argument object")
	}

	input := ""
	if fs.NArg() == 2 {
		input = fs.Arg(1)
	} else {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return fmt.Errorf("read arguments: %w", err)
		}
		input = string(data)
	}
	return a.dispatch(ctx, fs.Arg(0), input, *human)
}

func (a *app) eval(ctx context.Context, args []string) error {
	fs := a.flagSet("eval")
	human := fs.Bool("human", false, "print a one-line summary with SI prefixes")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("eval needs a tool name")
	}

	arguments, err := argexpr.Evaluate(fs.Args()[1:])
	if err != nil {
		return err
	}
	input, err := json.Marshal(arguments)
	if err != nil {
		return fmt.Errorf("encode arguments: %w", err)
	}
	return a.dispatch(ctx, fs.Arg(0), string(input), *human)
}

func (a *app) dispatch(ctx context.Context, name, input string, human bool) error {
	output, err := a.dispatcher.Dispatch(ctx, name, input)
	if err != nil {
		if errors.Is(err, tool.ErrUnknownTool) {
			return fmt.Errorf("%w (available: %s)", err, strings.Join(electromagnetism.Operations(), ", "))
		}
		return err
	}

	if human {
		summary, err := units.Summarize(output)
		if err != nil {
			return err
		}
		output = summary
	}
	_, err = fmt.Fprintln(a.stdout, output)
	return err
}

func (a *app) serve(ctx context.Context, args []string) error {
	fs := a.flagSet("serve")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	server, err := mcpserver.NewServer(a.cfg.ServerName, version, a.dispatcher)
	if err != nil {
		return err
	}
	a.observer.Info(ctx, "MCP server listening on stdio",
		observability.String("server.name", a.cfg.ServerName),
		observability.Int("tools", len(server.Tools())),
	)
	return server.Serve(ctx, a.stdin, a.stdout, log.New(a.stderr, "mcp: ", log.LstdFlags))
}
