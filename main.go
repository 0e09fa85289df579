package main

import (
	"fmt"
	"os"

	"github.com/Aiden01/vm/api"
	"github.com/Aiden01/vm/programs"
	"github.com/Aiden01/vm/vm"
	"github.com/fatih/color"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var (
	debugLogging bool
	noColor      bool
	listenAddr   string
)

func newLogger() (*zap.Logger, error) {
	if debugLogging {
		return zap.NewDevelopment()
	}
	return zap.NewNop(), nil
}

func withLogger(action func(*cli.Context, *zap.Logger) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		color.NoColor = color.NoColor || noColor
		l, err := newLogger()
		if err != nil {
			return err
		}
		defer l.Sync()
		zap.ReplaceGlobals(l)
		return action(c, l)
	}
}

func lookup(name string) (vm.Program, error) {
	prog, ok := programs.Get(name)
	if !ok {
		return nil, fmt.Errorf("no program named %q", name)
	}
	return prog, nil
}

func runPrograms(c *cli.Context, l *zap.Logger) error {
	if !c.Args().Present() {
		return cli.NewExitError("run needs at least one program name", 2)
	}
	failed := false
	for _, name := range c.Args() {
		prog, err := lookup(name)
		if err != nil {
			return cli.NewExitError(err.Error(), 2)
		}
		if c.NArg() > 1 {
			color.New(color.Bold).Printf("# %s\n", name)
		}
		machine := vm.NewVM(vm.LoggerOpt(l), vm.OutputOpt(os.Stdout))
		if err := machine.Run(prog); err != nil {
			color.New(color.FgRed).Printf("An error occurred: %s\n", err)
			failed = true
		}
	}
	if failed {
		return cli.NewExitError("", 1)
	}
	return nil
}

func disassemble(c *cli.Context, _ *zap.Logger) error {
	if !c.Args().Present() {
		return cli.NewExitError("dis needs at least one program name", 2)
	}
	for _, name := range c.Args() {
		prog, err := lookup(name)
		if err != nil {
			return cli.NewExitError(err.Error(), 2)
		}
		color.New(color.Bold).Printf("%s (%d instructions)\n", name, len(prog))
		if err := vm.Disassemble(os.Stdout, prog); err != nil {
			return err
		}
	}
	return nil
}

func listPrograms(_ *cli.Context, _ *zap.Logger) error {
	for _, name := range programs.Names() {
		fmt.Println(name)
	}
	return nil
}

func serve(_ *cli.Context, l *zap.Logger) error {
	srv, err := api.NewServer(api.ServerConfig{
		ListenerAddr: listenAddr,
		Logger:       l,
	})
	if err != nil {
		return err
	}
	return srv.Start()
}

func main() {
	app := cli.NewApp()
	app.Name = "vm"
	app.Usage = "run hand-built programs on a small stack machine"

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "debug",
			Usage:       "log every dispatched instruction",
			Destination: &debugLogging,
		},
		cli.BoolFlag{
			Name:        "no-color",
			Usage:       "disable colored output",
			Destination: &noColor,
		},
	}

	app.Commands = []cli.Command{
		{
			Name:    "list",
			Aliases: []string{"ls"},
			Usage:   "List the registered programs",
			Action:  withLogger(listPrograms),
		},
		{
			Name:      "run",
			Aliases:   []string{"r"},
			Usage:     "Run programs by name and print their output",
			ArgsUsage: "<name>...",
			Action:    withLogger(runPrograms),
		},
		{
			Name:      "dis",
			Usage:     "Disassemble programs by name",
			ArgsUsage: "<name>...",
			Action:    withLogger(disassemble),
		},
		{
			Name:  "serve",
			Usage: "Serve the program registry over HTTP",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "addr",
					Value:       ":8080",
					Usage:       "listen address",
					Destination: &listenAddr,
				},
			},
			Action: withLogger(serve),
		},
	}

	app.Action = func(c *cli.Context) error {
		return cli.ShowAppHelp(c)
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
