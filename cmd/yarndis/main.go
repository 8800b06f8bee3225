// Package main implements the yarn disassembler command.
package main

import (
	"errors"
	"os"

	"github.com/Urethramancer/yarn/internal/config"
	"github.com/Urethramancer/yarn/internal/fileprocessor"
	"github.com/Urethramancer/yarn/internal/options"
	"github.com/grimdork/climate/arg"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/afero"
)

func main() {
	logger := config.CreateLogger(options.Program{})

	opts, help, err := readArguments(os.Args[1:])
	if err != nil {
		if !errors.Is(err, arg.ErrNoArgs) {
			logger.Error("Invalid arguments", log.Err(err))
		}
		os.Exit(1)
	}
	if help {
		os.Exit(0)
	}

	// Output on stdout is the disassembly itself, keep the log quiet unless asked.
	if opts.Output == "" && !opts.Debug {
		opts.Quiet = true
	}
	logger = config.CreateLogger(opts)

	if err := fileprocessor.DisassembleFile(app.Context(), logger, afero.NewOsFs(), opts, os.Stdout); err != nil {
		logger.Error("Disassembling failed", log.Err(err))
		os.Exit(1)
	}
}

// readArguments parses the command line without the program name. help is
// set when usage was printed on request.
func readArguments(args []string) (opts options.Program, help bool, err error) {
	opt := arg.New("yarndis")
	opt.SetDefaultHelp(true)
	_ = opt.SetOption(arg.GroupDefault, "o", "output", "Source file to write. Printed on the console if not given.", "", false, arg.VarString, nil)
	_ = opt.SetOption(arg.GroupDefault, "d", "debug", "Enable debug logging.", false, false, arg.VarBool, nil)
	_ = opt.SetPositional("INPUT", "Object file to disassemble.", "", true, arg.VarString)
	_ = opt.SetPositional("OUTPUT", "Source file to write, same as -o.", "", false, arg.VarString)

	if len(args) == 0 {
		opt.PrintHelp()
		return opts, false, arg.ErrNoArgs
	}
	if err := opt.Parse(args); err != nil {
		if errors.Is(err, arg.ErrNoArgs) {
			opt.PrintHelp()
		}
		return opts, false, err
	}
	if opt.GetBool("help") {
		opt.PrintHelp()
		return opts, true, nil
	}

	opts.Input = opt.GetPosString("INPUT")
	if err := opts.SetOutput(opt.GetString("output"), opt.GetPosString("OUTPUT")); err != nil {
		return opts, false, err
	}
	opts.Debug = opt.GetBool("debug")
	return opts, false, nil
}
