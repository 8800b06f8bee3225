// Package main implements the yarn assembler command.
package main

import (
	"errors"
	"os"

	"github.com/Urethramancer/yarn/internal/config"
	"github.com/Urethramancer/yarn/internal/fileprocessor"
	"github.com/Urethramancer/yarn/internal/options"
	"github.com/grimdork/climate/arg"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/afero"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
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

	logger = config.CreateLogger(opts)
	if !opts.Quiet {
		logger.Info("yarn assembler", log.String("version", buildinfo.Version(version, commit, date)))
	}

	if err := fileprocessor.AssembleFile(app.Context(), logger, afero.NewOsFs(), opts); err != nil {
		logger.Error("Assembling failed", log.Err(err))
		os.Exit(1)
	}
}

// readArguments parses the command line without the program name. help is
// set when usage was printed on request.
func readArguments(args []string) (opts options.Program, help bool, err error) {
	opt := arg.New("yarnasm")
	opt.SetDefaultHelp(true)
	_ = opt.SetOption(arg.GroupDefault, "o", "output", "Object file to write. Defaults to the input name with an .o extension.", "", false, arg.VarString, nil)
	_ = opt.SetOption(arg.GroupDefault, "l", "listing", "Also write a listing file next to the object file.", false, false, arg.VarBool, nil)
	_ = opt.SetOption(arg.GroupDefault, "d", "debug", "Log label binding and fixups.", false, false, arg.VarBool, nil)
	_ = opt.SetOption(arg.GroupDefault, "q", "quiet", "Only report errors.", false, false, arg.VarBool, nil)
	_ = opt.SetPositional("INPUT", "Assembly source file.", "", true, arg.VarString)
	_ = opt.SetPositional("OUTPUT", "Object file to write, same as -o.", "", false, arg.VarString)

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
	opts.Listing = opt.GetBool("listing")
	opts.Debug = opt.GetBool("debug")
	opts.Quiet = opt.GetBool("quiet")
	return opts, false, nil
}
