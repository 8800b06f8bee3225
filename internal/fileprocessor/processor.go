// Package fileprocessor reads source and object files, runs the assembler or
// disassembler on them and writes the results.
package fileprocessor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Urethramancer/yarn/assembler"
	"github.com/Urethramancer/yarn/disassembler"
	"github.com/Urethramancer/yarn/internal/options"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/afero"
)

const (
	// ObjectExtension replaces the source extension when no output is given.
	ObjectExtension = ".o"
	// ListingExtension is used for the optional listing file.
	ListingExtension = ".lst"
	// SourceExtension is used for disassembled output files.
	SourceExtension = ".asm"
)

// OutputFilename returns path with its extension replaced by ext.
func OutputFilename(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// AssembleFile assembles opts.Input and writes the object code to opts.Output,
// or to the input name with an .o extension. Nothing is left behind when
// assembly or any write fails.
func AssembleFile(ctx context.Context, logger *log.Logger, fs afero.Fs, opts options.Program) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := afero.ReadFile(fs, opts.Input)
	if err != nil {
		return fmt.Errorf("reading file '%s': %w", opts.Input, err)
	}

	output := opts.Output
	if output == "" {
		output = OutputFilename(opts.Input, ObjectExtension)
	}

	asm := assembler.New(assembler.WithLogger(logger))
	prog, err := asm.AssembleProgram(string(src))
	if err != nil {
		return fmt.Errorf("assembling '%s': %w", opts.Input, err)
	}

	var listing bytes.Buffer
	if opts.Listing {
		if err := prog.WriteListing(&listing); err != nil {
			return fmt.Errorf("generating listing: %w", err)
		}
	}

	if err := writeFile(fs, output, prog.Code); err != nil {
		return err
	}

	if opts.Listing {
		listingFile := OutputFilename(output, ListingExtension)
		if err := writeFile(fs, listingFile, listing.Bytes()); err != nil {
			_ = fs.Remove(output)
			return err
		}
		logger.Debug("Listing written", log.String("file", listingFile))
	}

	logger.Info("Assembled",
		log.String("input", opts.Input),
		log.String("output", output),
		log.Int("bytes", len(prog.Code)),
		log.Int("labels", len(prog.Symbols)))
	return nil
}

// DisassembleFile disassembles opts.Input. The source is written to
// opts.Output, or to stdout when no output name is given.
func DisassembleFile(ctx context.Context, logger *log.Logger, fs afero.Fs, opts options.Program, stdout io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	code, err := afero.ReadFile(fs, opts.Input)
	if err != nil {
		return fmt.Errorf("reading file '%s': %w", opts.Input, err)
	}

	text, err := disassembler.Disassemble(code)
	if err != nil {
		return fmt.Errorf("disassembling '%s': %w", opts.Input, err)
	}

	if opts.Output == "" {
		if _, err := io.WriteString(stdout, text); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	if err := writeFile(fs, opts.Output, []byte(text)); err != nil {
		return err
	}
	logger.Info("Disassembled",
		log.String("input", opts.Input),
		log.String("output", opts.Output),
		log.Int("bytes", len(code)))
	return nil
}

// writeFile writes data to a temporary file next to path and renames it into
// place, so a failed write never leaves a partial file behind.
func writeFile(fs afero.Fs, path string, data []byte) error {
	tmp, err := afero.TempFile(fs, filepath.Dir(path), "."+filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for '%s': %w", path, err)
	}
	name := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = fs.Remove(name)
		return fmt.Errorf("writing file '%s': %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(name)
		return fmt.Errorf("closing file '%s': %w", path, err)
	}
	if err := fs.Rename(name, path); err != nil {
		_ = fs.Remove(name)
		return fmt.Errorf("renaming '%s' to '%s': %w", name, path, err)
	}
	return nil
}
