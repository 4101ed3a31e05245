// Package cli handles command line interface logic.
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/disasm8086/internal/options"
)

// ParseFlags parses command line flags and returns program and disassembler options.
func ParseFlags() (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	disasmOptions := options.NewDisassembler()
	noHexComments, noOffsets := readDisasmOptionFlags(flags)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "") {
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(flags, args); err != nil {
		return opts, options.Disassembler{}, err
	}

	if opts.Batch == "" {
		opts.Input = args[0]
	}

	disasmOptions.HexComments = !*noHexComments
	disasmOptions.OffsetComments = !*noOffsets

	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information.
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	if e.msg == "" {
		return "invalid usage"
	}
	return e.msg
}

// ShowUsage prints the usage message and the flag defaults.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: disasm8086 [options] <file to disassemble>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order.
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output .asm file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .asm file naming, for example *.bin")
	flags.BoolVar(&opts.CrossCheck, "crosscheck", false, "cross-check every decoded instruction against the x86asm reference decoder")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.AssembleTest, "verify", false, "verify the generated output by assembling with nasm and check if it matches the input")
}

func readDisasmOptionFlags(flags *flag.FlagSet) (*bool, *bool) {
	noHexComments := flags.Bool("nohexcomments", false, "do not output instruction bytes as hex values in comments")
	noOffsets := flags.Bool("nooffsets", false, "do not output offsets in comments")
	return noHexComments, noOffsets
}
