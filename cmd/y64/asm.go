package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/y64/asm"
	"github.com/ezrec/y64/io"
	"github.com/ezrec/y64/translate"
)

var asmFlags struct {
	verbose bool
	output  string
	listing bool
	symbols bool
}

var asmCmd = &cobra.Command{
	Use:   "asm file.ys",
	Short: "Assemble a Y64 source file",
	Long: `Asm assembles a Y64 source file into a binary memory image.

The image is written beside the source, with the .ys extension replaced
by .bin, unless an output is given. An output of '-' writes the image to
standard output.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runAsm(args[0])
	},
}

func init() {
	flags := asmCmd.Flags()
	flags.BoolVarP(&asmFlags.verbose, "verbose", "v", false, "Verbose mode")
	flags.StringVarP(&asmFlags.output, "output", "o", "", "Binary image output")
	flags.BoolVarP(&asmFlags.listing, "listing", "l", false, "Write a .yo listing beside the source")
	flags.BoolVar(&asmFlags.symbols, "symbols", false, "Dump the symbol table")

	rootCmd.AddCommand(asmCmd)
}

// assemble parses a source file, exiting on any error.
func assemble(source string, verbose bool) (prog *asm.Program) {
	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer inf.Close()

	as := &asm.Assembler{Verbose: verbose}
	prog, err = as.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	return
}

func runAsm(source string) {
	prog := assemble(source, asmFlags.verbose)

	bin, err := prog.Binary()
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	output := asmFlags.output
	if len(output) == 0 {
		output, err = io.OutputName(source, io.IMAGE_EXT)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
	}

	if output == "-" {
		err = io.WriteImage(os.Stdout, bin)
	} else {
		err = io.SaveImage(io.DirFS(filepath.Dir(output)), filepath.Base(output), bin)
	}
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	if asmFlags.listing {
		name, err := io.OutputName(source, io.LISTING_EXT)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
		err = io.Save(io.DirFS(filepath.Dir(name)), filepath.Base(name), prog.Listing)
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}
	}

	if asmFlags.symbols {
		pp.Fprintln(os.Stderr, prog.Symbols)
	}

	if asmFlags.verbose {
		translate.Fprint(os.Stderr, "%v: %d bytes, %d symbols\n", output, len(bin), len(prog.Symbols))
	}
}
