package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/loomrt/loomrt"
)

func main() {
	prompt := flag.String("prompt", "", "REPL prompt string (no prompt is printed when reading from a file)")
	radix := flag.Int("radix", 10, "default radix for numeric literals (2, 8, 10, or 16)")
	flag.Parse()

	switch *radix {
	case 2, 8, 10, 16:
	default:
		log.Fatalf("invalid -radix %d: must be 2, 8, 10, or 16", *radix)
	}

	var r io.Reader
	interactive := false

	switch flag.NArg() {
	case 0:
		r = os.Stdin
		interactive = *prompt != ""
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		r = f
	default:
		fmt.Fprintf(os.Stderr, "usage: %s [-prompt p] [-radix r] [path to file]\n", os.Args[0])
		os.Exit(-1)
	}

	env := loomrt.NewEnv()

	if !interactive {
		x, err := loomrt.ParseRadix(r, *radix)
		if err != nil {
			log.Fatalf("error parsing input: %v", err)
		}

		loomrt.Encode(os.Stdout, env.Eval(x))
		fmt.Printf("\n")
		return
	}

	scanner := bufio.NewScanner(r)
	for {
		fmt.Print(*prompt)
		if !scanner.Scan() {
			return
		}

		x, err := loomrt.ParseRadix(strings.NewReader(scanner.Text()), *radix)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error parsing input: %v\n", err)
			continue
		}

		evalLine(env, x)
	}
}

// evalLine evaluates x and prints its result, recovering a panic the same
// way loom's own top-level error surfacing does -- an uncaught raise or
// evaluator panic fails this one line, not the whole REPL.
func evalLine(env *loomrt.Env, x loomrt.Value) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", r)
		}
	}()

	loomrt.Encode(os.Stdout, env.Eval(x))
	fmt.Printf("\n")
}
