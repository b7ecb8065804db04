// Command acgrep is a minimal multi-pattern grep built on acmatch. It is a
// demo of the library's public surface, not part of the core matching
// engine itself.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/coregx/acmatch"
)

func main() {
	var (
		patternsPath = pflag.StringP("patterns", "f", "", "file with one needle per line (required)")
		ignoreCase   = pflag.BoolP("ignore-case", "i", false, "match case-insensitively")
	)
	pflag.Parse()

	if *patternsPath == "" {
		fmt.Fprintln(os.Stderr, "usage: acgrep -f patterns.txt [file]")
		os.Exit(2)
	}

	needles, err := readNeedles(*patternsPath, *ignoreCase)
	if err != nil {
		log.Fatalf("acgrep: reading patterns: %v", err)
	}

	builder := acmatch.NewBuilder[string]()
	for _, needle := range needles {
		builder.AddPattern([]byte(needle), needle)
	}
	automaton, err := builder.Build()
	if err != nil {
		log.Fatalf("acgrep: building automaton: %v", err)
	}

	input, err := readInput(pflag.Args())
	if err != nil {
		log.Fatalf("acgrep: reading input: %v", err)
	}

	sensitivity := acmatch.CaseSensitive
	if *ignoreCase {
		sensitivity = acmatch.IgnoreCase
	}

	matches := acmatch.FindAll(automaton, acmatch.NewText(input), sensitivity)
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, m := range matches {
		fmt.Fprintf(w, "%d: %s\n", m.EndIndex, m.Value)
	}
}

func readNeedles(path string, lower bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var needles []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		if lower {
			line = strings.ToLower(line)
		}
		needles = append(needles, line)
	}
	return needles, scanner.Err()
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
