// Command line front for the textbase line reader: prints files one
// normalized line at a time, optionally numbered and tokenized. Compressed
// files (.gz, .zst, .xz, .bz2) are read transparently.
package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/strayfield/textbase/strfmt"
	"github.com/strayfield/textbase/strutil"
	"github.com/strayfield/textbase/textio"
	"github.com/strayfield/textbase/tokenize"
)

func main() {
	delims := flag.String("d", "", "tokenize each line on these delimiter bytes and print the fields")
	numbers := flag.Bool("n", false, "prefix each line with its line number")
	debug := flag.Bool("debug", false, "print debug logs to stderr")
	flag.Parse()

	log.SetOutput(os.Stderr)
	if *debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		// No stdin mode: the reader's one-byte lookahead makes it wrong for
		// pipes, so we only do named files here.
		fmt.Fprintln(os.Stderr, "Usage: tbcat [-n] [-d DELIMITERS] [-debug] FILE...")
		os.Exit(1)
	}

	exitCode := 0
	for _, path := range paths {
		if err := catFile(path, *delims, *numbers); err != nil {
			fmt.Fprintln(os.Stderr, "tbcat:", err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func catFile(path string, delims string, numbers bool) error {
	reader, err := textio.Open(path)
	if err != nil {
		return err
	}
	defer reader.Close()

	var tokenizer *tokenize.Tokenizer
	if delims != "" {
		tokenizer = tokenize.New(delims, 16)
	}

	lineNumber := 0
	for reader.HasMore() {
		line, err := reader.NextLine()
		if err != nil {
			return err
		}
		lineNumber++

		rendered, err := renderLine(tokenizer, line, lineNumber, numbers)
		if err != nil {
			return err
		}
		fmt.Println(rendered)
	}

	log.Debugf("%d lines printed from %s", lineNumber, path)
	return nil
}

func renderLine(tokenizer *tokenize.Tokenizer, line string, lineNumber int, numbers bool) (string, error) {
	if tokenizer != nil {
		tokens := tokenizer.Load([]byte(line))
		fields := make([]string, 0, len(tokens))
		for _, token := range tokens {
			fields = append(fields, string(token))
		}
		line = strutil.Join(fields, "\t")
	}

	if !numbers {
		return line, nil
	}
	return strfmt.Sprintf("%6d  %s", lineNumber, line)
}
