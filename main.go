package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mickamy/keywordwrap/dialect"
	"github.com/mickamy/keywordwrap/internal/naming"
)

var version = "dev"

var errNoInput = errors.New("no identifiers given (pass them as arguments, via -type, or on stdin with -)")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("keywordwrap", flag.ContinueOnError)
	dialectName := fs.String("dialect", "mysql", "database dialect ("+strings.Join(dialect.Names(), ", ")+")")
	typeName := fs.String("type", "", "Go type name; quotes the table name inferred from it")
	qualified := fs.Bool("qualified", false, "quote each dot-separated part separately")
	listReserved := fs.Bool("reserved", false, "print the dialect's reserved words and exit")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return err //nolint:wrapcheck // flag already reports the problem
	}

	if *showVersion {
		_, err := fmt.Fprintln(stdout, "keywordwrap", version)
		return err //nolint:wrapcheck // pass through
	}

	d, err := dialect.Lookup(*dialectName)
	if err != nil {
		return err
	}

	if *listReserved {
		for _, w := range d.Style().Reserved() {
			if _, err := fmt.Fprintln(stdout, w); err != nil {
				return err //nolint:wrapcheck // pass through
			}
		}
		return nil
	}

	idents := fs.Args()
	if len(idents) == 1 && idents[0] == "-" {
		idents, err = readLines(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}
	if *typeName != "" {
		idents = append([]string{naming.TableName(*typeName)}, idents...)
	}
	if len(idents) == 0 {
		return errNoInput
	}

	quote := d.QuoteIdent
	if *qualified {
		quote = func(name string) string { return dialect.QuoteQualified(d, name) }
	}

	for _, ident := range idents {
		if _, err := fmt.Fprintln(stdout, quote(ident)); err != nil {
			return err //nolint:wrapcheck // pass through
		}
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err() //nolint:wrapcheck // caller wraps
}
