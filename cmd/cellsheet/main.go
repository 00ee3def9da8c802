// Command cellsheet is an interactive line-oriented REPL over a single
// in-process sheet: "set A1 =1+2", "get B1", "print", "texts", "clear A1".
// Grounded on signadot-tony-format's fatih/color + mattn/go-isatty
// pairing (color only when stdout is a real terminal) and
// broyeztony-karl/repl's golang.org/x/term usage (here, sizing the
// printed grid to the terminal width instead of an unbounded dump),
// per SPEC_FULL.md §11.5.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/cellgraph/spreadsheet/sheet"
)

func main() {
	s := sheet.New()
	interactive := isatty.IsTerminal(os.Stdout.Fd())

	errColor := color.New(color.FgRed)
	okColor := color.New(color.FgGreen)
	if !interactive {
		errColor.DisableColor()
		okColor.DisableColor()
	}

	if interactive {
		fmt.Println("cellsheet — type `help` for commands, `quit` to exit")
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch cmd, rest := splitCommand(line); cmd {
		case "quit", "exit":
			return
		case "help":
			printHelp()
		case "set":
			address, text := splitCommand(rest)
			if !nonEmpty(address) || !nonEmpty(text) {
				errColor.Fprintln(os.Stderr, "usage: set <address> <text>")
				continue
			}
			if err := s.SetCell(address, text); err != nil {
				errColor.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			okColor.Println("ok")
		case "clear":
			address := rest
			if address == "" {
				errColor.Fprintln(os.Stderr, "usage: clear <address>")
				continue
			}
			if err := s.ClearCell(address); err != nil {
				errColor.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			okColor.Println("ok")
		case "get":
			address := rest
			if address == "" {
				errColor.Fprintln(os.Stderr, "usage: get <address>")
				continue
			}
			v, err := s.GetCell(address)
			if err != nil {
				errColor.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			fmt.Println(v.Display())
		case "text":
			address := rest
			if address == "" {
				errColor.Fprintln(os.Stderr, "usage: text <address>")
				continue
			}
			text, err := s.GetCellText(address)
			if err != nil {
				errColor.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			fmt.Println(text)
		case "print":
			printGrid(s, interactive)
		case "texts":
			_ = s.PrintTexts(os.Stdout)
		default:
			errColor.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		}
	}
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

func nonEmpty(s string) bool { return s != "" }

func printHelp() {
	fmt.Println(`commands:
  set <address> <text>   set a cell's content
  get <address>           print a cell's displayed value
  text <address>          print a cell's raw editable text
  clear <address>         clear a cell
  print                   print the printable area's displayed values
  texts                   print the printable area's raw text
  quit                    exit`)
}

// printGrid writes the printable area's values, truncating each row to
// the terminal's current width when stdout is interactive so a wide
// sheet doesn't wrap unreadably; a piped/non-terminal stdout gets the
// full tab-separated dump PrintValues produces.
func printGrid(s *sheet.Sheet, interactive bool) {
	if !interactive {
		_ = s.PrintValues(os.Stdout)
		return
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		_ = s.PrintValues(os.Stdout)
		return
	}

	var buf strings.Builder
	_ = s.PrintValues(&buf)
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if len(line) > width {
			line = line[:width]
		}
		fmt.Println(line)
	}
}
