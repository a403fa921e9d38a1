package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	cdecl "github.com/paul-j-lucas/cdecl-sub003"
)

// main is deliberately thin (SPEC_FULL.md §6): the real surface is
// cdecl.Session.Eval, grounded on cmd/langlang/main.go's
// flag+bufio+log CLI pattern -- a handful of flag.* declarations
// feeding Options, then a line-reading loop instead of the teacher's
// one-shot grammar compile.
func main() {
	var (
		lang      = flag.String("lang", "c++17", "the initial dialect (e.g. c99, c++20)")
		eastConst = flag.Bool("east-const", false, "print `int const` instead of `const int`")
		color     = flag.Bool("color", true, "colorize the debug tree dump")
		debug     = flag.Bool("debug", false, "print the declarator AST after every command")
		echo      = flag.Bool("echo", false, "echo each command before its output")
		file      = flag.String("file", "", "read commands from a file instead of stdin")
	)
	flag.Parse()

	s := cdecl.NewSession()
	if d, ok := cdecl.ParseDialect(*lang); ok {
		s.Options.SetDialect(d)
	} else {
		log.Fatalf("unknown dialect %q", *lang)
	}
	s.Options.EastConst = *eastConst
	s.Options.Color = *color
	s.Options.Debug = *debug
	s.Options.Echo = *echo

	in := os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	interactive := *file == ""
	scanner := bufio.NewScanner(in)
	if interactive {
		fmt.Print("cdecl> ")
	}
	for scanner.Scan() {
		line := scanner.Text()
		if s.Options.Echo {
			fmt.Println(line)
		}
		if strings.TrimSpace(line) == "" {
			if interactive {
				fmt.Print("cdecl> ")
			}
			continue
		}
		result := s.Eval(line)
		if result.Quit {
			break
		}
		for _, d := range result.Diagnostics {
			col := 1
			fmt.Println(d.FormatCLI(line, col))
		}
		if result.Output != "" {
			fmt.Println(result.Output)
		}
		if result.Debug != "" {
			fmt.Println(result.Debug)
		}
		if interactive {
			fmt.Print("cdecl> ")
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}
