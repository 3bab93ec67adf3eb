package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/leskin-in/mipt-asj"
	"github.com/leskin-in/mipt-asj/config"
	"github.com/leskin-in/mipt-asj/logutil"
	"github.com/leskin-in/mipt-asj/pkduck"
	"github.com/leskin-in/mipt-asj/rule"
)

type options struct {
	Rules     string  `long:"rules" description:"YAML file of abbreviation rules"`
	Exactness float64 `long:"exactness" description:"matching exactness in [0, 1]" default:"-1"`
	Verbose   bool    `short:"v" long:"verbose" description:"also print the pkduck score"`
	Help      bool    `long:"help" description:"show this help"`
}

func parseOptions(args []string) (*options, []string) {
	var opts options
	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[options] x y"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		log.Fatal(err)
	}
	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	return &opts, rest
}

func main() {
	logutil.Init()
	opts, rest := parseOptions(os.Args[1:])

	cfg := config.Default()
	exactness := cfg.DefaultExactness
	if opts.Exactness >= 0 {
		exactness = opts.Exactness
	}

	var rules []rule.StringPairRow
	if opts.Rules != "" {
		loaded, err := config.LoadRules(opts.Rules)
		if err != nil {
			log.Fatal(err)
		}
		rules = loaded
	}

	if len(rest) == 1 && rest[0] == "-" {
		runStdin(rules, exactness, cfg.Delimiter, opts.Verbose)
		return
	}
	if len(rest) != 2 {
		fmt.Print("Exactly two strings are required (or \"-\" for stdin line pairs)!\n\n")
		os.Exit(1)
	}
	report(rest[0], rest[1], rules, exactness, cfg.Delimiter, opts.Verbose)
}

func runStdin(rules []rule.StringPairRow, exactness float64, delim string, verbose bool) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		x := scanner.Text()
		if !scanner.Scan() {
			log.Fatal("asjverify: stdin must contain an even number of lines (x, y pairs)")
		}
		y := scanner.Text()
		report(x, y, rules, exactness, delim, verbose)
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

func report(x, y string, rules []rule.StringPairRow, exactness float64, delim string, verbose bool) {
	ok, err := asj.Verify(x, y, rules, exactness, delim)
	if err != nil {
		log.Fatal(err)
	}
	if verbose {
		set := rule.NewSet(rules, delim)
		score := pkduck.Score(x, y, set, delim)
		fmt.Printf("%t\t%f\n", ok, score)
		return
	}
	fmt.Printf("%t\n", ok)
}
