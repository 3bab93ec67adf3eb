package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"syscall"

	"github.com/jessevdk/go-flags"
	"golang.org/x/term"

	"github.com/leskin-in/mipt-asj"
	"github.com/leskin-in/mipt-asj/config"
	"github.com/leskin-in/mipt-asj/logutil"
	"github.com/leskin-in/mipt-asj/rule"
	"github.com/leskin-in/mipt-asj/source"
)

type options struct {
	Type      string  `long:"type" description:"mysql, postgres, mssql or sqlite3" value-name:"db_type" default:"mysql"`
	User      string  `short:"u" long:"user" description:"database user" value-name:"user_name" default:"root"`
	Password  string  `short:"p" long:"password" description:"database password"`
	Prompt    bool    `long:"password-prompt" description:"force a password prompt"`
	Host      string  `short:"h" long:"host" description:"database host" value-name:"host_name" default:"127.0.0.1"`
	Port      int     `short:"P" long:"port" description:"database port"`
	Socket    string  `short:"S" long:"socket" description:"unix socket to use for connection"`
	ATable    string  `long:"a-table" description:"table holding the A row set" required:"true"`
	ACol      string  `long:"a-col" description:"column holding the A row set" required:"true"`
	BTable    string  `long:"b-table" description:"table holding the B row set" required:"true"`
	BCol      string  `long:"b-col" description:"column holding the B row set" required:"true"`
	Rules     string  `long:"rules" description:"YAML file of abbreviation rules"`
	Exactness float64 `long:"exactness" description:"matching exactness in [0, 1]" default:"-1"`
	Help      bool    `long:"help" description:"show this help"`
}

func parseOptions(args []string) (*options, string) {
	var opts options
	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[options] db_name"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		log.Fatal(err)
	}
	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if len(rest) != 1 {
		fmt.Print("Exactly one database name is required!\n\n")
		parser.WriteHelp(os.Stdout)
		os.Exit(1)
	}
	if opts.Prompt {
		fmt.Print("Enter Password: ")
		pass, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println()
		opts.Password = string(pass)
	}
	return &opts, rest[0]
}

func main() {
	logutil.Init()
	opts, dbName := parseOptions(os.Args[1:])

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

	dbCfg := source.Config{
		DbName:   dbName,
		User:     opts.User,
		Password: opts.Password,
		Host:     opts.Host,
		Port:     opts.Port,
		Socket:   opts.Socket,
	}
	rs, err := source.Open(opts.Type, dbCfg)
	if err != nil {
		log.Fatal(err)
	}
	defer rs.Close()

	ctx := context.Background()
	aRows, err := rs.Rows(ctx, opts.ATable, opts.ACol)
	if err != nil {
		log.Fatal(err)
	}
	bRows, err := rs.Rows(ctx, opts.BTable, opts.BCol)
	if err != nil {
		log.Fatal(err)
	}

	pairs, err := asj.FilterCandidates(aRows, bRows, rules, exactness, cfg.Delimiter)
	if err != nil {
		log.Fatal(err)
	}
	for _, pair := range pairs {
		fmt.Printf("%d\t%d\n", pair.A, pair.B)
	}
}
