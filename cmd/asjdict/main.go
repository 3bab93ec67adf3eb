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
	"github.com/leskin-in/mipt-asj/logutil"
	"github.com/leskin-in/mipt-asj/source"
)

type options struct {
	Type      string `long:"type" description:"mysql, postgres, mssql or sqlite3" value-name:"db_type" default:"mysql"`
	User      string `short:"u" long:"user" description:"database user" value-name:"user_name" default:"root"`
	Password  string `short:"p" long:"password" description:"database password"`
	Prompt    bool   `long:"password-prompt" description:"force a password prompt"`
	Host      string `short:"h" long:"host" description:"database host" value-name:"host_name" default:"127.0.0.1"`
	Port      int    `short:"P" long:"port" description:"database port"`
	Socket    string `short:"S" long:"socket" description:"unix socket to use for connection"`
	FullTable string `long:"full-table" description:"table holding full-form rows" required:"true"`
	FullCol   string `long:"full-col" description:"column holding full-form rows" required:"true"`
	AbbrTable string `long:"abbr-table" description:"table holding abbreviation rows" required:"true"`
	AbbrCol   string `long:"abbr-col" description:"column holding abbreviation rows" required:"true"`
	Help      bool   `long:"help" description:"show this help"`
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

	cfg := source.Config{
		DbName:   dbName,
		User:     opts.User,
		Password: opts.Password,
		Host:     opts.Host,
		Port:     opts.Port,
		Socket:   opts.Socket,
	}
	rs, err := source.Open(opts.Type, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer rs.Close()

	ctx := context.Background()
	fulls, err := rs.Rows(ctx, opts.FullTable, opts.FullCol)
	if err != nil {
		log.Fatal(err)
	}
	abbrs, err := rs.Rows(ctx, opts.AbbrTable, opts.AbbrCol)
	if err != nil {
		log.Fatal(err)
	}

	pairs, err := asj.BuildDictionary(fulls, abbrs)
	if err != nil {
		log.Fatal(err)
	}
	for _, pair := range pairs {
		fmt.Printf("%s\t%s\n", pair.Full, pair.Abbr)
	}
}
