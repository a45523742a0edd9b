package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"pns-graph/domain"
	"pns-graph/infrastructure/storage"
	"pns-graph/internal"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
	// INSPECT_COLOURS enables colorized headers
	Colours bool `envconfig:"INSPECT_COLOURS" default:"true"`
	Limit   int  `envconfig:"INSPECT_LIMIT" default:"200"`
}

func main() {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	prefix := flag.String("prefix", "domain:", "Key prefix to scan")
	name := flag.String("name", "", "Show the domain of a dotted name, e.g. alice.dot")
	flag.Parse()

	// BypassLockGuard allows opening while the indexer holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	scan := *prefix
	if *name != "" {
		scan = "domain:" + domain.NameHash(*name).String()
	}

	entries, err := storage.Browse(db, scan, config.Limit)
	if err != nil {
		log.Fatal(err)
	}
	render(os.Stdout, scan, entries, config.Colours)
}

func render(w io.Writer, prefix string, entries []storage.Entry, colours bool) {
	header := fmt.Sprintf("  ====== %s (%d) ======", prefix, len(entries))
	if colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Fprintln(w, header)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Key", "Type", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, entry := range entries {
		row := internal.DefaultMapper(entry)
		table.Append([]string{row.Key, row.Type, row.Detail})
	}
	table.Render()
}
