// Command identify reports which catalog schema, if any, matches local
// WRCC dump files. Useful when a station starts failing with an unknown
// schema: run the saved blob through this tool to see the header triple
// the catalog would need.
//
// Usage:
//
//	go run ./cmd/identify dump1.txt [dump2.txt ...]
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/couchcryptid/raws-data-etl/internal/domain"
	"github.com/couchcryptid/raws-data-etl/internal/wrcc"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

func main() {
	showColumns := flag.Bool("columns", false, "print the canonical column mapping for matches")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	unknown := 0
	for _, path := range flag.Args() {
		if !identifyFile(path, *showColumns) {
			unknown++
		}
	}
	if unknown > 0 {
		os.Exit(1)
	}
}

func identifyFile(path string, showColumns bool) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("%s %s: %v\n", red("ERROR"), path, err)
		return false
	}

	schema, err := wrcc.Identify(string(data))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownSchema) {
			fmt.Printf("%s %s: header matches no catalog entry\n", yellow("UNKNOWN"), path)
		} else {
			fmt.Printf("%s %s: %v\n", red("ERROR"), path, err)
		}
		return false
	}

	fmt.Printf("%s %s: %s (%d columns)\n", green("MATCH"), path, schema.MonitorType, schema.Columns())
	if err := wrcc.ValidateUnits(schema.Header, schema); err != nil {
		fmt.Printf("%s %s: %v\n", red("UNITS"), path, err)
		return false
	}

	if showColumns {
		for i, raw := range schema.RawNames {
			fmt.Printf("  %2d  %-20s -> %s\n", i, raw, schema.Canonical[i])
		}
	}
	return true
}
