package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/platelog/internal/db"
)

func main() {
	var dbPath string
	var check bool
	flag.StringVar(&dbPath, "db", db.DefaultPath, "sqlite db path")
	flag.BoolVar(&check, "check", false, "only report the schema version, exit 1 if migrations are pending")
	flag.Parse()

	if check {
		os.Exit(reportVersion(dbPath))
	}

	gdb, err := db.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "migrate db: %v\n", err)
		os.Exit(1)
	}
	defer db.Close(gdb)

	version, err := db.CurrentVersion(gdb)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load version: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("done: schema at version %d\n", version)
}

func reportVersion(dbPath string) int {
	version, err := db.InspectVersion(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspect db: %v\n", err)
		return 1
	}

	latest := db.LatestVersion()
	fmt.Printf("schema version %d, latest %d\n", version, latest)
	if version < latest {
		return 1
	}
	return 0
}
