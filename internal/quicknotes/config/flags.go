package config

import (
	"flag"
	"os"
	"time"

	"github.com/Jai71/quicknotes/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-e string   SurrealDB endpoint URL (default from Config)
//	-n string   namespace
//	-d string   database
//	-s string   record-access method name
//	-t int      request timeout in seconds
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-e", "-n", "-d", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Endpoint, "e", cfg.Endpoint, "SurrealDB endpoint URL")
	fs.StringVar(&cfg.Namespace, "n", cfg.Namespace, "namespace")
	fs.StringVar(&cfg.Database, "d", cfg.Database, "database")
	fs.StringVar(&cfg.Access, "s", cfg.Access, "record-access method name")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
