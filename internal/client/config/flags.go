package config

import (
	"flag"
	"os"
	"time"

	"github.com/capnote/capnote/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-e string   websocket endpoint of the backend
//	-n string   namespace
//	-d string   database
//	-t int      request timeout in seconds
//	-w int      upcoming payments window in days
//
// Only the flags listed here are parsed; the rest of os.Args is filtered
// out with flagx.FilterArgs so other components keep their own flags.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-e", "-n", "-d", "-t", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointURL, "e", cfg.EndpointURL, "websocket endpoint of the backend")
	fs.StringVar(&cfg.Namespace, "n", cfg.Namespace, "namespace")
	fs.StringVar(&cfg.Database, "d", cfg.Database, "database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.IntVar(&cfg.UpcomingWindowDays, "w", cfg.UpcomingWindowDays, "upcoming payments window (in days)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
