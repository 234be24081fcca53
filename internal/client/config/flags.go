package config

import (
	"flag"
	"os"

	"github.com/Engineerbabu777/blog-app/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN of the backend platform
//	-p string   connectivity probe URL
//	-l string   path of the local cache box
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-p", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "backend PostgreSQL DSN")
	fs.StringVar(&cfg.ProbeURL, "p", cfg.ProbeURL, "connectivity probe URL")
	fs.StringVar(&cfg.LocalCachePath, "l", cfg.LocalCachePath, "local cache box path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
