package config

import (
	"flag"
	"os"

	"github.com/avoskres/parlor/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the SQLite store (default from Config)
//	-p int      flavors per catalog page (default from Config)
//	-l string   log level: debug, info, warn, error
//
// os.Args is filtered to only the flags handled here, so the JSON config
// stage's -c/-config flags do not trip this FlagSet.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-p", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local store")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "flavors per page")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
