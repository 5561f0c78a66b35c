package config

import (
	"flag"
	"time"
)

// configFilePath extracts the -c/-config flag value from args without
// consuming the other flags; parseFlags handles those later.
func configFilePath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	registerFlags(fs, &Config{})
	_ = fs.Parse(args)

	return path
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   base URL of the content service API
//	-t int      request timeout in seconds
//	-f string   credential file path
//	-l string   log file path
//	-c string   config file path (consumed by configFilePath)
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	var configFile string
	fs.StringVar(&configFile, "config", "", "path to config file")
	fs.StringVar(&configFile, "c", "", "path to config file (short)")
	timeout := registerFlags(fs, cfg)

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}

func registerFlags(fs *flag.FlagSet, cfg *Config) *int {
	fs.StringVar(&cfg.ServerBaseURL, "s", cfg.ServerBaseURL, "base URL of the content service API")
	fs.StringVar(&cfg.CredentialFile, "f", cfg.CredentialFile, "credential file path")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file path")
	return fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
}
