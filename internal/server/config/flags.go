package config

import (
	"flag"
	"os"
	"time"
)

// parseFlags populates Config fields from command-line flags, with an
// optional JSON file applied in between so that the precedence is
// defaults < JSON < flags.
//
// Supported flags (short forms):
//
//	-a string     HTTP bind address (e.g., ":3001")
//	-d string     PostgreSQL DSN
//	-s string     session signing secret
//	-t duration   session token validity (e.g., "1h")
//	-e string     environment: development|production
//	-o string     allowed cross-origin caller address
//	-m string     session transport: cookie|bearer
//	-c/-config    path to a JSON config file
func parseFlags(config *Config) {
	parseFlagsFromArgs(config, os.Args[1:])
}

func parseFlagsFromArgs(config *Config, args []string) {
	fs := flag.NewFlagSet("server", flag.ExitOnError)

	var configFile string
	fs.StringVar(&configFile, "config", "", "path to JSON config file")
	fs.StringVar(&configFile, "c", "", "path to JSON config file (short)")

	addr := fs.String("a", config.EndpointAddr, "address and port to run server")
	dsn := fs.String("d", config.DatabaseDSN, "database DSN")
	secret := fs.String("s", config.SecretKey, "session signing secret")
	ttl := fs.Duration("t", config.TokenValidityDuration, "session token validity")
	env := fs.String("e", config.Env, "environment (development|production)")
	origin := fs.String("o", config.AllowedOrigin, "allowed cross-origin caller address")
	transport := fs.String("m", config.SessionTransport, "session transport (cookie|bearer)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if configFile != "" {
		parseJSON(config, configFile)
	}

	// Only flags the user actually set override the JSON overlay.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			config.EndpointAddr = *addr
		case "d":
			config.DatabaseDSN = *dsn
		case "s":
			config.SecretKey = *secret
		case "t":
			config.TokenValidityDuration = *ttl
		case "e":
			config.Env = *env
		case "o":
			config.AllowedOrigin = *origin
		case "m":
			config.SessionTransport = *transport
		}
	})

	if config.TokenValidityDuration == 0 {
		config.TokenValidityDuration = time.Hour
	}
}
