package config

import (
	"flag"
	"os"
	"time"

	"github.com/hallowedlibrary/backend/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, hours
//	-c int      bcrypt cost factor
//	-o string   comma-separated CORS allowed origins
//	-b string   catalog API base URL
//	-k string   catalog API key
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with flags registered elsewhere
// (including the test binary's own).
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-c", "-o", "-b", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidityHours := fs.Int("t", int(config.TokenValidityDuration.Hours()), "token validity (in hours)")

	fs.IntVar(&config.BcryptCost, "c", config.BcryptCost, "bcrypt cost factor")
	fs.StringVar(&config.CORSAllowedOrigins, "o", config.CORSAllowedOrigins, "comma-separated CORS allowed origins")
	fs.StringVar(&config.BooksAPIBaseURL, "b", config.BooksAPIBaseURL, "catalog API base URL")
	fs.StringVar(&config.BooksAPIKey, "k", config.BooksAPIKey, "catalog API key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidityHours) * time.Hour
}
