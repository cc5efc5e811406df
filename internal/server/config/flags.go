package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/storekeeper/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-m string   metrics bind address (e.g., ":9090")
//	-d string   PostgreSQL DSN
//	-s string   access token HMAC key
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-k string   Redis URL ("" for the in-process cache)
//	-w int      cache sliding expiration, seconds
//	-x int      cache absolute expiration, seconds
//	-l int      Login/Refresh calls per peer per minute
//
// Duration flags are integers and converted to time.Duration values. An
// unset duration flag leaves the current value alone.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{
		"-a", "-m", "-d", "-s", "-t", "-r", "-u", "-p", "-b", "-g", "-e", "-k", "-w", "-x", "-l",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address and port for metrics")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "access token signing key")

	accessTokenMinutes := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	refreshTokenMinutes := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh token validity (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 image bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.RedisURL, "k", config.RedisURL, "redis URL")

	slidingSeconds := fs.Int("w", int(config.CacheSlidingExpiration.Seconds()), "cache sliding expiration (in seconds)")
	absoluteSeconds := fs.Int("x", int(config.CacheAbsoluteExpiration.Seconds()), "cache absolute expiration (in seconds)")

	fs.IntVar(&config.LoginRatePerMinute, "l", config.LoginRatePerMinute, "login attempts per peer per minute")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Durations are only taken from flags given explicitly; the integer
	// defaults would truncate values such as "30s" loaded from JSON.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AccessTokenValidityDuration = time.Duration(*accessTokenMinutes) * time.Minute
		case "r":
			config.RefreshTokenValidityDuration = time.Duration(*refreshTokenMinutes) * time.Minute
		case "w":
			config.CacheSlidingExpiration = time.Duration(*slidingSeconds) * time.Second
		case "x":
			config.CacheAbsoluteExpiration = time.Duration(*absoluteSeconds) * time.Second
		}
	})
}
