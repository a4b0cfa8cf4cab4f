package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time parses the seed epoch date
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable.  Server settings are
// required; seed settings have defaults matching the historical
// flat-fee seeding run so that `blockflix-seed` works out of the box.
type Config struct {
	Env       string // application environment (e.g. "dev", "prod")
	Port      string // HTTP port to listen on
	DBUser    string // database username
	DBPass    string // database password (optional)
	DBHost    string // database host address
	DBPort    string // database port number
	DBName    string // database name
	JWTSecret string // secret used to sign JWTs
	AccessTTLMin int // access token time-to-live in minutes
	BcryptCost   int // bcrypt cost for password hashing

	SeedDataDir      string    // directory holding movies_metadata.csv and credits.csv
	SeedPricing      string    // pricing preset: "flat" or "tiered"
	SeedEpoch        time.Time // first simulated month
	SeedInitialUsers int       // size of the cohort seeded at the epoch
	SeedMinGrowthPct float64   // flat preset: lower growth bound (percent)
	SeedMaxGrowthPct float64   // flat preset: upper growth bound (percent)
	SeedFee          float64   // flat preset: monthly fee
	SeedRandSeed     uint64    // PRNG seed; 0 means time-seeded (non-reproducible)
}

// Load reads configuration values from environment variables and
// returns a Config.  Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:          must("APP_ENV"),      // environment (dev/test/prod)
		Port:         must("APP_PORT"),     // port to bind the HTTP server
		DBUser:       must("DB_USER"),      // database user
		DBPass:       os.Getenv("DB_PASS"), // database password (empty allowed)
		DBHost:       must("DB_HOST"),      // database host
		DBPort:       must("DB_PORT"),      // database port
		DBName:       must("DB_NAME"),      // database name
		JWTSecret:    must("JWT_SECRET"),   // secret used for signing JWTs
		AccessTTLMin: mustInt("ACCESS_TOKEN_TTL_MIN"),
		BcryptCost:   mustInt("BCRYPT_COST"),

		SeedDataDir:      getenv("SEED_DATA_DIR", "data"),
		SeedPricing:      getenv("SEED_PRICING", "flat"),
		SeedEpoch:        envDate("SEED_EPOCH", "2017-01-01"),
		SeedInitialUsers: atoi(getenv("SEED_INITIAL_USERS", "100")),
		SeedMinGrowthPct: envFloat("SEED_MIN_GROWTH_PCT", 3),
		SeedMaxGrowthPct: envFloat("SEED_MAX_GROWTH_PCT", 5),
		SeedFee:          envFloat("SEED_FEE", 9.99),
		SeedRandSeed:     envUint("SEED_RAND_SEED", 0),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

// envDate parses a YYYY-MM-DD env var, falling back to the default.
// A malformed value is fatal rather than silently ignored because a
// wrong epoch would produce a misleading dataset.
func envDate(key, def string) time.Time {
	s := getenv(key, def)
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		log.Fatalf("invalid date for %s: %q", key, s)
	}
	return d.UTC()
}

func envFloat(key string, def float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("invalid float for %s: %q", key, s)
	}
	return f
}

func envUint(key string, def uint64) uint64 {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		log.Fatalf("invalid uint for %s: %q", key, s)
	}
	return n
}
