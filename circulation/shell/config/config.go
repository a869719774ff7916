package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/shelfwise/circulation/circulation/rules"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Driver selects the database adapter behind the postgres event store.
type Driver string

const (
	DriverPGX  Driver = "pgx"
	DriverSQL  Driver = "sql"
	DriverSQLX Driver = "sqlx"
)

const (
	keyEnv                = "CIRCULATION_ENV"
	keyDSN                = "DB_DSN"
	keyReplicaDSN         = "DB_REPLICA_DSN"
	keyDriver             = "DB_DRIVER"
	keyEventsTable        = "EVENTS_TABLE"
	keyFinePerDay         = "FINE_PER_DAY"
	keyReplacementCost    = "REPLACEMENT_COST"
	keyDamageFee          = "DAMAGE_FEE"
	keyReminderInterval   = "REMINDER_INTERVAL"
	keyOTelEnabled        = "OTEL_ENABLED"
	keyOTelTraceEndpoint  = "OTEL_TRACE_ENDPOINT"
	keyOTelMetricEndpoint = "OTEL_METRIC_ENDPOINT"
	keyOTelLogEndpoint    = "OTEL_LOG_ENDPOINT"
)

const (
	defaultEventsTable        = "events"
	defaultFinePerDay         = "5"
	defaultReplacementCost    = "500"
	defaultDamageFee          = "50"
	defaultReminderInterval   = 24 * time.Hour
	defaultOTelTraceEndpoint  = "localhost:4319"
	defaultOTelMetricEndpoint = "localhost:4317"
	defaultOTelLogEndpoint    = "localhost:4317"
)

var (
	ErrMissingDSN      = errors.New("DB_DSN is required but not set")
	ErrUnknownDriver   = errors.New("unknown DB_DRIVER")
	ErrInvalidSetting  = errors.New("invalid configuration value")
	ErrUnknownEnv      = errors.New("unknown CIRCULATION_ENV")
	ErrEmptyTableName  = errors.New("EVENTS_TABLE must not be empty")
	ErrInvalidInterval = errors.New("REMINDER_INTERVAL must be positive")
)

type Config struct {
	Environment      string
	DSN              string
	ReplicaDSN       string
	Driver           Driver
	EventsTable      string
	Rates            rules.PenaltyRates
	ReminderInterval time.Duration
	OTel             OTelConfig
}

type OTelConfig struct {
	Enabled        bool
	TraceEndpoint  string
	MetricEndpoint string
	LogEndpoint    string
}

// Load reads an optional .env file, then the process environment.
// A missing .env file is not an error; variables already set in the environment win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any key lookup, e.g. os.LookupEnv or a map in tests.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}

		return fallback
	}

	cfg := Config{
		Environment: get(keyEnv, EnvDevelopment),
		DSN:         get(keyDSN, ""),
		ReplicaDSN:  get(keyReplicaDSN, ""),
		Driver:      Driver(get(keyDriver, string(DriverPGX))),
		EventsTable: get(keyEventsTable, defaultEventsTable),
		OTel: OTelConfig{
			TraceEndpoint:  get(keyOTelTraceEndpoint, defaultOTelTraceEndpoint),
			MetricEndpoint: get(keyOTelMetricEndpoint, defaultOTelMetricEndpoint),
			LogEndpoint:    get(keyOTelLogEndpoint, defaultOTelLogEndpoint),
		},
	}

	var err error

	if cfg.Rates.PerDay, err = parseAmount(keyFinePerDay, get(keyFinePerDay, defaultFinePerDay)); err != nil {
		return Config{}, err
	}

	if cfg.Rates.ReplacementCost, err = parseAmount(keyReplacementCost, get(keyReplacementCost, defaultReplacementCost)); err != nil {
		return Config{}, err
	}

	if cfg.Rates.DamageFee, err = parseAmount(keyDamageFee, get(keyDamageFee, defaultDamageFee)); err != nil {
		return Config{}, err
	}

	cfg.ReminderInterval = defaultReminderInterval
	if raw := get(keyReminderInterval, ""); raw != "" {
		if cfg.ReminderInterval, err = time.ParseDuration(raw); err != nil {
			return Config{}, errors.Join(ErrInvalidSetting, fmt.Errorf("%s: %w", keyReminderInterval, err))
		}
	}

	if cfg.OTel.Enabled, err = strconv.ParseBool(get(keyOTelEnabled, "false")); err != nil {
		return Config{}, errors.Join(ErrInvalidSetting, fmt.Errorf("%s: %w", keyOTelEnabled, err))
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Environment {
	case EnvProduction, EnvDevelopment:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEnv, c.Environment)
	}

	switch c.Driver {
	case DriverPGX, DriverSQL, DriverSQLX:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Driver)
	}

	if c.EventsTable == "" {
		return ErrEmptyTableName
	}

	if c.ReminderInterval <= 0 {
		return ErrInvalidInterval
	}

	return c.Rates.Validate()
}

// RequireDSN is checked by the commands that talk to the database; the demo runs without one.
func (c Config) RequireDSN() error {
	if c.DSN == "" {
		return ErrMissingDSN
	}

	return nil
}

func (c Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

func parseAmount(key, raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.Join(ErrInvalidSetting, fmt.Errorf("%s: %w", key, err))
	}

	return amount, nil
}
