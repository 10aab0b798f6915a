package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DeletePolicy decides what happens to therapy schedules and vitals when
// the patient they reference is deleted.
type DeletePolicy string

const (
	// DeleteOrphan removes only the patient row; dependents stay behind.
	DeleteOrphan DeletePolicy = "orphan"
	// DeleteCascade removes the patient and every dependent row in one transaction.
	DeleteCascade DeletePolicy = "cascade"
	// DeleteRestrict refuses to delete a patient that still has dependents.
	DeleteRestrict DeletePolicy = "restrict"
)

// RosterSource selects where shift assignments are read from.
type RosterSource string

const (
	RosterStatic   RosterSource = "static"
	RosterDatabase RosterSource = "database"
)

// Database drivers understood by models.InitDB.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for our application
type Config struct {
	Port         string
	Origin       string
	Environment  string
	LogLevel     string
	Database     DatabaseConfig
	DeletePolicy DeletePolicy
	RosterSource RosterSource
	AutoMigrate  bool
	// Location interprets scheduled times that carry no zone offset.
	Location *time.Location
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	SSLMode  string
	Path     string
	DSN      string
}

// LoadConfig loads configuration from an optional .env file and the process
// environment. Values already present in the environment win over .env.
func LoadConfig() (*Config, error) {
	// A missing .env is fine; containers configure through the environment.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("ORIGIN", "http://localhost:3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "postgres")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_PATH", "nursing.db")
	v.SetDefault("DELETE_POLICY", string(DeleteOrphan))
	v.SetDefault("ROSTER_SOURCE", string(RosterStatic))
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("APP_TIMEZONE", "UTC")

	dbConfig := DatabaseConfig{
		Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
		Host:     v.GetString("DB_HOST"),
		Port:     v.GetString("DB_PORT"),
		Username: v.GetString("DB_USERNAME"),
		Password: v.GetString("DB_PASSWORD"),
		Name:     v.GetString("DB_NAME"),
		SSLMode:  v.GetString("DB_SSLMODE"),
		Path:     v.GetString("DB_PATH"),
	}

	dsn, err := buildDSN(&dbConfig)
	if err != nil {
		return nil, err
	}
	dbConfig.DSN = dsn

	loc, err := time.LoadLocation(v.GetString("APP_TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("APP_TIMEZONE: %w", err)
	}

	cfg := &Config{
		Port:         v.GetString("PORT"),
		Origin:       v.GetString("ORIGIN"),
		Environment:  v.GetString("APP_ENV"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		Database:     dbConfig,
		DeletePolicy: DeletePolicy(strings.ToLower(v.GetString("DELETE_POLICY"))),
		RosterSource: RosterSource(strings.ToLower(v.GetString("ROSTER_SOURCE"))),
		AutoMigrate:  v.GetBool("AUTO_MIGRATE"),
		Location:     loc,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects enumerated settings with unknown values.
func (c *Config) Validate() error {
	switch c.DeletePolicy {
	case DeleteOrphan, DeleteCascade, DeleteRestrict:
	default:
		return fmt.Errorf("DELETE_POLICY must be %q, %q or %q, got %q",
			DeleteOrphan, DeleteCascade, DeleteRestrict, c.DeletePolicy)
	}

	switch c.RosterSource {
	case RosterStatic, RosterDatabase:
	default:
		return fmt.Errorf("ROSTER_SOURCE must be %q or %q, got %q", RosterStatic, RosterDatabase, c.RosterSource)
	}

	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	return nil
}

// IsDev reports whether the server runs in development mode.
func (c *Config) IsDev() bool {
	return c.Environment == "development"
}

func buildDSN(db *DatabaseConfig) (string, error) {
	switch db.Driver {
	case DriverPostgres:
		if db.Port == "" {
			db.Port = "5432"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			db.Host, db.Username, db.Password, db.Name, db.Port, db.SSLMode), nil
	case DriverMySQL:
		if db.Port == "" {
			db.Port = "3306"
		}
		// Build DSN (Data Source Name) for MySQL connection
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true",
			db.Username, db.Password, db.Host, db.Port, db.Name), nil
	case DriverSQLite:
		return db.Path, nil
	default:
		return "", fmt.Errorf("DB_DRIVER must be %q, %q or %q, got %q",
			DriverPostgres, DriverMySQL, DriverSQLite, db.Driver)
	}
}
