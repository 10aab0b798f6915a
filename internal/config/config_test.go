package config

import (
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ORIGIN", "APP_ENV", "LOG_LEVEL", "DB_DRIVER", "DB_HOST", "DB_PORT",
		"DB_USERNAME", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_PATH",
		"DELETE_POLICY", "ROSTER_SOURCE", "AUTO_MIGRATE", "APP_TIMEZONE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "5000")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DELETE_POLICY", "orphan")
	t.Setenv("ROSTER_SOURCE", "static")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("expected port 5000, got %q", cfg.Port)
	}
	if cfg.DeletePolicy != DeleteOrphan {
		t.Errorf("expected orphan delete policy, got %q", cfg.DeletePolicy)
	}
	if cfg.Database.Port != "5432" {
		t.Errorf("expected postgres default port, got %q", cfg.Database.Port)
	}
	if !strings.Contains(cfg.Database.DSN, "port=5432") {
		t.Errorf("expected DSN to carry the port, got %q", cfg.Database.DSN)
	}
	if cfg.Location != time.UTC {
		t.Errorf("expected UTC default location, got %v", cfg.Location)
	}
}

func TestLoadConfig_Timezone(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "5000")
	t.Setenv("APP_TIMEZONE", "Asia/Kolkata")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Location == nil || cfg.Location.String() != "Asia/Kolkata" {
		t.Errorf("expected Asia/Kolkata, got %v", cfg.Location)
	}

	t.Setenv("APP_TIMEZONE", "Mars/Olympus")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestLoadConfig_MySQLDSN(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "5000")
	t.Setenv("DELETE_POLICY", "cascade")
	t.Setenv("ROSTER_SOURCE", "database")
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("DB_USERNAME", "ward")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "nursing")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "ward:secret@tcp(db:3306)/nursing?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true"
	if cfg.Database.DSN != want {
		t.Errorf("expected %q, got %q", want, cfg.Database.DSN)
	}
	if cfg.DeletePolicy != DeleteCascade {
		t.Errorf("expected cascade, got %q", cfg.DeletePolicy)
	}
	if cfg.RosterSource != RosterDatabase {
		t.Errorf("expected database roster, got %q", cfg.RosterSource)
	}
}

func TestLoadConfig_SQLitePath(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "5000")
	t.Setenv("DELETE_POLICY", "restrict")
	t.Setenv("ROSTER_SOURCE", "static")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/ward.db")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.DSN != "/tmp/ward.db" {
		t.Errorf("expected sqlite path as DSN, got %q", cfg.Database.DSN)
	}
}

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "5000")
	t.Setenv("DB_DRIVER", "oracle")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Port: "5000", DeletePolicy: DeleteOrphan, RosterSource: RosterStatic}, false},
		{"bad policy", Config{Port: "5000", DeletePolicy: "purge", RosterSource: RosterStatic}, true},
		{"bad roster", Config{Port: "5000", DeletePolicy: DeleteRestrict, RosterSource: "ldap"}, true},
		{"empty port", Config{DeletePolicy: DeleteCascade, RosterSource: RosterStatic}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
