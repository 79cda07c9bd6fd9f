package database

import (
	"fmt"
	"net/url"
	"strings"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// URL is the full PostgreSQL connection URL
	URL string

	// SQLite-specific configuration
	Path string

	// MaxRetries bounds the connection attempts made by InitDatabase
	MaxRetries int
}

// ParseDatabaseURI builds a DatabaseConfig from a DB_URI value.
// Accepted forms are postgres:// and postgresql:// URLs, sqlite:///path URLs
// and bare SQLite file paths.
func ParseDatabaseURI(uri string) (DatabaseConfig, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return DatabaseConfig{}, fmt.Errorf("database URI is empty")
	}

	scheme, rest, hasScheme := strings.Cut(uri, "://")
	if !hasScheme {
		return DatabaseConfig{Driver: "sqlite", Path: uri}, nil
	}

	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		if _, err := url.Parse(uri); err != nil {
			return DatabaseConfig{}, fmt.Errorf("invalid postgres URI: %w", err)
		}
		return DatabaseConfig{Driver: "postgres", URL: uri}, nil
	case "sqlite", "sqlite3":
		// sqlite:///app.db is relative, sqlite:////tmp/app.db is absolute
		path := strings.TrimPrefix(rest, "/")
		if path == "" {
			return DatabaseConfig{}, fmt.Errorf("sqlite URI %q has no path", uri)
		}
		return DatabaseConfig{Driver: "sqlite", Path: path}, nil
	default:
		return DatabaseConfig{}, fmt.Errorf("unsupported database scheme: %s (supported: postgres, sqlite)", scheme)
	}
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, URL: %s, Path: %s, MaxRetries: %d}",
		c.Driver, redactURL(c.URL), c.Path, c.MaxRetries)
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case "postgres", "postgresql":
		return c.URL
	case "sqlite", "":
		return sqliteDSN(c.Path)
	default:
		return ""
	}
}

// sqliteDSN turns on foreign key enforcement for every pooled connection
func sqliteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys") {
		return path
	}
	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	return path + separator + "_foreign_keys=on"
}

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}
	return parsed.Redacted()
}
