// Package conf loads runtime configuration from environment variables with
// an optional local .env file.
package conf

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
	HTTP  HTTPConfig
}

type AppConfig struct {
	Port string

	// IDSalt seeds the short-id generator for users, teams and messages.
	IDSalt string
}

type StoreConfig struct {
	// Driver selects the backend: "csv" (flat files) or "sqlite".
	Driver string

	// DataDir holds the CSV tables when Driver is "csv".
	DataDir string

	// SQLitePath is the database file when Driver is "sqlite".
	SQLitePath string
}

type HTTPConfig struct {
	// CORSOrigins is the browser origin allow-list.
	CORSOrigins []string
}

const (
	DriverCSV    = "csv"
	DriverSQLite = "sqlite"
)

func LoadConfig() *Config {
	v := viper.New()

	v.SetDefault("APP_PORT", "8000")
	v.SetDefault("ID_SALT", "impact-hub")
	v.SetDefault("STORE_DRIVER", DriverCSV)
	v.SetDefault("DATA_DIR", ".")
	v.SetDefault("SQLITE_PATH", "impact_hub.db")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	var c Config
	c.App.Port = v.GetString("APP_PORT")
	c.App.IDSalt = v.GetString("ID_SALT")
	c.Store.Driver = v.GetString("STORE_DRIVER")
	c.Store.DataDir = v.GetString("DATA_DIR")
	c.Store.SQLitePath = v.GetString("SQLITE_PATH")
	c.HTTP.CORSOrigins = splitOrigins(v.GetString("CORS_ORIGINS"))
	return &c
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
