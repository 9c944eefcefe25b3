package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	c := LoadConfig()

	assert.Equal(t, "8000", c.App.Port)
	assert.Equal(t, DriverCSV, c.Store.Driver)
	assert.Equal(t, ".", c.Store.DataDir)
	assert.Equal(t, []string{"http://localhost:5173"}, c.HTTP.CORSOrigins)
}

func TestLoadConfig_EnvOverridesAndOriginList(t *testing.T) {
	t.Setenv("APP_PORT", "9001")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("CORS_ORIGINS", "https://hope.example.org, https://www.hope.example.org")

	c := LoadConfig()

	assert.Equal(t, "9001", c.App.Port)
	assert.Equal(t, DriverSQLite, c.Store.Driver)
	assert.Equal(t, []string{"https://hope.example.org", "https://www.hope.example.org"}, c.HTTP.CORSOrigins)
}

func TestSplitOrigins_DropsEmptyEntries(t *testing.T) {
	assert.Equal(t, []string{"http://a", "http://b"}, splitOrigins("http://a,,http://b,"))
	assert.Nil(t, splitOrigins(""))
}
