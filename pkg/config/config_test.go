package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, StoragePostgres, cfg.App.Storage)
	assert.Equal(t, "UTC", cfg.App.Timezone)
	assert.Equal(t, "allow", cfg.Stock.OversellPolicy)
	assert.False(t, cfg.Cache.Enabled())
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "postgres://postgres:@localhost:5432/pos?sslmode=disable", cfg.DB.ConnectionString())
	assert.EqualValues(t, 10, cfg.DB.MaxConns)
	assert.EqualValues(t, 1, cfg.DB.MinConns)
}

func TestFromViper_LeeValoresExplicitos(t *testing.T) {
	v := viper.New()
	v.Set("APP_STORAGE", "MEMORY")
	v.Set("APP_TIMEZONE", "America/Bogota")
	v.Set("DB_AUTO_MIGRATE", "true")
	v.Set("DB_PORT", "6543")
	v.Set("DB_MAX_CONNS", "4")
	v.Set("REDIS_URL", "redis://localhost:6379/1")
	v.Set("CACHE_TTL_SECONDS", "30")
	v.Set("STOCK_OVERSELL_POLICY", "Reject")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.App.Storage)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.EqualValues(t, 4, cfg.DB.MaxConns)
	assert.True(t, cfg.Cache.Enabled())
	assert.Equal(t, "30s", cfg.Cache.TTL().String())
	assert.Equal(t, "reject", cfg.Stock.OversellPolicy)

	loc, err := cfg.App.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Bogota", loc.String())
}

func TestFromViper_RechazaValoresInvalidos(t *testing.T) {
	v := viper.New()
	v.Set("APP_STORAGE", "sqlite")
	_, err := fromViper(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set("APP_TIMEZONE", "Marte/Olympus")
	_, err = fromViper(v)
	assert.Error(t, err)
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "pos", Password: "p@ss:w/rd", DBName: "pos", SSLMode: "require"}
	assert.Equal(t, "postgres://pos:p%40ss%3Aw%2Frd@db:5432/pos?sslmode=require", c.DSN())
}
