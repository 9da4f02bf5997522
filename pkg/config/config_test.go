package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "crm-leads", cfg.App.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "password", cfg.Auth.DemoPassword)
	assert.True(t, cfg.Auth.SeedDemoData)
	assert.False(t, cfg.Leads.StrictTransitions)
	assert.Equal(t, "1/2/2006", cfg.Export.DateLayout)
	assert.Equal(t, "crm.events", cfg.Events.Exchange)
	assert.Empty(t, cfg.Events.AMQPURL)
}

func TestFromViper_SobrescribeConValoresString(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("LEADS_STRICT_TRANSITIONS", "true")
	v.Set("SEED_DEMO_DATA", "false")
	v.Set("JWT_EXPIRATION_MINUTES", "no-es-numero")

	cfg := fromViper(v)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Leads.StrictTransitions)
	assert.False(t, cfg.Auth.SeedDemoData)
	assert.Equal(t, 60, cfg.JWT.Expiration, "un valor inválido debe caer al default")
}

func TestExportConfig_Location(t *testing.T) {
	assert.Equal(t, time.Local, ExportConfig{Timezone: "Local"}.Location())
	assert.Equal(t, time.Local, ExportConfig{Timezone: "Zona/Inexistente"}.Location())
	assert.Equal(t, "UTC", ExportConfig{Timezone: "UTC"}.Location().String())
}
