package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	JWT       JWTConfig
	Auth      AuthConfig
	Leads     LeadsConfig
	Export    ExportConfig
	FollowUps FollowUpsConfig
	Events    EventsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AuthConfig configuración del directorio de usuarios demo.
// No es un límite de seguridad: los dos usuarios comparten la misma contraseña.
type AuthConfig struct {
	DemoPassword string
	SeedDemoData bool // carga leads, seguimientos y proyectos de ejemplo al arrancar
}

// LeadsConfig reglas del ciclo de vida de los leads.
type LeadsConfig struct {
	// StrictTransitions activa la máquina de estados
	// pending → {contacted, rejected}, contacted → {approved, rejected}.
	StrictTransitions bool
}

// ExportConfig formato de fechas para CSV/PDF.
type ExportConfig struct {
	Timezone   string // nombre IANA o "Local"
	DateLayout string // layout de time.Format, por defecto fecha corta en-US
}

// Location resuelve la zona horaria de exportación. Si el nombre no es válido usa time.Local.
func (c ExportConfig) Location() *time.Location {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// FollowUpsConfig configuración del job de seguimientos vencidos.
type FollowUpsConfig struct {
	ScanSchedule string // expresión cron (robfig), vacío = deshabilitado
}

// EventsConfig publicación de eventos de dominio.
// Si AMQPURL está vacío los eventos solo se registran en el log.
type EventsConfig struct {
	AMQPURL  string
	Exchange string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "crm-leads"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "crm-leads"),
		},
		Auth: AuthConfig{
			DemoPassword: getString(v, "AUTH_DEMO_PASSWORD", "password"),
			SeedDemoData: getBool(v, "SEED_DEMO_DATA", true),
		},
		Leads: LeadsConfig{
			StrictTransitions: getBool(v, "LEADS_STRICT_TRANSITIONS", false),
		},
		Export: ExportConfig{
			Timezone:   getString(v, "EXPORT_TIMEZONE", "Local"),
			DateLayout: getString(v, "EXPORT_DATE_LAYOUT", "1/2/2006"),
		},
		FollowUps: FollowUpsConfig{
			ScanSchedule: getString(v, "FOLLOWUP_SCAN_SCHEDULE", "@every 15m"),
		},
		Events: EventsConfig{
			AMQPURL:  getString(v, "AMQP_URL", ""),
			Exchange: getString(v, "AMQP_EXCHANGE", "crm.events"),
		},
	}
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}
