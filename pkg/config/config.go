package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App AppConfig
	API APIConfig
	UI  UIConfig
	Log LogConfig
	Dev DevConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig backend REST que consume el cliente.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int // 0 = sin timeout
}

// Timeout duración del timeout HTTP (cero deshabilita).
func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// UIConfig presentación de las pantallas.
type UIConfig struct {
	PageSize int // tamaño de página del grid de stock
}

// LogConfig salida y nivel del log.
type LogConfig struct {
	Level string
	File  string // archivo de log para el modo TUI
}

// DevConfig servidor de desarrollo local.
type DevConfig struct {
	Addr   string
	DBPath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo .env). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, API_BASE_URL, UI_PAGE_SIZE, LOG_LEVEL, DEV_ADDR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "beanbrews-backoffice"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", "http://127.0.0.1:8000"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 0),
		},
		UI: UIConfig{
			PageSize: getInt(v, "UI_PAGE_SIZE", 8),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
			File:  getString(v, "LOG_FILE", "backoffice.log"),
		},
		Dev: DevConfig{
			Addr:   getString(v, "DEV_ADDR", "127.0.0.1:8000"),
			DBPath: getString(v, "DEV_DB_PATH", "database.db"),
		},
	}

	return cfg, nil
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
