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
	Backend   BackendConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
	Dashboard DashboardConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// BackendConfig configuración del backend REST de datos (API estilo Django).
// El servicio se autentica con un token de servicio fijo; no hay sesión
// ambiental: el token vive aquí y se inyecta al cliente HTTP al construirlo.
type BackendConfig struct {
	BaseURL      string        // ej: https://erp.example.com (se normaliza a .../api)
	ServiceToken string        // va en el header "Authorization: Token <...>"
	Timeout      time.Duration // timeout por request; 0 = sin límite
}

// JWTConfig configuración de validación de tokens de los usuarios del dashboard.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos (solo para emisión en desarrollo)
	Issuer     string
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

// DashboardConfig parámetros del motor de agregación.
type DashboardConfig struct {
	// Timezone es la zona horaria de negocio para truncar "día calendario"
	// (ingresos por fecha, ventanas hoy/ayer/semana/mes). Una sola zona para
	// todos los usuarios; nunca la del cliente. Default: UTC.
	Timezone string
	// TopSuppliers cuántos proveedores devuelve el widget de top proveedores.
	TopSuppliers int
}

// Location resuelve la zona horaria de negocio; cae a UTC si es inválida.
func (c DashboardConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_BASE_URL, JWT_SECRET, etc.
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
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "insights-api"),
		},
		Backend: BackendConfig{
			BaseURL:      getString(v, "BACKEND_BASE_URL", "http://127.0.0.1:8000"),
			ServiceToken: getString(v, "BACKEND_SERVICE_TOKEN", ""),
			Timeout:      time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "insights-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Dashboard: DashboardConfig{
			Timezone:     getString(v, "DASHBOARD_TIMEZONE", "UTC"),
			TopSuppliers: getInt(v, "DASHBOARD_TOP_SUPPLIERS", 5),
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
