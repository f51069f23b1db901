package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del gateway (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Upstream UpstreamConfig
	JWT      JWTConfig
	Session  SessionConfig
	Screen   ScreenConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	Locale   string // BCP 47, ej. en-IN; se usa para formatear montos en reportes
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

// UpstreamConfig API REST remota del inventario.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// JWTConfig token de sesión que emite el gateway (no el de la API remota).
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// SessionConfig almacén de sesiones: memory o redis.
type SessionConfig struct {
	Backend       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// ScreenConfig estado por pantalla que conserva el último valor conocido.
type ScreenConfig struct {
	StateTTL   time.Duration
	MaxEntries int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, IMS_API_URL, JWT_SECRET, etc.
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

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "ims-client"),
			Locale:   getString(v, "APP_LOCALE", "en-IN"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Upstream: UpstreamConfig{
			BaseURL: strings.TrimRight(getString(v, "IMS_API_URL", "https://ims-backend-bay.vercel.app/api"), "/"),
			Timeout: time.Duration(getInt(v, "IMS_API_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 720),
			Issuer:     getString(v, "JWT_ISSUER", "ims-client"),
		},
		Session: SessionConfig{
			Backend:       getString(v, "SESSION_BACKEND", "memory"),
			RedisAddr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			RedisPassword: getString(v, "REDIS_PASSWORD", ""),
			RedisDB:       getInt(v, "REDIS_DB", 0),
		},
		Screen: ScreenConfig{
			StateTTL:   time.Duration(getInt(v, "SCREEN_STATE_TTL_SECONDS", 900)) * time.Second,
			MaxEntries: getInt(v, "SCREEN_STATE_MAX_ENTRIES", 1024),
		},
	}

	return cfg, nil
}

// Validate revisa la configuración y devuelve todos los problemas en un único error.
func (c *Config) Validate() error {
	var problems []string

	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		problems = append(problems, fmt.Sprintf("HTTP_PORT inválido %d: debe estar entre 1 y 65535", c.HTTP.Port))
	}

	if u, err := url.Parse(c.Upstream.BaseURL); err != nil || u.Host == "" {
		problems = append(problems, fmt.Sprintf("IMS_API_URL inválida '%s'", c.Upstream.BaseURL))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		problems = append(problems, fmt.Sprintf("IMS_API_URL con esquema '%s': debe ser http o https", u.Scheme))
	}
	if c.Upstream.Timeout <= 0 {
		problems = append(problems, "IMS_API_TIMEOUT_SECONDS debe ser mayor que 0")
	}

	if c.JWT.Secret == "" {
		problems = append(problems, "JWT_SECRET es obligatorio")
	}
	if c.JWT.Expiration < 1 {
		problems = append(problems, fmt.Sprintf("JWT_EXPIRATION_MINUTES inválido %d", c.JWT.Expiration))
	}

	switch c.Session.Backend {
	case "memory":
	case "redis":
		if c.Session.RedisAddr == "" {
			problems = append(problems, "REDIS_ADDR es obligatorio con SESSION_BACKEND=redis")
		}
	default:
		problems = append(problems, fmt.Sprintf("SESSION_BACKEND inválido '%s': debe ser memory o redis", c.Session.Backend))
	}

	if c.Screen.MaxEntries < 1 {
		problems = append(problems, fmt.Sprintf("SCREEN_STATE_MAX_ENTRIES inválido %d", c.Screen.MaxEntries))
	}
	if c.Screen.StateTTL < time.Second {
		problems = append(problems, "SCREEN_STATE_TTL_SECONDS debe ser al menos 1")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuración inválida:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
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
