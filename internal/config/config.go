package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings required by the panel.
type Config struct {
	AppName     string
	Environment string
	Backend     BackendConfig
	Clock       ClockConfig
	Chat        ChatConfig
	SmartHome   SmartHomeConfig
	Context     ContextConfig
	Logger      LoggerConfig
}

type BackendConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

type ClockConfig struct {
	TickInterval   time.Duration
	ResyncInterval time.Duration
}

type ChatConfig struct {
	HistoryLimit int
}

type SmartHomeConfig struct {
	Rooms []string
}

type ContextConfig struct {
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// defaultRooms matches the fixed room set the assistant exposes sensors for.
var defaultRooms = []string{"living_room", "bedroom", "kitchen", "bathroom", "office"}

// Load reads configuration from environment variables (optionally .env)
// and applies sane defaults so the panel can start anywhere.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName:     getString("APP_NAME", "ziggy-panel"),
		Environment: getString("APP_ENV", "development"),
		Backend: BackendConfig{
			BaseURL:        getString("ZIGGY_BACKEND_URL", "http://localhost:8000"),
			RequestTimeout: getDuration("ZIGGY_REQUEST_TIMEOUT", 10*time.Second),
		},
		Clock: ClockConfig{
			TickInterval:   getDuration("CLOCK_TICK_INTERVAL", time.Second),
			ResyncInterval: getDuration("CLOCK_RESYNC_INTERVAL", 30*time.Second),
		},
		Chat: ChatConfig{
			HistoryLimit: getInt("CHAT_HISTORY_LIMIT", 50),
		},
		SmartHome: SmartHomeConfig{
			Rooms: getStrings("SMARTHOME_ROOMS", defaultRooms),
		},
		Context: ContextConfig{
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "info"),
			Encoding: getString("LOG_ENCODING", "console"),
		},
	}

	return cfg, nil
}

// MustLoad panics if configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getStrings(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func getInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
