package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"
)

// SysConfig holds process-level settings.
type SysConfig struct {
	Appid    string `json:"appid"`
	Location string `json:"location"`
	Workdir  string `json:"workdir"`
	Debug    bool   `json:"debug"`
}

// WebConfig holds the admin API listener settings.
type WebConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Mode       string `json:"mode"`
	FileEnable bool   `json:"file_enable"`
	Filename   string `json:"filename"`
}

// DBConfig holds storage backend settings. Type selects the backend:
// "bolt" (default, single-file key-value store), "sqlite" or "postgres".
type DBConfig struct {
	Type    string `json:"type"`
	Path    string `json:"path"`
	Host    string `json:"host"`
	Port    int    `json:"port"`
	Name    string `json:"name"`
	User    string `json:"user"`
	Passwd  string `json:"passwd"`
	Debug   bool   `json:"debug"`
	MaxConn int    `json:"max_conn"`
}

// SalesConfig holds billing behavior toggles.
type SalesConfig struct {
	// StrictStock clamps cart quantities to available stock and rejects
	// invoices that would drive stock negative. Off by default, matching
	// the historical oversell behavior.
	StrictStock bool `json:"strict_stock"`
}

type AppConfig struct {
	System   SysConfig   `json:"system"`
	Web      WebConfig   `json:"web"`
	Logger   LogConfig   `json:"logger"`
	Database DBConfig    `json:"database"`
	Sales    SalesConfig `json:"sales"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "ToughPOS",
		Location: "America/Bogota",
		Workdir:  "/var/toughpos",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "127.0.0.1",
		Port: 1890,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/toughpos/toughpos.log",
	},
	Database: DBConfig{
		Type:    "bolt",
		Path:    "/var/toughpos/toughpos.db",
		Host:    "127.0.0.1",
		Port:    5432,
		Name:    "toughpos",
		User:    "postgres",
		MaxConn: 10,
	},
	Sales: SalesConfig{
		StrictStock: false,
	},
}

func setEnvValue(name string, f func(v string)) {
	if evalue, ok := os.LookupEnv(name); ok {
		f(evalue)
	}
}

// LoadConfig reads the configuration file when present and applies
// TOUGHPOS_* environment overrides on top of the defaults.
func LoadConfig(cfile string) *AppConfig {
	_ = godotenv.Load()

	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig

	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = jsoniter.Unmarshal(data, cfg)
		}
	}

	setEnvValue("TOUGHPOS_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("TOUGHPOS_SYSTEM_LOCATION", func(v string) { cfg.System.Location = v })
	setEnvValue("TOUGHPOS_SYSTEM_DEBUG", func(v string) { cfg.System.Debug = cast.ToBool(v) })
	setEnvValue("TOUGHPOS_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvValue("TOUGHPOS_WEB_PORT", func(v string) { cfg.Web.Port = cast.ToInt(v) })
	setEnvValue("TOUGHPOS_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })
	setEnvValue("TOUGHPOS_LOGGER_FILE_ENABLE", func(v string) { cfg.Logger.FileEnable = cast.ToBool(v) })
	setEnvValue("TOUGHPOS_LOGGER_FILENAME", func(v string) { cfg.Logger.Filename = v })
	setEnvValue("TOUGHPOS_DB_TYPE", func(v string) { cfg.Database.Type = v })
	setEnvValue("TOUGHPOS_DB_PATH", func(v string) { cfg.Database.Path = v })
	setEnvValue("TOUGHPOS_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvValue("TOUGHPOS_DB_PORT", func(v string) { cfg.Database.Port = cast.ToInt(v) })
	setEnvValue("TOUGHPOS_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("TOUGHPOS_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("TOUGHPOS_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvValue("TOUGHPOS_SALES_STRICT_STOCK", func(v string) { cfg.Sales.StrictStock = cast.ToBool(v) })

	if cfg.Database.Path == "" {
		cfg.Database.Path = filepath.Join(cfg.System.Workdir, "toughpos.db")
	}

	return cfg
}
