package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config regroupe la configuration de la console (lecture via Viper depuis env et optionnellement fichier).
type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
}

// AppConfig configuration générale de l'application.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig configuration du backend Biosen.
type APIConfig struct {
	// BaseURL racine de l'API, ex. http://localhost:8000/api
	BaseURL string
	// StorageURL base de résolution des fichiers (logos, photos, images produits),
	// ex. http://localhost:8000/storage
	StorageURL string
	// Timeout réseau des appels HTTP, en secondes.
	TimeoutSeconds int
}

// Timeout renvoie le délai réseau sous forme de time.Duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionConfig emplacement de la session persistée (token + utilisateur).
type SessionConfig struct {
	// FilePath chemin du fichier de session. Vide = ~/.biosen/session.json
	FilePath string
}

// Path résout le chemin effectif du fichier de session.
func (c SessionConfig) Path() string {
	if c.FilePath != "" {
		return c.FilePath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".biosen-session.json"
	}
	return filepath.Join(home, ".biosen", "session.json")
}

// Load lit la configuration depuis les variables d'environnement (et optionnellement un fichier).
// Les env vars ont priorité. Noms attendus : APP_ENV, API_BASE_URL, API_TIMEOUT_SECONDS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optionnel : fichier de configuration (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // on ignore l'erreur si absent

	// Essaye aussi config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // on ignore l'erreur si absent

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "biosen-console"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", "http://localhost:8000/api"),
			StorageURL:     getString(v, "API_STORAGE_URL", "http://localhost:8000/storage"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 15),
		},
		Session: SessionConfig{
			FilePath: getString(v, "SESSION_FILE", ""),
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: API_BASE_URL vide")
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
