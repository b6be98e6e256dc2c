package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // postgres (default) или mysql
		DSN    string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // минуты
	} `yaml:"jwt"`

	Auth struct {
		MaxFailedAttempts int `yaml:"max_failed_attempts"`
		LockoutMinutes    int `yaml:"lockout_minutes"`
	} `yaml:"auth"`

	Tasks struct {
		CooldownHours int `yaml:"cooldown_hours"`
	} `yaml:"tasks"`

	Review struct {
		// TwoStage включает промежуточный статус received
		// (pending -> received -> approved/rejected).
		TwoStage bool `yaml:"two_stage"`
	} `yaml:"review"`

	Wallet struct {
		MinWithdrawal float64 `yaml:"min_withdrawal"`
	} `yaml:"wallet"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	FirstAdminEmail    string
	FirstAdminPassword string
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")
	serverEnv := os.Getenv("SERVER_ENV")
	portStr := os.Getenv("SERVER_PORT")
	jwtSecret := os.Getenv("JWT_SECRET")

	if dbURL == "" {
		log.Println("Загрузка из config.yaml (режим НЕ-тест)")

		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	log.Println("Загрузка конфигурации из переменных окружения (режим теста)")

	cfg.Database.DSN = dbURL
	cfg.Database.Driver = os.Getenv("DATABASE_DRIVER")
	cfg.Server.Env = serverEnv
	cfg.Server.Port, _ = strconv.Atoi(portStr)
	cfg.JWT.Secret = jwtSecret
	cfg.JWT.TTL = 60

	cfg.Email.SMTPHost = "smtp.test.com"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = "test@takaearn.app"
	cfg.Email.FromName = "TakaEarn"

	// Двухэтапное ревью включено в тестах, чтобы путь через received
	// был покрыт интеграционными тестами.
	cfg.Review.TwoStage = true

	applyDefaults(&cfg)
	AppConfig = &cfg
}

// applyDefaults подставляет бизнес-константы, если они не заданы.
// Значения по умолчанию: блокировка после 3 неудач на 60 минут,
// кулдаун на задание 12 часов, минимальный вывод 100.
func applyDefaults(cfg *Config) {
	if cfg.Auth.MaxFailedAttempts == 0 {
		cfg.Auth.MaxFailedAttempts = 3
	}
	if cfg.Auth.LockoutMinutes == 0 {
		cfg.Auth.LockoutMinutes = 60
	}
	if cfg.Tasks.CooldownHours == 0 {
		cfg.Tasks.CooldownHours = 12
	}
	if cfg.Wallet.MinWithdrawal == 0 {
		cfg.Wallet.MinWithdrawal = 100
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}

	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
