package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config carries everything that used to be read ad hoc from ambient
// client-local state: the branch the back office operates for, the
// warehouse (data-center) id stamped on damage-assessment calls, and the
// endpoints of the remote platform services.
type Config struct {
	HTTPPort string

	BranchID    string
	WarehouseID string

	DB Database

	KafkaBrokers []string
	AuditTopic   string

	InventoryBaseURL string
	CustomerBaseURL  string
	ProductBaseURL   string
	UploadBaseURL    string
	DamageBaseURL    string

	CustomerSearchDebounce time.Duration
}

type Database struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// Load reads .env from the working directory or its parents, then falls
// back to the process environment. A missing .env is not an error.
func Load() (*Config, error) {
	loadEnv()

	port, _ := strconv.Atoi(getenv("DB_PORT", "5432"))

	cfg := &Config{
		HTTPPort:    getenv("HTTP_PORT", "9000"),
		BranchID:    os.Getenv("BRANCH_ID"),
		WarehouseID: os.Getenv("WAREHOUSE_ID"),
		DB: Database{
			Host:     getenv("DB_HOST", "localhost"),
			Port:     port,
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			Name:     os.Getenv("POSTGRES_DB"),
		},
		AuditTopic:       getenv("AUDIT_TOPIC", "linen.audit"),
		InventoryBaseURL: os.Getenv("INVENTORY_BASE_URL"),
		CustomerBaseURL:  os.Getenv("CUSTOMER_BASE_URL"),
		ProductBaseURL:   os.Getenv("PRODUCT_BASE_URL"),
		UploadBaseURL:    os.Getenv("UPLOAD_BASE_URL"),
		DamageBaseURL:    os.Getenv("DAMAGE_BASE_URL"),

		CustomerSearchDebounce: 300 * time.Millisecond,
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	if cfg.BranchID == "" {
		return nil, fmt.Errorf("BRANCH_ID is required: created orders are stamped with it")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		zap.L().Warn("Could not determine working directory", zap.Error(err))
		return
	}

	possiblePaths := []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}

	for _, envPath := range possiblePaths {
		if err := godotenv.Load(envPath); err == nil {
			zap.L().Info("Loaded environment variables", zap.String("path", envPath))
			return
		}
	}
}
