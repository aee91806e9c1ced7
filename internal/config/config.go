package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Auth      AuthConfig
	Shift     ShiftConfig
	Payroll   PayrollConfig
	Allowance AllowanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
	Timezone    string
}

// AuthConfig holds the shared admin password gate.
// AdminPasswordHash is a bcrypt hash; there are no per-user accounts.
type AuthConfig struct {
	AdminPasswordHash string
}

// ShiftConfig holds the shift policy knobs.
type ShiftConfig struct {
	EarlyBirdCutoff       string // "HH:MM"; clocking in before this shortens the shift
	EarlyBirdReductionMin int
	LateBufferMin         int
}

// PayrollConfig holds payroll calculation constants.
type PayrollConfig struct {
	LatePenalty decimal.Decimal // flat deduction per late day
}

// AllowanceConfig holds the monthly free-consumption quotas and the
// item names counting against each category.
type AllowanceConfig struct {
	DrinkAllowance int
	MealAllowance  int
	DrinkItems     []string
	MealItems      []string
}

func Load() (*Config, error) {
	// A missing .env is fine in production; env vars win either way.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	dbMinConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "brewhr"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(dbMaxConns),
		MinConns: int32(dbMinConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		Timezone:    getEnv("APP_TIMEZONE", "Asia/Kolkata"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	config.Auth = AuthConfig{
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	// Shift policy configuration
	earlyBirdReduction, err := strconv.Atoi(getEnv("EARLY_BIRD_REDUCTION_MINUTES", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid EARLY_BIRD_REDUCTION_MINUTES: %w", err)
	}
	lateBuffer, err := strconv.Atoi(getEnv("LATE_BUFFER_MINUTES", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid LATE_BUFFER_MINUTES: %w", err)
	}
	config.Shift = ShiftConfig{
		EarlyBirdCutoff:       getEnv("EARLY_BIRD_CUTOFF", "10:15"),
		EarlyBirdReductionMin: earlyBirdReduction,
		LateBufferMin:         lateBuffer,
	}

	// Payroll configuration
	latePenalty, err := decimal.NewFromString(getEnv("LATE_PENALTY", "50"))
	if err != nil {
		return nil, fmt.Errorf("invalid LATE_PENALTY: %w", err)
	}
	config.Payroll = PayrollConfig{LatePenalty: latePenalty}

	// Allowance configuration
	drinkAllowance, err := strconv.Atoi(getEnv("DRINK_ALLOWANCE", "6"))
	if err != nil {
		return nil, fmt.Errorf("invalid DRINK_ALLOWANCE: %w", err)
	}
	mealAllowance, err := strconv.Atoi(getEnv("MEAL_ALLOWANCE", "6"))
	if err != nil {
		return nil, fmt.Errorf("invalid MEAL_ALLOWANCE: %w", err)
	}
	config.Allowance = AllowanceConfig{
		DrinkAllowance: drinkAllowance,
		MealAllowance:  mealAllowance,
		DrinkItems:     getEnvSlice("DRINK_ITEMS", "Espresso,Latte,Cappuccino,Americano,Cold Brew,Chai,Hot Chocolate"),
		MealItems:      getEnvSlice("MEAL_ITEMS", "Sandwich,Croissant,Salad,Pasta,Quiche,Muffin"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Auth.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.App.Timezone, err)
	}
	return nil
}

// Location returns the configured application timezone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
