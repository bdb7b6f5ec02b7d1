package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Database string `yaml:"database"`
		SSLMode  string `yaml:"ssl_mode"`
	} `yaml:"database"`
}

type Vehicle struct {
	Slug         string `yaml:"slug"`
	Name         string `yaml:"name"`
	Category     string `yaml:"category"`
	Seats        int    `yaml:"seats"`
	Transmission string `yaml:"transmission"`
	PricePerDay  int64  `yaml:"price_per_day"`
	Available    bool   `yaml:"available"`
	ImageURL     string `yaml:"image_url"`
}

type Service struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	PricePerDay     int64  `yaml:"price_per_day"`
	IsIncluded      bool   `yaml:"is_included"`
	QuantityCapable bool   `yaml:"quantity_capable"`
	MaxQuantity     int    `yaml:"max_quantity"`
	Icon            string `yaml:"icon"`
}

type Location struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	AirportDelivery bool   `yaml:"airport_delivery"`
}

type AdminUser struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
}

type SetupData struct {
	ConfigFile string      `yaml:"config_file"`
	Vehicles   []Vehicle   `yaml:"vehicles"`
	Services   []Service   `yaml:"services"`
	Locations  []Location  `yaml:"locations"`
	AdminUsers []AdminUser `yaml:"admin_users"`
}

func main() {
	// Read the setup YAML file
	setupFile := "tests/data-setup/fleet.yaml"

	// Check if file exists, if not try relative path
	if _, err := os.Stat(setupFile); os.IsNotExist(err) {
		setupFile = "fleet.yaml"
	}

	setupData, err := readSetupFile(setupFile)
	if err != nil {
		log.Fatalf("Failed to read setup file: %v", err)
	}

	// Read the config file
	configPath := resolveConfigPath(setupData.ConfigFile)
	config, err := readConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	// Connect to database
	db, err := connectDB(config)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Populate data
	if err := populateData(db, setupData); err != nil {
		log.Fatalf("Failed to populate data: %v", err)
	}

	log.Println("✅ Test data successfully populated!")
}

func readSetupFile(filename string) (*SetupData, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var setupData SetupData
	if err := yaml.Unmarshal(data, &setupData); err != nil {
		return nil, err
	}

	return &setupData, nil
}

func resolveConfigPath(configPath string) string {
	// Try the path as-is first
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	// Try from project root
	projectRoot := findProjectRoot()
	fullPath := filepath.Join(projectRoot, configPath)
	if _, err := os.Stat(fullPath); err == nil {
		return fullPath
	}

	// Return original path and let it fail with a clear error
	return configPath
}

func findProjectRoot() string {
	// Look for go.mod to identify project root
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "."
}

func readConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func connectDB(config *Config) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Database.Host,
		config.Database.Port,
		config.Database.User,
		config.Database.Password,
		config.Database.Database,
		config.Database.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("✓ Connected to database: %s@%s:%d/%s",
		config.Database.User,
		config.Database.Host,
		config.Database.Port,
		config.Database.Database)

	return db, nil
}

func populateData(db *sql.DB, data *SetupData) error {
	// Start transaction
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Create vehicles
	for _, v := range data.Vehicles {
		log.Printf("Creating vehicle: %s", v.Name)
		_, err := tx.Exec(`
			INSERT INTO vehicles (slug, name, category, seats, transmission, price_per_day, available, image_url, created_on, updated_on)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
			ON CONFLICT (slug) DO NOTHING
		`, v.Slug, v.Name, v.Category, v.Seats, v.Transmission, v.PricePerDay, v.Available, v.ImageURL)
		if err != nil {
			return fmt.Errorf("failed to create vehicle %s: %w", v.Slug, err)
		}
	}

	// 2. Create additional services
	for _, s := range data.Services {
		log.Printf("Creating service: %s", s.Name)
		_, err := tx.Exec(`
			INSERT INTO additional_services (id, name, price_per_day, is_included, quantity_capable, max_quantity, icon, active, created_on, updated_on)
			VALUES ($1, $2, $3, $4, $5, $6, $7, true, NOW(), NOW())
			ON CONFLICT (id) DO NOTHING
		`, s.ID, s.Name, s.PricePerDay, s.IsIncluded, s.QuantityCapable, s.MaxQuantity, s.Icon)
		if err != nil {
			return fmt.Errorf("failed to create service %s: %w", s.ID, err)
		}
	}

	// 3. Create locations
	for _, l := range data.Locations {
		log.Printf("Creating location: %s", l.Name)
		_, err := tx.Exec(`
			INSERT INTO locations (id, name, airport_delivery, active, created_on)
			VALUES ($1, $2, $3, true, NOW())
			ON CONFLICT (id) DO NOTHING
		`, l.ID, l.Name, l.AirportDelivery)
		if err != nil {
			return fmt.Errorf("failed to create location %s: %w", l.ID, err)
		}
	}

	// 4. Create admin users with hashed passwords
	for _, u := range data.AdminUsers {
		log.Printf("Creating admin user: %s", u.Email)
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", u.Email, err)
		}
		_, err = tx.Exec(`
			INSERT INTO admin_users (email, name, password_hash, role, created_on)
			VALUES ($1, $2, $3, $4, NOW())
			ON CONFLICT (email) DO NOTHING
		`, u.Email, u.Name, string(hash), u.Role)
		if err != nil {
			return fmt.Errorf("failed to create admin user %s: %w", u.Email, err)
		}
	}

	return tx.Commit()
}
