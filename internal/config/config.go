// Package config reads the service settings from the environment.
//
// Variables from a local .env file are loaded by godotenv/autoload, which
// cmd/api imports before anything reads them.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreSQLite   = "sqlite"
)

var ErrInvalidStoreDriver = errors.New("invalid STORE_DRIVER")

// Tables holds the DynamoDB table names.
type Tables struct {
	Clients       string
	Services      string
	Plans         string
	Proposals     string
	ProposalItems string
	UserRoles     string
}

type DynamoDB struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Tables          Tables
}

type Document struct {
	Theme    string
	TimeZone string
}

type Brand struct {
	Name     string
	Initials string
	Contact  string
}

type Config struct {
	Port        int
	StoreDriver string
	SQLitePath  string
	DynamoDB    DynamoDB
	JWTSecret   string
	LogLevel    string
	Document    Document
	Brand       Brand
}

// Load reads the environment. Only values that cannot be parsed are errors;
// everything else falls back to a default.
func Load() (Config, error) {
	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil || port <= 0 {
		return Config{}, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}

	driver := strings.ToLower(getenvDefault("STORE_DRIVER", StoreDynamoDB))
	if driver != StoreDynamoDB && driver != StoreSQLite {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidStoreDriver, driver)
	}

	return Config{
		Port:        port,
		StoreDriver: driver,
		SQLitePath:  getenvDefault("SQLITE_PATH", "propostas.db"),
		DynamoDB: DynamoDB{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Tables: Tables{
				Clients:       getenvDefault("CLIENTS_TABLE", "clients"),
				Services:      getenvDefault("SERVICES_TABLE", "services"),
				Plans:         getenvDefault("SERVICE_PLANS_TABLE", "service_plans"),
				Proposals:     getenvDefault("PROPOSALS_TABLE", "proposals"),
				ProposalItems: getenvDefault("PROPOSAL_ITEMS_TABLE", "proposal_items"),
				UserRoles:     getenvDefault("USER_ROLES_TABLE", "user_roles"),
			},
		},
		JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
		LogLevel:  getenvDefault("LOG_LEVEL", "info"),
		Document: Document{
			Theme:    getenvDefault("DOCUMENT_THEME", "classic"),
			TimeZone: getenvDefault("DOCUMENT_TZ", "America/Sao_Paulo"),
		},
		Brand: Brand{
			Name:     os.Getenv("BRAND_NAME"),
			Initials: os.Getenv("BRAND_INITIALS"),
			Contact:  os.Getenv("BRAND_CONTACT"),
		},
	}, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
