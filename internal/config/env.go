package config

import (
	"os"
	"strconv"
	"strings"
)

type Env struct {
	AppAddr   string
	GinMode   string
	JWTSecret string
	SeedDays  int
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	seedDays := 7
	if v := strings.TrimSpace(os.Getenv("SEED_DAYS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			seedDays = n
		}
	}

	return Env{
		AppAddr:   appAddr,
		GinMode:   ginMode,
		JWTSecret: secret,
		SeedDays:  seedDays,
	}
}
