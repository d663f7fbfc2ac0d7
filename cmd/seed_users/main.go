// seed_users garantiza que los usuarios por defecto del sistema existan en
// la base de datos (idempotente: los ya existentes no se tocan).
//
// Uso: go run ./cmd/seed_users
// Las contraseñas por defecto son para entornos de desarrollo; cambiarlas
// vía las env vars SEED_ADMIN_PASSWORD, SEED_USER_PASSWORD y SEED_VIEWER_PASSWORD.
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Danielpnvs/usekaylla-api/internal/domain"
	"github.com/Danielpnvs/usekaylla-api/internal/domain/entity"
	"github.com/Danielpnvs/usekaylla-api/internal/infrastructure/postgres"
	"github.com/Danielpnvs/usekaylla-api/pkg/config"
	"github.com/Danielpnvs/usekaylla-api/pkg/logger"
)

type seedUser struct {
	email       string
	passwordEnv string
	defaultPass string
	name        string
	role        string
}

var defaultUsers = []seedUser{
	{email: "admin@usekaylla.com", passwordEnv: "SEED_ADMIN_PASSWORD", defaultPass: "admin123", name: "Administrador", role: domain.RoleAdmin},
	{email: "user@usekaylla.com", passwordEnv: "SEED_USER_PASSWORD", defaultPass: "user123", name: "kayla", role: domain.RoleUser},
	{email: "test@usekaylla.com", passwordEnv: "SEED_VIEWER_PASSWORD", defaultPass: "test123", name: "test", role: domain.RoleViewer},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Component("seed_users")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	created := 0
	for _, su := range defaultUsers {
		existing, err := userRepo.FindByEmail(su.email)
		if err != nil {
			log.Fatal().Err(err).Str("email", su.email).Msg("consultar usuario")
		}
		if existing != nil {
			log.Info().Str("email", su.email).Msg("usuario ya existe")
			continue
		}

		password := su.defaultPass
		if env := os.Getenv(su.passwordEnv); env != "" {
			password = env
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear contraseña")
		}

		now := time.Now()
		user := &entity.User{
			ID:           uuid.New().String(),
			Email:        su.email,
			PasswordHash: string(hash),
			Name:         su.name,
			Role:         su.role,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(user); err != nil {
			log.Fatal().Err(err).Str("email", su.email).Msg("crear usuario")
		}
		log.Info().Str("email", su.email).Str("role", su.role).Msg("usuario creado")
		created++
	}

	log.Info().Int("creados", created).Msg("usuarios por defecto verificados")
}
