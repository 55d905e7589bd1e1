package main

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jhoicas/enterprise-api/pkg/config"
	"github.com/jhoicas/enterprise-api/pkg/logger"
)

func main() {
	migrationsDir := flag.String("dir", "", "directorio de migraciones (por defecto MIGRATIONS_DIR)")
	flag.Parse()

	action := "up"
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Named("migrate")

	dir := cfg.Storage.MigrationsDir
	if *migrationsDir != "" {
		dir = *migrationsDir
	}

	if err := runMigration(log, action, dir, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Str("action", action).Msg("migración fallida")
	}
	log.Info().Str("action", action).Msg("migración completada")
}

func runMigration(log *logger.Logger, action, dir, dsn string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolver ruta %s: %w", dir, err)
	}

	m, err := migrate.New("file://"+filepath.ToSlash(absDir), dsn)
	if err != nil {
		return fmt.Errorf("crear instancia de migrate: %w", err)
	}
	defer m.Close()

	switch action {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "drop":
		return m.Drop()
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Info().Msg("sin migraciones aplicadas")
			return nil
		}
		if err != nil {
			return err
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("versión actual")
		return nil
	default:
		return fmt.Errorf("acción no soportada %q (up|down|drop|version)", action)
	}
}
