// Package store elige el backend de almacenamiento según la configuración y
// controla su ciclo de vida: se abre una vez al iniciar el proceso y se cierra una vez.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/jhoicas/oms-agent/internal/domain"
	"github.com/jhoicas/oms-agent/internal/domain/repository"
	"github.com/jhoicas/oms-agent/internal/infrastructure/postgres"
	"github.com/jhoicas/oms-agent/internal/infrastructure/sqldb"
	"github.com/jhoicas/oms-agent/pkg/config"
	"github.com/jhoicas/oms-agent/pkg/logger"
)

// Store es el handle de almacenamiento que el proceso raíz pasa a los casos de uso.
type Store struct {
	Repos  repository.Set
	driver string
	close  func() error
	closed atomic.Bool
	log    *logger.Logger
}

// Open abre el backend configurado y aplica el esquema.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Store, error) {
	log = log.Component("store")
	switch cfg.Driver {
	case config.DriverSQLite, "":
		if cfg.Path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
				return nil, fmt.Errorf("crear directorio de la base: %w", err)
			}
		}
		db, err := sqldb.Open(ctx, sqldb.SQLite, sqldb.SQLiteDSN(cfg.Path))
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", "sqlite").Str("path", cfg.Path).Msg("almacenamiento abierto")
		return newStore(config.DriverSQLite, sqldb.NewRepositories(db, sqldb.SQLite), db.Close, log), nil

	case config.DriverMySQL:
		dsn, err := sqldb.MySQLDSN(cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		db, err := sqldb.Open(ctx, sqldb.MySQL, dsn)
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", "mysql").Msg("almacenamiento abierto")
		return newStore(config.DriverMySQL, sqldb.NewRepositories(db, sqldb.MySQL), db.Close, log), nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		log.Info().Str("driver", "postgres").Msg("almacenamiento abierto")
		closeFn := func() error {
			pool.Close()
			return nil
		}
		return newStore(config.DriverPostgres, postgres.NewRepositories(pool), closeFn, log), nil

	default:
		return nil, fmt.Errorf("driver no soportado: %q", cfg.Driver)
	}
}

func newStore(driver string, repos repository.Set, closeFn func() error, log *logger.Logger) *Store {
	return &Store{Repos: repos, driver: driver, close: closeFn, log: log}
}

// Driver nombre del backend activo.
func (s *Store) Driver() string { return s.driver }

// Close cierra el backend. Un segundo Close devuelve domain.ErrStoreClosed.
func (s *Store) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return domain.ErrStoreClosed
	}
	if err := s.close(); err != nil {
		return fmt.Errorf("cerrar almacenamiento: %w", err)
	}
	s.log.Info().Str("driver", s.driver).Msg("almacenamiento cerrado")
	return nil
}
