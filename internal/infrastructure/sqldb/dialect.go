package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/ncruces/go-sqlite3"
	_ "github.com/ncruces/go-sqlite3/driver" // registra "sqlite3" en database/sql
	_ "github.com/ncruces/go-sqlite3/embed"  // binario wasm de SQLite

	"github.com/jhoicas/oms-agent/internal/domain"
)

// Dialect describe las diferencias entre motores servidos por database/sql:
// DDL, driver registrado, tamaño del pool y clasificación de errores.
// Ambos motores usan placeholders "?" y LastInsertId, por eso comparten repositorios.
type Dialect struct {
	Name         string
	driverName   string
	schema       []string
	maxOpenConns int
	classify     func(err error) error
}

// SQLite archivo local; una sola conexión compartida, como exige el modelo de un solo escritor.
var SQLite = Dialect{
	Name:         "sqlite",
	driverName:   "sqlite3",
	schema:       sqliteSchema,
	maxOpenConns: 1,
	classify:     classifySQLite,
}

// MySQL servidor InnoDB (8.0.16+ para CHECK).
var MySQL = Dialect{
	Name:         "mysql",
	driverName:   "mysql",
	schema:       mysqlSchema,
	maxOpenConns: 10,
	classify:     classifyMySQL,
}

// Querier es el subconjunto de *sql.DB / *sql.Tx que usan los repositorios.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Open abre la base, verifica la conexión y aplica el esquema (idempotente).
func Open(ctx context.Context, d Dialect, dsn string) (*sql.DB, error) {
	db, err := sql.Open(d.driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", d.Name, err)
	}
	db.SetMaxOpenConns(d.maxOpenConns)
	if d.maxOpenConns > 1 {
		db.SetMaxIdleConns(d.maxOpenConns / 2)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", d.Name, err)
	}
	if err := Migrate(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate crea las tablas que falten dentro de una sola transacción.
func Migrate(ctx context.Context, db *sql.DB, d Dialect) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range d.schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate %s: %w", d.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}

// SQLiteDSN construye el DSN del driver ncruces con llaves foráneas activas, WAL
// y espera de 10 s ante bloqueos.
func SQLiteDSN(path string) string {
	pragmas := "_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)"
	if path == ":memory:" {
		return "file::memory:?" + pragmas
	}
	escaped := strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23").Replace(path)
	return "file:" + escaped + "?" + pragmas + "&_pragma=journal_mode(wal)&_pragma=synchronous(normal)"
}

// MySQLDSN normaliza el DSN de MySQL y valida su formato.
func MySQLDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("MYSQL_DSN inválido: %w", err)
	}
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	cfg.Params["charset"] = "utf8mb4"
	return cfg.FormatDSN(), nil
}

func (d Dialect) wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, d.classify(err))
}

// classifySQLite traduce códigos extendidos de SQLite a errores de dominio, conservando la causa.
func classifySQLite(err error) error {
	var sqErr *sqlite3.Error
	if errors.As(err, &sqErr) {
		switch sqErr.ExtendedCode() {
		case sqlite3.CONSTRAINT_UNIQUE, sqlite3.CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %w", domain.ErrDuplicate, err)
		case sqlite3.CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %w", domain.ErrForeignKey, err)
		case sqlite3.CONSTRAINT_CHECK, sqlite3.CONSTRAINT_NOTNULL:
			return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
	}
	return classifyCommon(err)
}

// classifyMySQL traduce los números de error de MySQL a errores de dominio.
func classifyMySQL(err error) error {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1062: // ER_DUP_ENTRY
			return fmt.Errorf("%w: %w", domain.ErrDuplicate, err)
		case 1216, 1452: // ER_NO_REFERENCED_ROW
			return fmt.Errorf("%w: %w", domain.ErrForeignKey, err)
		case 1048, 3819: // ER_BAD_NULL_ERROR, ER_CHECK_CONSTRAINT_VIOLATED
			return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
	}
	return classifyCommon(err)
}

func classifyCommon(err error) error {
	if strings.Contains(err.Error(), "sql: database is closed") {
		return fmt.Errorf("%w: %w", domain.ErrStoreClosed, err)
	}
	return err
}
