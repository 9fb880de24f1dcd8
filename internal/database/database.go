// Package database implement connection to database service and initialize ORM.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jobboard-backend/internal/config"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/model"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DBinstanceStruct is a struct that holds the GORM DB instance and related information.
type DBinstanceStruct struct {
	*gorm.DB
	// Config
	Config *DBConfig
	// cached raw DB and mutex for lazy-init
	sqlDB *sql.DB
	mu    sync.RWMutex
}

// DBConfig holds the configuration parameters for connecting to a database.
type DBConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
	Constr     string
	UseConstr  bool
	SQLitePath string
	LogLevel   string
}

// FromConfig converts the application database section into a DBConfig.
func FromConfig(cfg *config.Config) *DBConfig {
	return &DBConfig{
		Driver:     cfg.Database.Driver,
		Host:       cfg.Database.Host,
		Port:       cfg.Database.Port,
		User:       cfg.Database.User,
		Password:   cfg.Database.Password,
		DBName:     cfg.Database.Name,
		SSLMode:    cfg.Database.SSLMode,
		Constr:     cfg.Database.ConnStr,
		UseConstr:  cfg.Database.UseConnStr,
		SQLitePath: cfg.Database.SQLitePath,
		LogLevel:   cfg.Log.Level,
	}
}

func (d *DBConfig) getDsn() (string, error) {
	if d.Driver == DriverSQLite {
		if d.SQLitePath == "" {
			return "", fmt.Errorf("SQLITE_PATH is empty")
		}
		return d.SQLitePath, nil
	}
	if d.UseConstr {
		if d.Constr == "" {
			return "", fmt.Errorf("DB_CONNECTION_STR is empty")
		}
		return d.Constr, nil
	}
	if d.Host == "" || d.Port == "" || d.User == "" || d.DBName == "" {
		return "", fmt.Errorf("database configuration is incomplete")
	}
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", d.User, d.Password, d.Host, d.Port, d.DBName, sslMode), nil
}

// NewDBInstance creates a new DBinstanceStruct with the given configuration.
// It establishes a connection to the database, migrates the schema and returns the instance.
func NewDBInstance(config *DBConfig) (*DBinstanceStruct, error) {
	connStr, err := config.getDsn()
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger: gormlogger.New(
			zap.NewStdLog(logger.Logger),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormLogLevel(config.LogLevel),
				IgnoreRecordNotFoundError: true,
			},
		),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var gdb *gorm.DB
	switch config.Driver {
	case DriverPostgres, "":
		gdb, err = gorm.Open(postgres.Open(connStr), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
	case DriverSQLite:
		if dir := filepath.Dir(connStr); !isURIOrMemory(connStr) && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
			}
		}
		gdb, err = gorm.Open(sqlite.Open(connStr), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", config.Driver)
	}

	newDb := &DBinstanceStruct{
		DB:     gdb,
		Config: config,
	}

	if config.Driver == DriverSQLite {
		raw, err := newDb.Raw()
		if err != nil {
			return nil, err
		}
		// sqlite has a single writer; one connection also keeps PRAGMAs and
		// shared in-memory databases alive.
		raw.SetMaxOpenConns(1)
		if err := gdb.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, err
		}
	}

	if err := newDb.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Logger.Info("Connected to database", zap.String("driver", config.Driver))
	return newDb, nil
}

func isURIOrMemory(dsn string) bool {
	return dsn == ":memory:" || strings.HasPrefix(dsn, "file:")
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "debug":
		return gormlogger.Info
	case "warn", "info":
		return gormlogger.Warn
	default:
		return gormlogger.Error
	}
}

// Raw returns the underlying *sql.DB, caching it after the first successful retrieval.
// It is safe for concurrent use.
func (d *DBinstanceStruct) Raw() (*sql.DB, error) {
	if d == nil {
		return nil, fmt.Errorf("DBinstanceStruct is nil")
	}

	// fast path: cached value
	d.mu.RLock()
	if d.sqlDB != nil {
		raw := d.sqlDB
		d.mu.RUnlock()
		return raw, nil
	}
	d.mu.RUnlock()

	// slow path: initialize
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sqlDB != nil {
		return d.sqlDB, nil
	}
	if d.DB == nil {
		return nil, fmt.Errorf("gorm DB is nil")
	}
	raw, err := d.DB.DB()
	if err != nil {
		return nil, err
	}
	d.sqlDB = raw
	return raw, nil
}

// Migrate database
func (d *DBinstanceStruct) Migrate() error {
	if err := d.AutoMigrate(model.MigrateAble...); err != nil {
		return err
	}
	return d.backfillSearchText()
}

// backfillSearchText fills the search column of jobs stored before it existed
func (d *DBinstanceStruct) backfillSearchText() error {
	var jobs []model.Job
	return d.Unscoped().
		Where("search_text = ''").
		FindInBatches(&jobs, 200, func(*gorm.DB, int) error {
			for i := range jobs {
				jobs[i].RefreshSearchText()
				if err := d.Unscoped().Model(&jobs[i]).UpdateColumn("search_text", jobs[i].SearchText).Error; err != nil {
					return err
				}
			}
			return nil
		}).Error
}

// Health checks the health of the database connection by pinging the database.
// It returns a map with keys indicating various health statistics.
func (d *DBinstanceStruct) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	oriDB, err := d.Raw()
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		logger.Logger.Error("db down", zap.Error(err))
		return stats
	}

	if err := oriDB.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		logger.Logger.Error("db down", zap.Error(err))
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"

	dbStats := oriDB.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()
	stats["max_idle_closed"] = strconv.FormatInt(dbStats.MaxIdleClosed, 10)
	stats["max_lifetime_closed"] = strconv.FormatInt(dbStats.MaxLifetimeClosed, 10)

	if dbStats.OpenConnections > 40 {
		stats["message"] = "The database is experiencing heavy load."
	}

	if dbStats.WaitCount > 1000 {
		stats["message"] = "The database has a high number of wait events, indicating potential bottlenecks."
	}

	return stats
}

// Close closes the database connection.
func (d *DBinstanceStruct) Close() error {
	oriDB, err := d.Raw()
	if err != nil {
		return err
	}
	logger.Logger.Info("Disconnected from database", zap.String("driver", d.Config.Driver))
	return oriDB.Close()
}
