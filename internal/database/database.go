// Package database implement connection to the embedded sqlite store and initialize ORM.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
	"gorm.io/gorm"

	"talentflow-backend/internal/model"
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

// DBConfig holds the configuration parameters for opening the local database.
type DBConfig struct {
	// Path is the sqlite database file, or a file: DSN for in-memory databases.
	Path string
	// SkipSeed disables the first-run seed data population.
	SkipSeed bool
}

func (d *DBConfig) getDsn() string {
	if d.Path == "" {
		log.Fatal("DB_PATH is empty")
	}
	return d.Path
}

var (
	dbPath      = os.Getenv("DB_PATH")
	skipSeedEnv = os.Getenv("SKIP_SEED")
	// dbInstance is the shared handle returned by GetMainDB
	dbInstance *DBinstanceStruct
)

// NewDBInstance creates a new DBinstanceStruct with the given configuration.
// It opens the local database, migrates the schema and runs the first-run seed,
// returning the instance or an error if the open fails.
func NewDBInstance(config *DBConfig) (*DBinstanceStruct, error) {

	dsn := config.getDsn()

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if gin.IsDebugging() {
		gdb = gdb.Debug()
	}

	newDb := &DBinstanceStruct{
		DB:     gdb,
		Config: config,
	}

	if err := newDb.installPragmas(); err != nil {
		log.Fatal("failed to configure sqlite: ", err)
	}
	if err := newDb.Migrate(); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}
	if !config.SkipSeed {
		if err := newDb.Seed(); err != nil {
			log.Fatal("failed to seed database: ", err)
		}
	}

	return newDb, nil
}

// GetMainDB returns the main database instance, initializing it if necessary.
// It reads configuration from environment variables and ensures a single instance is used.
func GetMainDB() (*DBinstanceStruct, error) {
	// Reuse Connection
	if dbInstance != nil {
		return dbInstance, nil
	}

	skipSeed := false
	if skipSeedEnv != "" {
		var err error
		skipSeed, err = strconv.ParseBool(skipSeedEnv)
		if err != nil {
			log.Fatalf("SKIP_SEED environment variable is invalid %v", err)
		}
	}

	path := dbPath
	if path == "" {
		path = "talentflow.db"
	}

	config := &DBConfig{
		Path:     path,
		SkipSeed: skipSeed,
	}

	var err error
	dbInstance, err = NewDBInstance(config)
	return dbInstance, err
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
	err := d.AutoMigrate(model.MigrateAble...)
	if err != nil {
		return err
	}
	return nil
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
		log.Printf("db down: %v", err)
		return stats
	}

	// Ping the database
	err = oriDB.PingContext(ctx)
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		log.Printf("db down: %v", err)
		return stats
	}

	// Database is up, add more statistics
	stats["status"] = "up"
	stats["message"] = "It's healthy"

	dbStats := oriDB.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()

	return stats
}

// Close closes the database connection.
// It logs a message indicating the disconnection from the specific database.
// If the connection is successfully closed, it returns nil.
// If an error occurs while closing the connection, it returns the error.
func (d *DBinstanceStruct) Close() error {
	log.Printf("Disconnected from database: %s", d.Config.Path)
	oriDB, err := d.Raw()
	if err != nil {
		return err
	}
	return oriDB.Close()
}

// installPragmas applies the sqlite settings the store relies on.
// busy_timeout keeps concurrent writers queueing instead of failing fast.
func (d *DBinstanceStruct) installPragmas() error {
	if err := d.WithContext(context.Background()).Exec(`PRAGMA busy_timeout = 5000;`).Error; err != nil {
		return err
	}
	if err := d.WithContext(context.Background()).Exec(`PRAGMA foreign_keys = ON;`).Error; err != nil {
		return err
	}
	return nil
}
