// Package database opens the configured backing store and hands back its repositories.
package database

import (
	"context"
	"fmt"
	"time"

	"bottleshop/internal/config"
	"bottleshop/internal/repositories"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Store drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const connectTimeout = 10 * time.Second

// Store is an open backing store.
type Store struct {
	Driver string
	Repos  *repositories.Set
	close  func(ctx context.Context) error
}

// Close releases the store's connections.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects to the store selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg config.Config) (*Store, error) {
	switch cfg.StoreDriver {
	case DriverMongo:
		return OpenMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	case DriverPostgres:
		return OpenGORM(postgres.Open(cfg.DatabaseDSN), DriverPostgres)
	case DriverSQLite:
		return OpenGORM(sqlite.Open(cfg.DatabaseDSN), DriverSQLite)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// OpenMongo connects to MongoDB, checks the connection and creates indexes.
func OpenMongo(ctx context.Context, uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	d := client.Database(dbName)
	if err := EnsureIndexes(ctx, d); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}
	logrus.WithField("db", dbName).Info("MongoDB connected")

	return &Store{
		Driver: DriverMongo,
		Repos:  repositories.NewMongoSet(d),
		close:  client.Disconnect,
	}, nil
}

// newGORMLogger logs slow queries and real errors; lookups that find nothing are expected.
func newGORMLogger() gormlogger.Interface {
	return gormlogger.New(logrus.StandardLogger(), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// OpenGORM opens a SQL database through GORM and migrates the schema.
func OpenGORM(dialector gorm.Dialector, driver string) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         newGORMLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(repositories.GORMModels...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	logrus.WithField("driver", driver).Info("SQL database connected")

	return &Store{
		Driver: driver,
		Repos:  repositories.NewGORMSet(db),
		close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}, nil
}
