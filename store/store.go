// Package store opens the repositories selected by STORE_DRIVER.
package store

import (
	"context"
	"fmt"
	"strconv"

	"moviecatalog/category"
	"moviecatalog/dynamodb"
	"moviecatalog/mongodb"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/postgres"
)

// Store is the process-wide store connection shared by every request.
type Store struct {
	Driver     string
	Movies     movie.Repository
	Categories category.Repository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Open connects to the configured store. The returned store answered a ping
// and must be released with Close.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	var (
		s   *Store
		err error
	)
	switch cfg.StoreDriver {
	case config.DriverMongoDB, "":
		s, err = openMongoDB(ctx, cfg)
	case config.DriverDynamoDB:
		s, err = openDynamoDB(ctx, cfg)
	case config.DriverPostgres:
		s, err = openPostgres(cfg)
	default:
		return nil, fmt.Errorf("store: unsupported driver %q", cfg.StoreDriver)
	}
	if err != nil {
		return nil, err
	}

	if err := s.Ping(ctx); err != nil {
		_ = s.Close(ctx)
		return nil, err
	}
	return s, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	if err := s.ping(ctx); err != nil {
		return fmt.Errorf("store: %s not ready: %w", s.Driver, err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

func openMongoDB(ctx context.Context, cfg *config.Config) (*Store, error) {
	client, err := mongodb.NewClient(ctx, mongodb.Options{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return nil, err
	}

	db := client.Database(cfg.Mongo.Database)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &Store{
		Driver:     config.DriverMongoDB,
		Movies:     mongodb.NewMovieRepository(db),
		Categories: mongodb.NewCategoryRepository(db),
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
		close: client.Disconnect,
	}, nil
}

func openDynamoDB(ctx context.Context, cfg *config.Config) (*Store, error) {
	ddb := cfg.DynamoDB
	client, err := dynamodb.NewClient(ctx, dynamodb.Options{
		Region:       ddb.Region,
		Endpoint:     ddb.Endpoint,
		AccessKey:    ddb.AccessKey,
		SecretKey:    ddb.SecretKey,
		SessionToken: ddb.SessionToken,
	})
	if err != nil {
		return nil, err
	}

	if ddb.CreateTables {
		if err := dynamodb.EnsureTables(ctx, client, ddb.MoviesTable, ddb.CategoriesTable); err != nil {
			return nil, err
		}
	}

	return &Store{
		Driver:     config.DriverDynamoDB,
		Movies:     dynamodb.NewMovieRepository(client, ddb.MoviesTable),
		Categories: dynamodb.NewCategoryRepository(client, ddb.CategoriesTable),
		ping: func(ctx context.Context) error {
			if err := dynamodb.Ping(ctx, client, ddb.MoviesTable); err != nil {
				return err
			}
			return dynamodb.Ping(ctx, client, ddb.CategoriesTable)
		},
	}, nil
}

func openPostgres(cfg *config.Config) (*Store, error) {
	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     strconv.Itoa(cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: open connection: %w", err)
	}

	return &Store{
		Driver:     config.DriverPostgres,
		Movies:     postgres.NewMovieRepository(db),
		Categories: postgres.NewCategoryRepository(db),
		ping: func(ctx context.Context) error {
			return postgres.Ping(ctx, db)
		},
		close: func(context.Context) error {
			return postgres.Close(db)
		},
	}, nil
}
