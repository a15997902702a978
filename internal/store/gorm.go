package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/skillsenselab/identity/internal/logger"
)

// GormStore implements UserStore on top of GORM. Uniqueness is enforced by
// the unique index on email; a violated index surfaces as ErrDuplicateEmail.
type GormStore struct {
	db  *gorm.DB
	log *logger.Logger
}

// Open connects to the database with retry logic and connection pooling,
// and runs auto-migration when configured.
func Open(ctx context.Context, cfg Config, log *logger.Logger) (*GormStore, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{
		// TranslateError maps driver unique-constraint errors to
		// gorm.ErrDuplicatedKey so Create can return a typed outcome.
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}

	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("store: connection canceled: %w", ctx.Err())
		}

		db, err = gorm.Open(sqlite.Open(cfg.DSN), gormCfg)
		if err == nil {
			break
		}

		if attempt < cfg.MaxRetries {
			backoff := time.Duration(attempt) * time.Second
			log.Warn("Store connection attempt failed, retrying", map[string]interface{}{
				"attempt": attempt,
				"error":   err.Error(),
				"backoff": backoff.String(),
			})
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("store: connection canceled during retry: %w", ctx.Err())
			case <-time.After(backoff):
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("store: failed to connect after %d attempts: %w", cfg.MaxRetries, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("store: access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	if lifetime, parseErr := time.ParseDuration(cfg.ConnMaxLifetime); parseErr == nil {
		sqlDB.SetConnMaxLifetime(lifetime)
	}

	s := &GormStore{db: db, log: log.WithComponent("store")}

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&User{}); err != nil {
			return nil, fmt.Errorf("store: auto-migrate: %w", err)
		}
		s.log.Info("Store migration complete")
	}

	s.log.Info("Store connection established")
	return s, nil
}

// Create persists the user, relying on the unique index for atomic
// duplicate detection.
func (s *GormStore) Create(ctx context.Context, user *User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return fmt.Errorf("store: create user: %w", err)
}

func (s *GormStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: find by email: %w", err)
	}
	return &user, nil
}

func (s *GormStore) FindByID(ctx context.Context, id string) (*User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var user User
	err = s.db.WithContext(ctx).Where("id = ?", uid).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: find by id: %w", err)
	}
	return &user, nil
}

func (s *GormStore) DeleteByID(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	res := s.db.WithContext(ctx).Where("id = ?", uid).Delete(&User{})
	if res.Error != nil {
		return fmt.Errorf("store: delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping verifies the database connection is alive.
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	s.log.Info("Closing store connection")
	return sqlDB.Close()
}
