package mysql

import (
	"cboard/models"
	"context"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store is the relational store shared by every service. It wraps a pooled
// *gorm.DB, or a transaction handle inside Store.Transaction.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Open connects to MySQL with the pool configured under "mysql.*".
func Open() (*gorm.DB, error) {
	cfg := mysqldriver.NewConfig()
	cfg.User = viper.GetString("mysql.username")
	cfg.Passwd = viper.GetString("mysql.password")
	cfg.Net = "tcp"
	cfg.Addr = viper.GetString("mysql.host") + ":" + viper.GetString("mysql.port")
	cfg.DBName = viper.GetString("mysql.database")
	cfg.ParseTime = true
	cfg.Loc = time.Local
	// count matched rows, not changed rows, so an update to identical
	// values still reports the row as found
	cfg.ClientFoundRows = true
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	gormConfig := &gorm.Config{TranslateError: true}
	if viper.GetBool("mysql.debug") {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.FormatDSN()), gormConfig)
	if err != nil {
		return nil, errors.Wrap(err, "mysql: open")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "mysql: get sql.DB")
	}
	sqlDB.SetMaxOpenConns(viper.GetInt("mysql.max_open_conns"))
	sqlDB.SetMaxIdleConns(viper.GetInt("mysql.max_idle_conns"))
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}

// Migrate creates the fixed schema.
func (s *Store) Migrate() error {
	err := s.db.AutoMigrate(
		&models.Account{},
		&models.BoardCategory{},
		&models.Post{},
		&models.PostLike{},
		&models.PostDislike{},
		&models.Comment{},
	)
	return errors.Wrap(err, "mysql: Migrate")
}

// Transaction runs fn against a Store bound to one transaction; any
// returned error rolls the whole unit back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "mysql: Close")
	}
	return errors.Wrap(sqlDB.Close(), "mysql: Close")
}

func (s *Store) useDB(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}
