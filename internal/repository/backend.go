package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// OpenBackend 根据配置创建存储后端，返回的 close 函数负责释放连接
func OpenBackend(cfg *config.Config) (Backend, func() error, error) {
	switch cfg.Store.Backend {
	case "postgres":
		dbpool, err := sql.Open("pgx", cfg.Database.DSN)
		if err != nil {
			return nil, nil, err
		}

		dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
		defer cancel()

		// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
		if err := dbpool.PingContext(ctx); err != nil {
			dbpool.Close()
			return nil, nil, err
		}

		backend := NewPostgresBackend(dbpool, cfg.Database.DocumentName)
		if err := backend.Migrate(ctx); err != nil {
			dbpool.Close()
			return nil, nil, err
		}

		return backend, dbpool.Close, nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       0,
		})

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Redis.ConnectTimeout)*time.Second)
		defer cancel()

		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, err
		}

		return NewRedisBackend(rdb, cfg.Redis.Key), rdb.Close, nil
	case "file":
		return NewFileBackend(cfg.Store.Path), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("未知的存储后端: %s", cfg.Store.Backend)
	}
}
