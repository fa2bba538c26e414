package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/machine_admin/configs"
	"github.com/machine_admin/internal/auth"
	"github.com/machine_admin/pkg/db"
	"github.com/machine_admin/pkg/logger"
)

// openDB 按配置打开数据库并迁移表结构
func openDB() (*gorm.DB, error) {
	cfg := configs.AppConfig
	return db.InitDB(cfg.DBDriver, cfg.DBDSN)
}

// newDenylist 配置了 REDIS_ADDR 时使用 Redis，否则使用进程内列表。
// 返回的 close 函数用于释放 Redis 连接。
func newDenylist(ctx context.Context) (auth.Denylist, func(), error) {
	cfg := configs.AppConfig
	if cfg.RedisAddr == "" {
		logger.L().Info("session denylist: memory")
		return auth.NewMemoryDenylist(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connect to redis %s: %w", cfg.RedisAddr, err)
	}
	logger.L().Info("session denylist: redis", zap.String("addr", cfg.RedisAddr))
	return auth.NewRedisDenylist(client), func() { _ = client.Close() }, nil
}
