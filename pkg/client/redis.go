package client

import (
	"BrainRotBGone/config"
	"BrainRotBGone/pkg/log"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient returns nil when redis is not configured.
func NewRedisClient(conf *config.Redis) (*redis.Client, error) {
	if conf == nil || conf.Address == "" {
		log.L.Info("redis not configured, like guard disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.Address, conf.Port),
		Password: conf.Password,
		Username: conf.Username,
		DB:       conf.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.L.Error("connect redis error", zap.Error(err))
		return nil, err
	}
	log.L.Info("redis client success")
	return client, nil
}
