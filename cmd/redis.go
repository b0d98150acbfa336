package main

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
)

func (a *App) initRedis() error {
	client := goredis.NewClient(&goredis.Options{
		Addr:     a.Config.Redis.Addr,
		Password: a.Config.Redis.Password,
	})

	if err := client.Ping(context.TODO()).Err(); err != nil {
		return err
	}

	a.Redis = client

	return nil
}
