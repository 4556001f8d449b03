package rdx

import (
	"os"
	"time"

	"nivaas/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxSetWithTTL(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func RdxDel(key string) error {
	return Conn.Del(globals.Ctx, key).Err()
}

// RdxDelPattern removes every key matching the given glob pattern.
func RdxDelPattern(pattern string) error {
	keys, err := Conn.Keys(globals.Ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return Conn.Del(globals.Ctx, keys...).Err()
}

func RdxSAdd(key string, members ...any) error {
	return Conn.SAdd(globals.Ctx, key, members...).Err()
}

func RdxSMembers(key string) ([]string, error) {
	return Conn.SMembers(globals.Ctx, key).Result()
}
