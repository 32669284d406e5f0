package testutils

import (
	"context"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	goredis "github.com/redis/go-redis/v9"
)

var (
	redisOnce     sync.Once
	redisInitErr  error
	redisPool     *dockertest.Pool
	redisResource *dockertest.Resource
	redisClient   *goredis.Client
)

// SetupRedis starts (once) a shared Redis container and returns a client to it
func SetupRedis(t *testing.T) *goredis.Client {
	redisOnce.Do(func() { redisInitErr = initSharedRedisContainer() })
	if redisInitErr != nil {
		t.Fatalf("failed to initialize shared redis container: %v", redisInitErr)
	}
	return redisClient
}

// CleanupSharedRedis purges the Redis container, if one was started
func CleanupSharedRedis() {
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if redisPool != nil && redisResource != nil {
		if err := redisPool.Purge(redisResource); err != nil {
			log.Printf("WARN: could not purge redis resource: %v", err)
		}
		redisResource = nil
		redisPool = nil
		redisClient = nil
	}
}

func initSharedRedisContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	redisPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start redis: %w", err)
	}
	redisResource = resource

	addr := fmt.Sprintf("127.0.0.1:%s", resource.GetPort("6379/tcp"))
	pool.MaxWait = time.Minute
	if err := pool.Retry(func() error {
		client := goredis.NewClient(&goredis.Options{Addr: addr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			_ = client.Close()
			return err
		}
		redisClient = client
		return nil
	}); err != nil {
		return fmt.Errorf("could not connect to docker redis: %w", err)
	}

	log.Printf("Shared Redis ready on %s", addr)
	return nil
}
