package rewards

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	model "github.com/glkeru/loyalty/rewards/internal/models"
	redis "github.com/redis/go-redis/v9"
)

const (
	balanceTTL = 5 * time.Minute
	dailyTTL   = 48 * time.Hour

	reserveRetries = 10
)

// Кэш балансов и дневных сумм наград
type CacheService struct {
	client *redis.Client
}

func NewCacheService() (serv *CacheService, err error) {

	// config
	addr := os.Getenv("REWARDS_CACHE_URL")
	if addr == "" {
		return nil, fmt.Errorf("env REWARDS_CACHE_URL is not set")
	}
	user := os.Getenv("REWARDS_CACHE_USER")
	pwd := os.Getenv("REWARDS_CACHE_PWD")

	// redis
	db := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    pwd,
		Username:    user,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = db.Ping(context.Background()).Err()
	if err != nil {
		return nil, err
	}

	return &CacheService{db}, nil
}

func (c *CacheService) Close() error {
	return c.client.Close()
}

func (c *CacheService) GetBalance(ctx context.Context, user string) (points float64, err error) {
	val, err := c.client.Get(ctx, balanceKey(user)).Result()
	if err == redis.Nil {
		return 0, fmt.Errorf("balance %w", model.ErrNotFound)
	} else if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(val, 64)
}

func (c *CacheService) SetBalance(ctx context.Context, user string, points float64) (err error) {
	return c.client.Set(ctx, balanceKey(user), points, balanceTTL).Err()
}

func (c *CacheService) InvalidateBalance(ctx context.Context, user string) error {
	return c.client.Del(ctx, balanceKey(user)).Err()
}

// Сумма наград за сутки (UTC)
func (c *CacheService) Accumulated(ctx context.Context, user string, day time.Time) (float64, error) {
	val, err := c.client.Get(ctx, dailyKey(user, day)).Float64()
	if err == redis.Nil {
		return 0, nil
	}
	return val, err
}

// Резерв в дневном лимите через WATCH: при параллельной записи ключа транзакция повторяется
func (c *CacheService) Reserve(ctx context.Context, user string, day time.Time, grant func(accumulated float64) float64) (float64, error) {
	key := dailyKey(user, day)
	var granted float64
	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Float64()
		if err != nil && err != redis.Nil {
			return err
		}
		granted = grant(current)
		if granted <= 0 {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.IncrByFloat(ctx, key, granted)
			pipe.Expire(ctx, key, dailyTTL)
			return nil
		})
		return err
	}

	for i := 0; i < reserveRetries; i++ {
		err := c.client.Watch(ctx, txf, key)
		if err == nil {
			return granted, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return 0, err
		}
	}
	return 0, fmt.Errorf("daily reserve %s: %w", user, redis.TxFailedErr)
}

func (c *CacheService) Release(ctx context.Context, user string, day time.Time, amount float64) error {
	if amount <= 0 {
		return nil
	}
	key := dailyKey(user, day)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.IncrByFloat(ctx, key, -amount)
		pipe.Expire(ctx, key, dailyTTL)
		return nil
	})
	return err
}

func balanceKey(user string) string {
	return "balance:" + user
}

func dailyKey(user string, day time.Time) string {
	return "daily:" + user + ":" + day.UTC().Format(time.DateOnly)
}
