package session

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions in Redis. Each session uses two keys: a hash
// "sess:<token>" holding the bound user id, and a list
// "sess:<token>:flash" holding pending notices. Both carry the session
// TTL so abandoned sessions disappear on their own.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func sessKey(token string) string  { return "sess:" + token }
func flashKey(token string) string { return sessKey(token) + ":flash" }

func (s *RedisStore) Create(ctx context.Context) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, sessKey(token), "user_id", "0")
	pipe.Expire(ctx, sessKey(token), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (Data, error) {
	v, err := s.rdb.HGet(ctx, sessKey(token), "user_id").Result()
	if err == redis.Nil {
		return Data{}, ErrNotFound
	}
	if err != nil {
		return Data{}, err
	}
	uid, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return Data{}, ErrNotFound
	}
	return Data{Token: token, UserID: uid}, nil
}

func (s *RedisStore) SetUser(ctx context.Context, token string, userID uint64) error {
	// HSet on a missing key would resurrect a destroyed session, so
	// check existence first.
	n, err := s.rdb.Exists(ctx, sessKey(token)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, sessKey(token), "user_id", strconv.FormatUint(userID, 10))
	pipe.Expire(ctx, sessKey(token), s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) AddFlash(ctx context.Context, token, message string) error {
	pipe := s.rdb.TxPipeline()
	pipe.RPush(ctx, flashKey(token), message)
	pipe.Expire(ctx, flashKey(token), s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) PopFlashes(ctx context.Context, token string) ([]string, error) {
	pipe := s.rdb.TxPipeline()
	lrange := pipe.LRange(ctx, flashKey(token), 0, -1)
	pipe.Del(ctx, flashKey(token))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	return lrange.Val(), nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessKey(token), flashKey(token)).Err()
}
