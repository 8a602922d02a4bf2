// Package cache memoizes analysis results in redis, keyed by rule and the
// sorted hand.
package cache

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/garyburd/redigo/redis"
	"github.com/lonng/mjeff/pkg/mahjong"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	defaultConnTimeout  = 5 * time.Second
	defaultReadTimeout  = 1 * time.Second
	defaultWriteTimeout = 5 * time.Second
	defaultExpire       = 24 * 60 * 60
	keyPrefix           = "mjeff"
)

const (
	cmdSetExpire = "SETEX"
	cmdGet       = "GET"
	cmdDel       = "DEL"
)

var (
	ErrCacheOperation = errors.New("cache operation failed")

	logger = log.WithField("component", "cache")

	lock   sync.RWMutex
	pool   *redis.Pool
	expire = defaultExpire
)

type options struct {
	db       int
	password string
	expire   int
}

// Option configures the redis connection.
type Option func(*options)

func Database(db int) Option {
	return func(o *options) {
		o.db = db
	}
}

func Password(pwd string) Option {
	return func(o *options) {
		o.password = pwd
	}
}

// Expire sets the ttl of cached results in seconds.
func Expire(seconds int) Option {
	return func(o *options) {
		if seconds > 0 {
			o.expire = seconds
		}
	}
}

func newPool(dial func() (redis.Conn, error)) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     32,
		IdleTimeout: 240 * time.Second,
		Dial:        dial,
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

func setup(p *redis.Pool, seconds int) func() {
	lock.Lock()
	pool, expire = p, seconds
	lock.Unlock()

	logger.Infof("running, expire=%ds", seconds)
	return func() {
		lock.Lock()
		pool = nil
		lock.Unlock()
		p.Close()
		logger.Info("stopped")
	}
}

// MustBootUp connects the shared cache, the returned closer releases the
// pool. It panics if addr is empty.
func MustBootUp(addr string, opts ...Option) func() {
	if addr == "" {
		panic("cache: empty redis address")
	}

	settings := &options{expire: defaultExpire}
	for _, opt := range opts {
		opt(settings)
	}

	p := newPool(func() (redis.Conn, error) {
		return redis.Dial("tcp", addr,
			redis.DialDatabase(settings.db),
			redis.DialPassword(settings.password),
			redis.DialConnectTimeout(defaultConnTimeout),
			redis.DialReadTimeout(defaultReadTimeout),
			redis.DialWriteTimeout(defaultWriteTimeout))
	})
	return setup(p, settings.expire)
}

// Enabled reports whether the cache has been booted.
func Enabled() bool {
	lock.RLock()
	defer lock.RUnlock()
	return pool != nil
}

// Key builds the cache key of one request kind.
func Key(kind, rule string, hand mahjong.Tiles) string {
	sorted := hand.Clone()
	sorted.Sort()
	return fmt.Sprintf("%s:%s:%s:%s", keyPrefix, kind, rule, sorted)
}

func conn() redis.Conn {
	lock.RLock()
	defer lock.RUnlock()
	if pool == nil {
		return nil
	}
	return pool.Get()
}

// Get decodes the cached value of key into v, it reports false on a miss or
// when the cache is disabled.
func Get(key string, v interface{}) (bool, error) {
	c := conn()
	if c == nil {
		return false, nil
	}
	defer c.Close()

	data, err := redis.Bytes(c.Do(cmdGet, key))
	if err == redis.ErrNil {
		return false, nil
	}
	if err != nil {
		logger.Error(err)
		return false, errors.Wrap(ErrCacheOperation, err.Error())
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, errors.Wrapf(ErrCacheOperation, "decode %s: %v", key, err)
	}
	return true, nil
}

// Set stores v as json under key with the configured ttl.
func Set(key string, v interface{}) error {
	c := conn()
	if c == nil {
		return nil
	}
	defer c.Close()

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	lock.RLock()
	ttl := expire
	lock.RUnlock()

	if _, err := c.Do(cmdSetExpire, key, ttl, data); err != nil {
		logger.Error(err)
		return errors.Wrap(ErrCacheOperation, err.Error())
	}
	return nil
}

func Delete(key string) error {
	c := conn()
	if c == nil {
		return nil
	}
	defer c.Close()

	if _, err := c.Do(cmdDel, key); err != nil {
		logger.Error(err)
		return errors.Wrap(ErrCacheOperation, err.Error())
	}
	return nil
}
