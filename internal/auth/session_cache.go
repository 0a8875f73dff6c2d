package auth

import (
	"time"

	"github.com/coocood/freecache"
)

const megabyte = 1024 * 1024

// SessionCache keeps resolved session principals in process memory for a
// short while, so the auth check does not reach redis on every request.
// A nil *SessionCache is a valid, disabled cache.
type SessionCache struct {
	cache  *freecache.Cache
	expire time.Duration
}

func NewSessionCache(sizeMB int, expire time.Duration) *SessionCache {
	return &SessionCache{
		cache:  freecache.NewCache(sizeMB * megabyte),
		expire: expire,
	}
}

func (c *SessionCache) get(token string) (string, bool) {
	if c == nil {
		return "", false
	}
	principal, err := c.cache.Get([]byte(token))
	if err != nil {
		return "", false
	}
	return string(principal), true
}

// set never keeps an entry past the remaining session lifetime.
func (c *SessionCache) set(token, principal string, sessionLeft time.Duration) {
	if c == nil {
		return
	}
	expire := min(c.expire, sessionLeft)
	expireSeconds := int(expire / time.Second)
	if expireSeconds <= 0 {
		return
	}
	_ = c.cache.Set([]byte(token), []byte(principal), expireSeconds)
}

func (c *SessionCache) forget(token string) {
	if c == nil {
		return
	}
	c.cache.Del([]byte(token))
}
