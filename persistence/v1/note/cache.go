package note

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/user-notes/sys"
)

// version returns the cache version of userId, ok is false when the cache can not be used
func version(ctx context.Context, userId string) (v int64, ok bool) {
	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	v, err := sys.R.Cache.Get(tcCtx, fmt.Sprintf(versionKey, userId)).Int64()
	switch {
	case err == redis.Nil:
		return 0, true
	case err != nil:
		sys.R.Log.Error("failure to get cache version of ", userId, ": ", err.Error())
		return 0, false
	}
	return v, true
}

// invalidate moves userId to a new cache version. The version key has no TTL, a reset
// counter could otherwise point at a list written before the reset.
func invalidate(ctx context.Context, userId string) {
	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := sys.R.Cache.Incr(tcCtx, fmt.Sprintf(versionKey, userId)).Err(); err != nil {
		sys.R.Log.Error("failure to invalidate cache of ", userId, ": ", err.Error())
	}
}

// fromCache reports whether key was found and decoded into v. Cache failures are
// logged only, callers fall back to the database.
func fromCache(ctx context.Context, key string, v any) bool {
	logger := sys.R.Log
	cache := sys.R.Cache

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	get, err := cache.Get(tcCtx, key).Result()
	if err != nil && err != redis.Nil {
		logger.Error("failure to get ", key, " from cache: ", err.Error())
		return false
	}
	if get == "" {
		return false
	}
	if err := json.Unmarshal([]byte(get), v); err != nil {
		logger.Errorf("error parsing cached response for key %s: %s", key, err)
		return false
	}
	return true
}

func toCache(ctx context.Context, key string, v any) {
	logger := sys.R.Log
	cache := sys.R.Cache

	data, err := json.Marshal(v)
	if err != nil {
		logger.Errorf("error parsing data to cache for key %s: %s", key, err)
		return
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := cache.Set(tcCtx, key, string(data), sys.Configs.Cache.CacheTTL).Err(); err != nil {
		logger.Error("failure to set ", key, " into cache: ", err.Error())
	}
}
