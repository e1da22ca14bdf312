package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Social-Interaction/domain"
)

const (
	// KeyInteraction is a set of user ids per (kind, target), or a uid -> score hash for RATE_POST
	KeyInteraction = "interaction:%s:%s"

	// warmMarker keeps a loaded-but-empty key alive so it is not mistaken for a cold one
	warmMarker = "~"
)

var (
	// KEYS = {set}  ARGV = {uid, ttl seconds}
	addMemberScript = redis.NewScript(`
		if redis.call('EXISTS', KEYS[1]) == 0 then
			return -1 -- 未缓存, 需要加载缓存
		end
		local added = redis.call('SADD', KEYS[1], ARGV[1])
		if tonumber(ARGV[2]) > 0 then
			redis.call('EXPIRE', KEYS[1], ARGV[2])
		end
		return added
	`)

	removeMemberScript = redis.NewScript(`
		if redis.call('EXISTS', KEYS[1]) == 0 then
			return -1
		end
		local removed = redis.call('SREM', KEYS[1], ARGV[1])
		if tonumber(ARGV[2]) > 0 then
			redis.call('EXPIRE', KEYS[1], ARGV[2])
		end
		return removed
	`)

	isMemberScript = redis.NewScript(`
		if redis.call('EXISTS', KEYS[1]) == 0 then
			return -1
		end
		return redis.call('SISMEMBER', KEYS[1], ARGV[1])
	`)

	// KEYS = {hash}  ARGV = {uid, score, ttl seconds}
	putRatingScript = redis.NewScript(`
		if redis.call('EXISTS', KEYS[1]) == 0 then
			return -1
		end
		redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
		if tonumber(ARGV[3]) > 0 then
			redis.call('EXPIRE', KEYS[1], ARGV[3])
		end
		return 1
	`)

	// returns {0} when cold, {1} when loaded but not rated, {2, score} otherwise
	getRatingScript = redis.NewScript(`
		if redis.call('EXISTS', KEYS[1]) == 0 then
			return {0}
		end
		local v = redis.call('HGET', KEYS[1], ARGV[1])
		if not v then
			return {1}
		end
		return {2, v}
	`)

	// KEYS = {set}  ARGV = {ttl seconds, marker, uid...}
	warmSetScript = redis.NewScript(`
		if redis.call('EXISTS', KEYS[1]) == 1 then
			return 0 -- 并发请求已加载
		end
		for i = 2, #ARGV do
			redis.call('SADD', KEYS[1], ARGV[i])
		end
		if tonumber(ARGV[1]) > 0 then
			redis.call('EXPIRE', KEYS[1], ARGV[1])
		end
		return 1
	`)

	// KEYS = {hash}  ARGV = {ttl seconds, marker, "", uid, score, ...}
	warmHashScript = redis.NewScript(`
		if redis.call('EXISTS', KEYS[1]) == 1 then
			return 0
		end
		for i = 2, #ARGV, 2 do
			redis.call('HSET', KEYS[1], ARGV[i], ARGV[i + 1])
		end
		if tonumber(ARGV[1]) > 0 then
			redis.call('EXPIRE', KEYS[1], ARGV[1])
		end
		return 1
	`)
)

type interactionCache struct {
	client redis.Cmdable
	// ttl of a membership key, zero keeps keys until evicted
	ttl time.Duration
}

var _ domain.DedupCache = (*interactionCache)(nil)

func NewInteractionCache(client redis.Cmdable, ttl time.Duration) *interactionCache {
	return &interactionCache{
		client: client,
		ttl:    ttl,
	}
}

func interactionKey(kind domain.Kind, targetID string) string {
	return fmt.Sprintf(KeyInteraction, kind, targetID)
}

func (c *interactionCache) ttlSeconds() int64 {
	return int64(c.ttl / time.Second)
}

func (c *interactionCache) AddMember(ctx context.Context, kind domain.Kind, targetID string, uid int64) (bool, error) {
	res, err := addMemberScript.Run(ctx, c.client, []string{interactionKey(kind, targetID)}, uid, c.ttlSeconds()).Int()
	if err != nil {
		return false, err
	}
	return toTransition(res)
}

func (c *interactionCache) RemoveMember(ctx context.Context, kind domain.Kind, targetID string, uid int64) (bool, error) {
	res, err := removeMemberScript.Run(ctx, c.client, []string{interactionKey(kind, targetID)}, uid, c.ttlSeconds()).Int()
	if err != nil {
		return false, err
	}
	return toTransition(res)
}

func (c *interactionCache) IsMember(ctx context.Context, kind domain.Kind, targetID string, uid int64) (bool, error) {
	res, err := isMemberScript.Run(ctx, c.client, []string{interactionKey(kind, targetID)}, uid).Int()
	if err != nil {
		return false, err
	}
	return toTransition(res)
}

func toTransition(res int) (bool, error) {
	switch res {
	case -1:
		return false, domain.ErrCacheMiss
	case 0:
		return false, nil
	default:
		return true, nil
	}
}

// Members only applies to set-backed kinds.
func (c *interactionCache) Members(ctx context.Context, kind domain.Kind, targetID string) ([]int64, error) {
	vals, err := c.client.SMembers(ctx, interactionKey(kind, targetID)).Result()
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, domain.ErrCacheMiss
	}
	res := make([]int64, 0, len(vals))
	for _, v := range vals {
		if v == warmMarker {
			continue
		}
		uid, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			logrus.Warnf("invalid member in %s: %q", interactionKey(kind, targetID), v)
			continue
		}
		res = append(res, uid)
	}
	return res, nil
}

func (c *interactionCache) PutRating(ctx context.Context, targetID string, uid int64, score float64) error {
	res, err := putRatingScript.Run(ctx, c.client, []string{interactionKey(domain.KindRatePost, targetID)}, uid, score, c.ttlSeconds()).Int()
	if err != nil {
		return err
	}
	if res == -1 {
		return domain.ErrCacheMiss
	}
	return nil
}

func (c *interactionCache) GetRating(ctx context.Context, targetID string, uid int64) (float64, bool, error) {
	res, err := getRatingScript.Run(ctx, c.client, []string{interactionKey(domain.KindRatePost, targetID)}, uid).Slice()
	if err != nil {
		return 0, false, err
	}
	if len(res) == 0 {
		return 0, false, errors.New("empty reply from rating script")
	}
	state, _ := res[0].(int64)
	switch state {
	case 0:
		return 0, false, domain.ErrCacheMiss
	case 1:
		return 0, false, nil
	}
	if len(res) < 2 {
		return 0, false, errors.New("rating script returned no score")
	}
	str, ok := res[1].(string)
	if !ok {
		return 0, false, fmt.Errorf("unexpected score type %T", res[1])
	}
	score, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, false, err
	}
	return score, true, nil
}

// Warm is a no-op when the key was loaded concurrently, so writes made after
// the durable read are never clobbered.
func (c *interactionCache) Warm(ctx context.Context, kind domain.Kind, targetID string, records []domain.InteractionRecord) error {
	key := interactionKey(kind, targetID)
	if kind == domain.KindRatePost {
		args := make([]any, 0, 3+2*len(records))
		args = append(args, c.ttlSeconds(), warmMarker, "")
		for _, r := range records {
			args = append(args, r.UserID, r.Score)
		}
		return warmHashScript.Run(ctx, c.client, []string{key}, args...).Err()
	}

	args := make([]any, 0, 2+len(records))
	args = append(args, c.ttlSeconds(), warmMarker)
	for _, r := range records {
		args = append(args, r.UserID)
	}
	return warmSetScript.Run(ctx, c.client, []string{key}, args...).Err()
}
