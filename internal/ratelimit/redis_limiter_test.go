package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/rueidis"
	"github.com/redis/rueidis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func liveContext() gomock.Matcher {
	return gomock.Cond(func(ctx context.Context) bool { return ctx.Err() == nil })
}

func expectWindow(client *mock.Client, key string, count int64, expireErr error) *gomock.Call {
	expire := mock.Result(mock.RedisInt64(1))
	if expireErr != nil {
		expire = mock.ErrorResult(expireErr)
	}

	return client.EXPECT().
		DoMulti(liveContext(), mock.Match("INCR", key), mock.Match("EXPIRE", key, "60", "NX")).
		Return([]rueidis.RedisResult{mock.Result(mock.RedisInt64(count)), expire})
}

func TestRedisLimiter_DeniesOverLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	l := NewRedisLimiter(client, "rl:", Options{Limit: 2, Window: time.Minute})
	ctx := context.Background()

	gomock.InOrder(
		expectWindow(client, "rl:1.2.3.4", 1, nil),
		expectWindow(client, "rl:1.2.3.4", 2, nil),
		expectWindow(client, "rl:1.2.3.4", 3, nil),
	)

	for _, want := range []bool{true, true, false} {
		ok, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.Equal(t, want, ok)
	}
}

func TestRedisLimiter_FailedExpireIsRepairedOnNextCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	l := NewRedisLimiter(client, "rl:", Options{Limit: 5, Window: time.Minute})

	gomock.InOrder(
		expectWindow(client, "rl:k", 1, context.Canceled),
		expectWindow(client, "rl:k", 2, nil),
	)

	_, err := l.Allow(context.Background(), "k")
	require.ErrorIs(t, err, context.Canceled)

	ok, err := l.Allow(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLimiter_IgnoresRequestCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	l := NewRedisLimiter(client, "rl:", Options{Limit: 5, Window: time.Minute})

	expectWindow(client, "rl:k", 1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := l.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLimiter_IncrementFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	l := NewRedisLimiter(client, "rl:", Options{Limit: 5, Window: time.Minute})

	client.EXPECT().
		DoMulti(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]rueidis.RedisResult{
			mock.Result(mock.RedisError("ERR value is not an integer")),
			mock.Result(mock.RedisInt64(0)),
		})

	ok, err := l.Allow(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, ok)
}
