package slack

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
)

func TestThreadCache(t *testing.T) {
	ctx := context.Background()

	t.Run("caches lookup results", func(t *testing.T) {
		var lookups int
		cache := newThreadCache(func(ctx context.Context, channelID, threadTS string) (bool, error) {
			lookups++
			return true, nil
		}, time.Hour)

		for i := 0; i < 3; i++ {
			opened, err := cache.isOpened(ctx, "C11111", "1234567890.123456")
			gt.NoError(t, err)
			gt.True(t, opened)
		}
		gt.Equal(t, lookups, 1)
	})

	t.Run("caches negative results too", func(t *testing.T) {
		var lookups int
		cache := newThreadCache(func(ctx context.Context, channelID, threadTS string) (bool, error) {
			lookups++
			return false, nil
		}, time.Hour)

		for i := 0; i < 2; i++ {
			opened, err := cache.isOpened(ctx, "C11111", "1234567890.123456")
			gt.NoError(t, err)
			gt.False(t, opened)
		}
		gt.Equal(t, lookups, 1)
	})

	t.Run("distinguishes channels sharing a thread timestamp", func(t *testing.T) {
		cache := newThreadCache(func(ctx context.Context, channelID, threadTS string) (bool, error) {
			return channelID == "C11111", nil
		}, time.Hour)

		opened, err := cache.isOpened(ctx, "C11111", "1234567890.123456")
		gt.NoError(t, err)
		gt.True(t, opened)

		opened, err = cache.isOpened(ctx, "C22222", "1234567890.123456")
		gt.NoError(t, err)
		gt.False(t, opened)
	})

	t.Run("does not cache lookup failures", func(t *testing.T) {
		var lookups int
		cache := newThreadCache(func(ctx context.Context, channelID, threadTS string) (bool, error) {
			lookups++
			if lookups == 1 {
				return false, errors.New("conversations.replies failed")
			}
			return true, nil
		}, time.Hour)

		_, err := cache.isOpened(ctx, "C11111", "1234567890.123456")
		gt.Error(t, err)

		opened, err := cache.isOpened(ctx, "C11111", "1234567890.123456")
		gt.NoError(t, err)
		gt.True(t, opened)
		gt.Equal(t, lookups, 2)
	})

	t.Run("expires entries after the TTL", func(t *testing.T) {
		var lookups int
		cache := newThreadCache(func(ctx context.Context, channelID, threadTS string) (bool, error) {
			lookups++
			return true, nil
		}, 10*time.Millisecond)

		_, err := cache.isOpened(ctx, "C11111", "1234567890.123456")
		gt.NoError(t, err)

		time.Sleep(20 * time.Millisecond)

		_, err = cache.isOpened(ctx, "C11111", "1234567890.123456")
		gt.NoError(t, err)
		gt.Equal(t, lookups, 2)
	})
}
