package slog_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/orgdocs/mock"
	orgslog "github.com/fwojciec/orgdocs/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingCache(t *testing.T) {
	t.Parallel()

	t.Run("logs hit and miss", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Cache{
			GetFn: func(key string) (string, bool) {
				if key == "gcp:storage/docs" {
					return "# Storage", true
				}
				return "", false
			},
		}

		cache := orgslog.NewLoggingCache(inner, debugLogger(&buf))

		value, ok := cache.Get("gcp:storage/docs")
		assert.True(t, ok)
		assert.Equal(t, "# Storage", value)

		_, ok = cache.Get("gcp:missing")
		assert.False(t, ok)

		output := buf.String()
		assert.Contains(t, output, `msg="cache hit" key=gcp:storage/docs bytes=9`)
		assert.Contains(t, output, `msg="cache miss" key=gcp:missing`)
	})

	t.Run("delegates writes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		var set, invalidated string
		inner := &mock.Cache{
			SetFn:        func(key, value string) { set = key + "=" + value },
			InvalidateFn: func(key string) { invalidated = key },
		}

		cache := orgslog.NewLoggingCache(inner, debugLogger(&buf))
		cache.Set("k", "v")
		cache.Invalidate("k")

		assert.Equal(t, "k=v", set)
		assert.Equal(t, "k", invalidated)
	})
}
