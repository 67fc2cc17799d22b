package cli

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestGo(t *testing.T) {
	f := Go(context.Background(), func(ctx context.Context) (int, error) {
		return 42, nil
	})
	val, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, val)

	val, err = f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, val, "Result should be cached")
}

func TestGo_Panic(t *testing.T) {
	_, err := Await(context.Background(), func(ctx context.Context) (string, error) {
		panic("oops")
	})
	assert.EqualError(t, err, "panic in async work: oops")
}

func TestFuture_AwaitCanceled(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	f := Go(context.Background(), func(ctx context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	val, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, val)
}

func TestAsync(t *testing.T) {
	errBoom := errors.New("boom")
	tests := map[string]struct {
		err      error
		expected []string
	}{
		"Continues after success": {
			expected: []string{"async", "next"},
		},
		"Stops on error": {
			err:      errBoom,
			expected: []string{"async"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var calls []string
			err := runChain(testSession(t), []Handler{
				Async(func(ctx context.Context, s *Session) error {
					calls = append(calls, "async")
					return tc.err
				}),
				recorder(&calls, "next"),
			})
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.expected, calls)
		})
	}
}

func TestAsync_Nil(t *testing.T) {
	assert.Panics(t, func() {
		Async(nil)
	})
	assert.Panics(t, func() {
		Go[int](context.Background(), nil)
	})
}
