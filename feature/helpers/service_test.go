package helpers

import (
	"sync"
	"testing"

	helpercfg "helperkit/core/helpers"
	"helperkit/core/utils"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(helpercfg.Config{ColorCacheSize: 4, DebounceMS: 1}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	return svc
}

func TestService_Color(t *testing.T) {
	svc := newTestService(t)

	want, _ := utils.StringToColor("Jane Doe")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, ok := svc.Color("Jane Doe")
			assert.True(t, ok)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, svc.CachedColors())

	_, ok := svc.Color("")
	assert.False(t, ok)
}

func TestService_ColorCacheBounded(t *testing.T) {
	svc := newTestService(t)
	for _, s := range []string{"a", "b", "c", "d", "e", "f"} {
		_, ok := svc.Color(s)
		require.True(t, ok)
	}
	assert.Equal(t, 4, svc.CachedColors())
}

func TestService_Prune(t *testing.T) {
	svc := newTestService(t)

	t.Run("Shallow", func(t *testing.T) {
		out, err := svc.Prune([]byte(`{"a": "", "b": 1, "c": [], "d": {"e": ""}}`), false)
		require.NoError(t, err)
		want := map[string]any{"b": float64(1), "d": map[string]any{"e": ""}}
		if diff := cmp.Diff(want, out); diff != "" {
			t.Errorf("Prune() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Deep", func(t *testing.T) {
		out, err := svc.Prune([]byte(`{"a": {"b": ""}, "c": [1, {}]}`), true)
		require.NoError(t, err)
		want := map[string]any{"c": []any{float64(1)}}
		if diff := cmp.Diff(want, out); diff != "" {
			t.Errorf("Prune() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("ShallowNeedsObject", func(t *testing.T) {
		_, err := svc.Prune([]byte(`[1]`), false)
		assert.ErrorIs(t, err, utils.ErrNotObject)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		_, err := svc.Prune([]byte(`{`), true)
		assert.Error(t, err)
	})
}

func TestService_FindDefaultsToID(t *testing.T) {
	svc := newTestService(t)
	records := []utils.Record{{"id": float64(1), "slug": "x"}, {"id": float64(2), "slug": "y"}}

	r, ok := svc.Find(records, "", float64(2))
	require.True(t, ok)
	assert.Equal(t, "y", r["slug"])

	r, ok = svc.Find(records, "slug", "x")
	require.True(t, ok)
	assert.Equal(t, float64(1), r["id"])

	matched, ok := svc.Match(records, []utils.Record{{"id": 1}}, "")
	require.True(t, ok)
	assert.Len(t, matched, 1)
}
