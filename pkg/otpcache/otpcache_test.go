package otpcache_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/vaultshare/pkg/otpcache"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newCache(capacity int) (*otpcache.Cache, *fakeClock) {
	clk := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	return otpcache.New(capacity, 5*time.Minute, otpcache.WithClock(clk.Now)), clk
}

func TestSetGetDelete(t *testing.T) {
	c, _ := newCache(10)

	_, ok := c.Get(otpcache.Key("ann@example.com"))
	require.False(t, ok)

	c.Set(otpcache.Key("ann@example.com"), "123456")
	code, ok := c.Get("otp:ann@example.com")
	require.True(t, ok)
	require.Equal(t, "123456", code)

	c.Delete("otp:ann@example.com")
	_, ok = c.Get("otp:ann@example.com")
	require.False(t, ok)

	c.Delete("otp:missing")
}

func TestOverwriteReplacesCodeAndResetsTTL(t *testing.T) {
	c, clk := newCache(10)

	c.Set("k", "111111")
	clk.Advance(4 * time.Minute)
	c.Set("k", "222222")
	clk.Advance(4 * time.Minute)

	code, ok := c.Get("k")
	require.True(t, ok, "second write should restart the ttl")
	require.Equal(t, "222222", code)
	require.Equal(t, 1, c.Len())
}

func TestExpiry(t *testing.T) {
	c, clk := newCache(10)

	c.Set("k", "123456")
	clk.Advance(5*time.Minute - time.Nanosecond)
	_, ok := c.Get("k")
	require.True(t, ok)

	clk.Advance(time.Nanosecond)
	_, ok = c.Get("k")
	require.False(t, ok)
	require.Zero(t, c.Len(), "expired entry is removed on read")
}

func TestLRUEviction(t *testing.T) {
	c, _ := newCache(3)

	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("c", "3")

	// touch a so b becomes least recently used
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("d", "4")
	require.Equal(t, 3, c.Len())

	_, ok = c.Get("b")
	require.False(t, ok)
	for _, k := range []string{"a", "c", "d"} {
		_, ok := c.Get(k)
		require.True(t, ok, k)
	}
}

func TestDefaultCapacityBound(t *testing.T) {
	c := otpcache.New(0, 0)
	for i := range otpcache.DefaultCapacity + 50 {
		c.Set(fmt.Sprintf("k%d", i), "000000")
	}
	require.Equal(t, otpcache.DefaultCapacity, c.Len())

	_, ok := c.Get("k0")
	require.False(t, ok)
	_, ok = c.Get(fmt.Sprintf("k%d", otpcache.DefaultCapacity+49))
	require.True(t, ok)
}

func TestPurge(t *testing.T) {
	c, clk := newCache(10)

	c.Set("old1", "1")
	c.Set("old2", "2")
	clk.Advance(3 * time.Minute)
	c.Set("fresh", "3")
	clk.Advance(3 * time.Minute)

	require.Equal(t, 2, c.Purge())
	require.Equal(t, 1, c.Len())
	require.Zero(t, c.Purge())
}

func TestConcurrentAccess(t *testing.T) {
	c, _ := newCache(50)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := fmt.Sprintf("g%d-%d", g, i%60)
				c.Set(k, "123456")
				c.Get(k)
				if i%7 == 0 {
					c.Delete(k)
				}
			}
		}()
	}
	wg.Wait()
	require.LessOrEqual(t, c.Len(), 50)
}
