//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package ctrlc

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestNativeRoundTrip_Unix(t *testing.T) {
	for _, sig := range All() {
		native, ok := toNative(sig)
		require.Truef(t, ok, "%v should exist on unix", sig)
		back, ok := fromNative(native)
		require.True(t, ok)
		assert.Equal(t, sig, back)
	}
	native, _ := toNative(Interrupt)
	assert.Equal(t, os.Interrupt, native)
	assert.Equal(t, "SIGINT", nativeName(native))
}

func TestFromNativeOutOfRange_Unix(t *testing.T) {
	for _, n := range []syscall.Signal{0, -1, 200, 4096, unix.SIGKILL, unix.SIGSEGV} {
		_, ok := fromNative(n)
		assert.Falsef(t, ok, "signal %d must not map", int(n))
	}
	_, ok := toNative(SignalType(numSignalTypes))
	assert.False(t, ok)
}

// Real OS deliveries. SIGUSR1/SIGUSR2 are used because the default
// disposition of SIGINT may be "ignore" when tests run in a background job.

func TestRaiseCountsDeliveries_Unix(t *testing.T) {
	tbl := NewTable()
	r := NewRegistry(WithTable(tbl))
	require.NoError(t, r.SetHandler(User1))
	defer r.ResetHandler(User1)

	c, _ := tbl.Get(User1)
	for i := 1; i <= 3; i++ {
		require.NoError(t, Raise(User1))
		// The runtime coalesces a pending signal, so wait for each one.
		want := uint64(i)
		require.Eventually(t, func() bool { return c.Load() == want }, 2*time.Second, 5*time.Millisecond)
	}

	require.ErrorIs(t, r.SetHandler(User1), ErrMultipleHandlers)
}

func TestResetThenReinstall_Unix(t *testing.T) {
	tbl := NewTable()
	r := NewRegistry(WithTable(tbl))
	c, _ := tbl.Get(User2)

	require.NoError(t, r.SetHandler(User2))
	require.NoError(t, Raise(User2))
	require.Eventually(t, func() bool { return c.Load() == 1 }, 2*time.Second, 5*time.Millisecond)

	r.ResetHandler(User2)
	assert.False(t, r.IsRegistered(User2))

	require.NoError(t, r.SetHandler(User2))
	defer r.ResetHandler(User2)
	require.NoError(t, Raise(User2))
	require.Eventually(t, func() bool { return c.Load() == 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestParseSignalTypeNativeNames_Unix(t *testing.T) {
	for _, sig := range All() {
		native, _ := toNative(sig)
		parsed, ok := ParseSignalType(nativeName(native))
		require.Truef(t, ok, "cannot parse %s", nativeName(native))
		assert.Equal(t, sig, parsed)
	}
}

func TestDefaultRegistryRoundTrip_Unix(t *testing.T) {
	c, _ := GetCounter(User1)
	before := c.Load()

	require.NoError(t, SetHandler(User1))
	defer ResetHandler(User1)
	assert.True(t, IsRegistered(User1))
	require.ErrorIs(t, SetHandler(User1), ErrMultipleHandlers)
	require.ErrorIs(t, SetHandlers(User1), ErrMultipleHandlers)

	require.NoError(t, Raise(User1))
	require.Eventually(t, func() bool { return c.Load() == before+1 }, 2*time.Second, 5*time.Millisecond)

	ResetHandler(User1)
	assert.False(t, IsRegistered(User1))
	assert.Equal(t, before+1, c.Load(), "reset must not clear the counter")

	require.NoError(t, SetHandler(User1))
	require.NoError(t, Raise(User1))
	require.Eventually(t, func() bool { return c.Load() == before+2 }, 2*time.Second, 5*time.Millisecond)
}

func TestRegistriesShareRegistrations_Unix(t *testing.T) {
	t1, t2 := NewTable(), NewTable()
	r1 := NewRegistry(WithTable(t1))
	r2 := NewRegistry(WithTable(t2))
	c1, _ := t1.Get(User2)
	c2, _ := t2.Get(User2)

	require.NoError(t, r1.SetHandler(User2))
	defer r1.ResetHandler(User2)
	require.ErrorIs(t, r2.SetHandler(User2), ErrMultipleHandlers)
	require.ErrorIs(t, Default.SetHandler(User2), ErrMultipleHandlers)
	assert.True(t, r2.IsRegistered(User2))

	require.NoError(t, Raise(User2))
	require.Eventually(t, func() bool { return c1.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
	// Give a second subscriber, if any, time to count too.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, uint64(1), c1.Load(), "one delivery counts once")
	assert.Zero(t, c2.Load())

	// Resetting through another registry tears down r1's handler for everyone.
	r2.ResetHandler(User2)
	assert.False(t, r1.IsRegistered(User2))
	assert.False(t, r2.IsRegistered(User2))

	require.NoError(t, r2.SetHandler(User2))
	defer r2.ResetHandler(User2)
	require.ErrorIs(t, r1.SetHandler(User2), ErrMultipleHandlers)
	require.NoError(t, Raise(User2))
	require.Eventually(t, func() bool { return c2.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, uint64(1), c1.Load())
}
