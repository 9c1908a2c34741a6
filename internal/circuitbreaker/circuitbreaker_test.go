//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStore = errors.New("store unavailable")

func failing() error { return errStore }

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	cb := New(DefaultConfig("mongodb-companies"))

	err := cb.Execute(context.Background(), func() error { return nil })

	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, "mongodb-companies", cb.Name())
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := New(Config{FailureThreshold: 2, SuccessThreshold: 1, Timeout: time.Hour, Name: "test"})

	assert.ErrorIs(t, cb.Execute(context.Background(), failing), errStore)
	assert.Equal(t, StateClosed, cb.State())

	assert.ErrorIs(t, cb.Execute(context.Background(), failing), errStore)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(context.Background(), func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	cb := New(Config{FailureThreshold: 1, SuccessThreshold: 2, Timeout: 20 * time.Millisecond, Name: "test"})

	_ = cb.Execute(context.Background(), failing)
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(30 * time.Millisecond)

	require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))
	assert.Equal(t, StateHalfOpen, cb.State())

	require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := New(Config{FailureThreshold: 1, SuccessThreshold: 2, Timeout: 20 * time.Millisecond, Name: "test"})

	_ = cb.Execute(context.Background(), failing)
	time.Sleep(30 * time.Millisecond)

	assert.ErrorIs(t, cb.Execute(context.Background(), failing), errStore)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_IgnoredErrors(t *testing.T) {
	errDuplicate := errors.New("duplicate key")
	cb := New(Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Hour,
		Name:             "test",
		IsFailure:        func(err error) bool { return !errors.Is(err, errDuplicate) },
	})

	err := cb.Execute(context.Background(), func() error { return errDuplicate })

	assert.ErrorIs(t, err, errDuplicate)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_CanceledContext(t *testing.T) {
	cb := New(Config{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Hour, Name: "test"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := cb.Execute(ctx, func() error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
	assert.Equal(t, StateClosed, cb.State())
}

func TestDo(t *testing.T) {
	cb := New(DefaultConfig("test"))

	got, err := Do(context.Background(), cb, func() (int64, error) { return 42, nil })
	assert.NoError(t, err)
	assert.Equal(t, int64(42), got)

	_, err = Do(context.Background(), cb, func() (int64, error) { return 0, errStore })
	assert.ErrorIs(t, err, errStore)
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := New(Config{FailureThreshold: 3, SuccessThreshold: 1, Timeout: time.Hour, Name: "test"})
	_ = cb.Execute(context.Background(), failing)

	stats := cb.GetStats()

	assert.Equal(t, "closed", stats.State)
	assert.Equal(t, 1, stats.FailureCount)
	assert.True(t, stats.IsHealthy)
	assert.False(t, stats.LastFailure.IsZero())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(9).String())
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	var transitions []string
	cb := New(Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          20 * time.Millisecond,
		Name:             "test",
		OnStateChange: func(name string, from, to State) {
			assert.Equal(t, "test", name)
			transitions = append(transitions, from.String()+">"+to.String())
		},
	})

	_ = cb.Execute(context.Background(), failing)
	_ = cb.Execute(context.Background(), failing)
	time.Sleep(30 * time.Millisecond)
	require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))

	assert.Equal(t, []string{"closed>open", "open>half-open", "half-open>closed"}, transitions)
}
