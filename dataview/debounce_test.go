package dataview

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queryRecorder struct {
	mu     sync.Mutex
	values []string
}

func (r *queryRecorder) record(value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, value)
}

func (r *queryRecorder) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func (r *queryRecorder) wait(t *testing.T, count int) []string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if values := r.recorded(); len(values) >= count {
			return values
		}
		time.Sleep(5 * time.Millisecond)
	}
	require.FailNow(t, "timed out waiting for debounced values")
	return nil
}

func TestDebounceCollapsesBurstToLastValue(t *testing.T) {
	recorder := &queryRecorder{}
	debouncer := NewDebouncer(30*time.Millisecond, recorder.record)

	debouncer.Update("a")
	debouncer.Update("ap")
	debouncer.Update("app")

	values := recorder.wait(t, 1)
	assert.Equal(t, []string{"app"}, values)

	// Nothing else arrives after the burst settles.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, []string{"app"}, recorder.recorded())
}

func TestDebounceFlushDeliversImmediately(t *testing.T) {
	recorder := &queryRecorder{}
	debouncer := NewDebouncer(time.Hour, recorder.record)

	debouncer.Update("widget")
	debouncer.Flush()

	assert.Equal(t, []string{"widget"}, recorder.recorded())

	// Flush with nothing pending is a no-op.
	debouncer.Flush()
	assert.Equal(t, []string{"widget"}, recorder.recorded())
}

func TestDebounceCancelDropsPendingValue(t *testing.T) {
	recorder := &queryRecorder{}
	debouncer := NewDebouncer(20*time.Millisecond, recorder.record)

	debouncer.Update("abandoned")
	debouncer.Cancel()

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, recorder.recorded())
}

func TestDebounceSeparateBurstsDeliverSeparately(t *testing.T) {
	recorder := &queryRecorder{}
	debouncer := NewDebouncer(20*time.Millisecond, recorder.record)

	debouncer.Update("first")
	recorder.wait(t, 1)
	debouncer.Update("second")
	values := recorder.wait(t, 2)

	assert.Equal(t, []string{"first", "second"}, values)
}
