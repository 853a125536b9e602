package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/outpost-go/internal/domain/shared"
)

func TestListeners_NotifyInRegistrationOrder(t *testing.T) {
	var listeners shared.Listeners[int]
	var calls []string

	listeners.Add(func(v int) { calls = append(calls, "first") })
	listeners.Add(func(v int) { calls = append(calls, "second") })

	listeners.Notify(1)

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestListeners_Remove(t *testing.T) {
	var listeners shared.Listeners[string]
	count := 0

	id := listeners.Add(func(string) { count++ })

	assert.True(t, listeners.Remove(id))
	assert.False(t, listeners.Remove(id))

	listeners.Notify("x")
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, listeners.Len())
}

func TestListeners_MutationDuringNotify(t *testing.T) {
	var listeners shared.Listeners[int]
	var calls []string
	var secondID shared.ListenerID

	listeners.Add(func(int) {
		calls = append(calls, "first")
		listeners.Remove(secondID)
		listeners.Add(func(int) { calls = append(calls, "late") })
	})
	secondID = listeners.Add(func(int) { calls = append(calls, "second") })

	listeners.Notify(1)
	assert.Equal(t, []string{"first"}, calls)

	calls = nil
	listeners.Notify(2)
	assert.Equal(t, []string{"first", "late"}, calls)
}
