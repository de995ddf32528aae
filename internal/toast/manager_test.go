package toast

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/helios/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPublisher implements pubsub.Publisher for testing
type mockPublisher struct {
	messages []pubsub.Message
	mu       sync.Mutex
}

func (m *mockPublisher) Publish(ctx context.Context, msg pubsub.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *mockPublisher) Close() error {
	return nil
}

func (m *mockPublisher) getMessages() []pubsub.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]pubsub.Message, len(m.messages))
	copy(result, m.messages)
	return result
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	m := NewManager(nil, WithTTL(time.Minute))
	defer m.Shutdown()

	a := m.Add("session-a", "Hello A", KindInfo)
	m.Add("session-b", "Hello B", KindError)

	require.Len(t, m.List("session-a"), 1)
	assert.Equal(t, "Hello A", m.List("session-a")[0].Message)
	require.Len(t, m.List("session-b"), 1)
	assert.Empty(t, m.List("session-c"))

	assert.False(t, m.Dismiss("session-b", a.ID), "ids are scoped to their session")
	assert.True(t, m.Dismiss("session-a", a.ID))
	assert.Equal(t, 1, m.Sessions(), "an emptied queue is dropped")
}

func TestManager_PublishesAddAndRemove(t *testing.T) {
	publisher := &mockPublisher{}
	m := NewManager(publisher, WithTTL(30*time.Millisecond))
	defer m.Shutdown()

	added := m.Add("session-1", "Signed in", KindSuccess)

	assert.Eventually(t, func() bool { return len(publisher.getMessages()) == 2 }, time.Second, 5*time.Millisecond)

	messages := publisher.getMessages()
	for _, msg := range messages {
		assert.Equal(t, Events.Name(), msg.Topic)
		assert.Equal(t, "session-1", msg.SessionID)
	}

	var first, second Event
	require.NoError(t, json.Unmarshal(messages[0].Payload, &first))
	require.NoError(t, json.Unmarshal(messages[1].Payload, &second))
	assert.Equal(t, ActionAdded, first.Action)
	assert.Equal(t, added.ID, first.Toast.ID)
	assert.Equal(t, ActionRemoved, second.Action)
	assert.Equal(t, added.ID, second.Toast.ID)

	assert.Equal(t, 0, m.Sessions())
}

func TestManager_AddAfterQueueDropped(t *testing.T) {
	m := NewManager(nil, WithTTL(time.Minute))
	defer m.Shutdown()

	first := m.Add("session-1", "one", KindInfo)
	m.Dismiss("session-1", first.ID)
	require.Equal(t, 0, m.Sessions())

	m.Add("session-1", "two", KindInfo)
	list := m.List("session-1")
	require.Len(t, list, 1)
	assert.Equal(t, "two", list[0].Message)
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m := NewManager(&mockPublisher{}, WithTTL(20*time.Millisecond))
	defer m.Shutdown()

	const workers = 8
	const perWorker = 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			session := []string{"s1", "s2"}[w%2]
			for i := 0; i < perWorker; i++ {
				added := m.Add(session, "msg", KindInfo)
				if i%3 == 0 {
					m.Dismiss(session, added.ID)
				}
				_ = m.List(session)
			}
		}(w)
	}
	wg.Wait()

	assert.Eventually(t, func() bool { return m.Sessions() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestManager_ShutdownStopsTimers(t *testing.T) {
	publisher := &mockPublisher{}
	m := NewManager(publisher, WithTTL(30*time.Millisecond))

	m.Add("session-1", "pending", KindInfo)
	m.Shutdown()

	time.Sleep(80 * time.Millisecond)
	assert.Len(t, publisher.getMessages(), 1, "only the add should have been published")
	assert.Empty(t, m.List("session-1"))
}

func TestManager_AddAfterShutdownIsDropped(t *testing.T) {
	publisher := &mockPublisher{}
	m := NewManager(publisher, WithTTL(30*time.Millisecond))
	m.Shutdown()

	got := m.Add("session-1", "late", KindError)

	assert.Equal(t, Toast{}, got)
	assert.Empty(t, m.List("session-1"))
	assert.Zero(t, m.Sessions(), "no queue is created after shutdown")

	// A scheduled expiry would publish a removal within this window.
	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, publisher.getMessages())
}
