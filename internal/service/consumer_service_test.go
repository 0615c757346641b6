package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corp-portal-be/internal/audit"
	"corp-portal-be/internal/entity"
)

type fakeSystemLogRepository struct {
	mu      sync.Mutex
	entries []*entity.SystemLog
}

func (r *fakeSystemLogRepository) Create(_ context.Context, entry *entity.SystemLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeSystemLogRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func TestConsumerPersistsAuditEntries(t *testing.T) {
	bus := audit.NewBus()
	repo := &fakeSystemLogRepository{}
	consumer := NewConsumerService(bus, repo, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Start(ctx))

	entry := audit.Entry{
		EventType: "HTTP_POST",
		Details:   map[string]interface{}{"path": "/api/news", "status": 201},
	}
	require.NoError(t, audit.Publish(bus, entry))

	assert.Eventually(t, func() bool {
		return repo.count() == 1
	}, 2*time.Second, 10*time.Millisecond)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, "HTTP_POST", repo.entries[0].EventType)
	assert.Contains(t, repo.entries[0].Payload, "/api/news")
}

func TestConsumerSkipsMalformedPayload(t *testing.T) {
	bus := audit.NewBus()
	repo := &fakeSystemLogRepository{}
	consumer := NewConsumerService(bus, repo, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Start(ctx))

	// Not JSON; must be dropped without stopping the drain loop.
	require.NoError(t, bus.Publish(audit.Topic, message.NewMessage(watermill.NewUUID(), []byte("not-json"))))
	require.NoError(t, audit.Publish(bus, audit.Entry{EventType: "GOOD"}))

	assert.Eventually(t, func() bool {
		return repo.count() == 1
	}, 2*time.Second, 10*time.Millisecond)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, "GOOD", repo.entries[0].EventType)
}
