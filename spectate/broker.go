package spectate

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// SlowTimeout is how long Publish waits on a full subscriber before dropping
// it.
const SlowTimeout = time.Second

type Subscriber struct {
	Channel chan []byte
	once    sync.Once
}

func (s *Subscriber) close() {
	s.once.Do(func() { close(s.Channel) })
}

type Broker interface {
	Subscribe(ctx context.Context, topics ...string) *Subscriber
	Unsubscribe(ctx context.Context, sub *Subscriber, topics ...string)
	Publish(ctx context.Context, topic string, message []byte) error
	Close()
}

type MemoryBroker struct {
	subscribers map[string][]*Subscriber
	mutex       sync.Mutex
	log         zerolog.Logger
}

func NewMemoryBroker(log zerolog.Logger) *MemoryBroker {
	return &MemoryBroker{subscribers: make(map[string][]*Subscriber), log: log}
}

func (b *MemoryBroker) Subscribe(ctx context.Context, topics ...string) *Subscriber {
	sub := &Subscriber{Channel: make(chan []byte, 16)}
	b.mutex.Lock()
	defer b.mutex.Unlock()
	for _, t := range topics {
		b.subscribers[t] = append(b.subscribers[t], sub)
	}
	return sub
}

// Unsubscribe removes sub from the topics and closes its channel. It is safe
// to call more than once.
func (b *MemoryBroker) Unsubscribe(ctx context.Context, sub *Subscriber, topics ...string) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.remove(sub, topics...)
}

func (b *MemoryBroker) remove(sub *Subscriber, topics ...string) {
	sub.close()
	for _, t := range topics {
		subscribers, found := b.subscribers[t]
		if !found {
			continue
		}
		var kept []*Subscriber
		for _, s := range subscribers {
			if s != sub {
				kept = append(kept, s)
			}
		}
		b.subscribers[t] = kept
	}
}

// Publish hands msg to every subscriber of topic. A subscriber that does not
// take it within SlowTimeout is dropped.
func (b *MemoryBroker) Publish(ctx context.Context, topic string, msg []byte) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	var slow []*Subscriber
	for _, sub := range b.subscribers[topic] {
		select {
		case sub.Channel <- msg:
		case <-time.After(SlowTimeout):
			b.log.Warn().Str("topic", topic).Msg("subscriber slow, unsubscribing")
			slow = append(slow, sub)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	for _, sub := range slow {
		b.remove(sub, topic)
	}
	return nil
}

// Count returns the number of subscribers of topic.
func (b *MemoryBroker) Count(topic string) int {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return len(b.subscribers[topic])
}

func (b *MemoryBroker) Close() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	for t, subscribers := range b.subscribers {
		for _, sub := range subscribers {
			sub.close()
		}
		delete(b.subscribers, t)
	}
}
