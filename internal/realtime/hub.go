package realtime

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/go-redis/redis/v8"
)

// Subscriber hands out filtered live subscriptions to row-change events.
type Subscriber interface {
	Subscribe(table string, filter func(Event) bool, fn func(Event)) (unsubscribe func())
}

// Hub fans redis channel messages out to in-process subscribers. One redis
// subscription is held per table while at least one subscriber is attached;
// it is released when the last one unsubscribes.
type Hub struct {
	rdb *redis.Client

	mu     sync.Mutex
	tables map[string]*tableFeed
	nextID int
}

type subscription struct {
	filter func(Event) bool
	fn     func(Event)
}

type tableFeed struct {
	pubsub *redis.PubSub
	subs   map[int]subscription
}

func NewHub(rdb *redis.Client) *Hub {
	return &Hub{
		rdb:    rdb,
		tables: make(map[string]*tableFeed),
	}
}

func (h *Hub) Subscribe(table string, filter func(Event) bool, fn func(Event)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	feed, ok := h.tables[table]
	if !ok {
		pubsub := h.rdb.Subscribe(context.Background(), channelFor(table))
		feed = &tableFeed{
			pubsub: pubsub,
			subs:   make(map[int]subscription),
		}
		h.tables[table] = feed
		go h.pump(table, pubsub)
	}

	h.nextID++
	id := h.nextID
	feed.subs[id] = subscription{filter: filter, fn: fn}

	return func() { h.unsubscribe(table, id) }
}

func (h *Hub) unsubscribe(table string, id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	feed, ok := h.tables[table]
	if !ok {
		return
	}
	delete(feed.subs, id)

	if len(feed.subs) == 0 {
		if err := feed.pubsub.Close(); err != nil {
			log.Printf("realtime: close feed %s: %v", table, err)
		}
		delete(h.tables, table)
	}
}

func (h *Hub) pump(table string, pubsub *redis.PubSub) {
	for msg := range pubsub.Channel() {
		var ev Event
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			log.Printf("realtime: bad event on %s: %v", table, err)
			continue
		}
		h.dispatch(table, ev)
	}
}

func (h *Hub) dispatch(table string, ev Event) {
	h.mu.Lock()
	feed, ok := h.tables[table]
	var targets []func(Event)
	if ok {
		for _, sub := range feed.subs {
			if sub.filter == nil || sub.filter(ev) {
				targets = append(targets, sub.fn)
			}
		}
	}
	h.mu.Unlock()

	for _, fn := range targets {
		fn(ev)
	}
}
