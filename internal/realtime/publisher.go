package realtime

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"
)

// Publisher pushes row-change events onto the per-table redis channels. A
// publish failure is logged and swallowed; the feed is advisory and must
// never fail a write that already happened.
type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

func (p *Publisher) Publish(ctx context.Context, table string, typ EventType, row any) {
	rowJSON, err := json.Marshal(row)
	if err != nil {
		log.Printf("realtime: marshal row for %s: %v", table, err)
		return
	}

	payload, err := json.Marshal(Event{
		Type:  typ,
		Table: table,
		New:   rowJSON,
	})
	if err != nil {
		log.Printf("realtime: marshal event for %s: %v", table, err)
		return
	}

	if err := p.rdb.Publish(ctx, channelFor(table), payload).Err(); err != nil {
		log.Printf("realtime: publish to %s: %v", table, err)
	}
}
