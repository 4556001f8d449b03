package mq

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"nivaas/models"
	"nivaas/rdx"
)

const eventsChannel = "listing-events"

// Emit publishes an indexing event to Redis; the worker picks it up
// asynchronously so request handlers never wait on index maintenance.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}
	if err := rdx.Conn.Publish(ctx, eventsChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s event: %v", eventName, err)
	}
}

// StartIndexingWorker consumes listing events and keeps the Redis side indexes
// current: the city-suggestion set and the cached filtered-list responses.
// Cancelling ctx closes the subscription and stops the loop.
func StartIndexingWorker(ctx context.Context) {
	sub := rdx.Conn.Subscribe(ctx, eventsChannel)
	ch := sub.Channel()

	go func() {
		<-ctx.Done()
		sub.Close()
	}()

	log.Println("[IndexingWorker] Listening for listing events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[IndexingWorker] Failed to parse event: %v", err)
			continue
		}

		if city := strings.TrimSpace(event.City); city != "" {
			if err := rdx.RdxSAdd("suggest:cities", city); err != nil {
				log.Printf("[IndexingWorker] Failed to index city %q: %v", city, err)
			}
		}

		switch event.EntityType {
		case "property", "review":
			if err := rdx.RdxDelPattern("propfilter:*"); err != nil {
				log.Printf("[IndexingWorker] Cache invalidation failed: %v", err)
			}
		}
	}
}
