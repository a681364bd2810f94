package viewqueue

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type event struct {
	BookID   string    `bson:"book_id"`
	ViewedAt time.Time `bson:"viewed_at"`
}

var (
	colRef *mongo.Collection
	ch     chan event
	done   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
)

const flushEvery = time.Second

// Start spins up N workers draining a buffered channel into the
// book_views collection. Suggested: buf=10000, workers=2.
func Start(col *mongo.Collection, buf, workers int) {
	once.Do(func() {
		colRef = col
		ch = make(chan event, buf)
		done = make(chan struct{})
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go worker()
		}
	})
}

// Enqueue queues a view event without blocking. If the buffer is full the
// event is dropped; acceptable for metrics.
func Enqueue(bookID string) {
	if bookID == "" || ch == nil {
		return
	}
	ev := event{BookID: bookID, ViewedAt: time.Now().UTC()}
	select {
	case ch <- ev:
	default:
		// buffer full; drop
	}
}

// Shutdown signals workers to stop, flushes remaining events, and waits.
func Shutdown() {
	if done == nil {
		return
	}
	close(done)
	wg.Wait()
}

func worker() {
	defer wg.Done()

	batch := make([]event, 0, 100)
	ticker := time.NewTicker(flushEvery)
	defer ticker.Stop()

	for {
		select {
		case ev := <-ch:
			batch = append(batch, ev)
			if len(batch) >= cap(batch) {
				flush(&batch)
			}
		case <-ticker.C:
			flush(&batch)
		case <-done:
			// drain whatever is still queued, then go
			for {
				select {
				case ev := <-ch:
					batch = append(batch, ev)
				default:
					flush(&batch)
					return
				}
			}
		}
	}
}

func flush(batch *[]event) {
	if len(*batch) == 0 {
		return
	}
	docs := make([]interface{}, len(*batch))
	for i, ev := range *batch {
		docs[i] = ev
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := colRef.InsertMany(ctx, docs); err != nil {
		log.Printf("[ViewQueue] insert failed, dropping %d events: %v\n", len(docs), err)
	}
	*batch = (*batch)[:0]
}
