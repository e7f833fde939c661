// Package broadcast provides type-safe, non-blocking one-to-many delivery of
// messages to channel subscribers.
//
// The throttle scheduler uses it to fan out lifecycle signals (scheduled,
// unwait, wait, stop) to any number of consumers without ever letting a slow
// consumer delay task dispatch.
//
// Basic usage:
//
//	b := broadcast.NewMemoryBroadcaster[string](10)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	defer sub.Close()
//
//	_ = b.Broadcast(ctx, broadcast.Message[string]{Data: "hello"})
//
//	for msg := range sub.Receive(ctx) {
//		fmt.Println(msg.Data)
//	}
//
// Subscriptions end when:
//   - the context passed to Subscribe is cancelled
//   - the subscriber is closed
//   - the broadcaster is closed
//
// A subscriber whose buffer is full misses messages; Dropped reports how many.
// Messages that are delivered arrive in the order they were broadcast.
package broadcast
