package eventbus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type ping struct{ N int }
type pong struct{ S string }

func TestBus_DispatchByType(t *testing.T) {
	b := New()
	var pings []int
	var pongs []string
	On(b, func(_ context.Context, e ping) { pings = append(pings, e.N) })
	On(b, func(_ context.Context, e pong) { pongs = append(pongs, e.S) })

	Emit(context.Background(), b, ping{N: 1})
	Emit(context.Background(), b, pong{S: "a"})
	Emit(context.Background(), b, ping{N: 2})

	assert.Equal(t, []int{1, 2}, pings)
	assert.Equal(t, []string{"a"}, pongs)
}

func TestBus_Unsubscribe(t *testing.T) {
	b := New()
	var first, second int
	unsub := On(b, func(context.Context, ping) { first++ })
	On(b, func(context.Context, ping) { second++ })

	Emit(context.Background(), b, ping{})
	unsub()
	unsub()
	Emit(context.Background(), b, ping{})

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestGlobal(t *testing.T) {
	t.Cleanup(func() { Use(nil) })

	Use(nil)
	Subscribe(func(context.Context, ping) { t.Fatal("no bus installed") })()
	Publish(context.Background(), ping{})

	Use(New())
	var got []int
	unsub := Subscribe(func(_ context.Context, e ping) { got = append(got, e.N) })
	Publish(context.Background(), ping{N: 7})
	unsub()
	Publish(context.Background(), ping{N: 8})
	assert.Equal(t, []int{7}, got)
}

func TestEmit_NilBus(t *testing.T) {
	assert.NotPanics(t, func() { Emit(context.Background(), nil, ping{}) })
}
