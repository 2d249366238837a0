package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/memmark/pkg/core"
)

func TestSource_Bridges(t *testing.T) {
	in := make(chan core.Event, 1)
	src := NewSource(in)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, src.Start(ctx))

	in <- core.Event{Type: core.EventModify, Path: "w/QWRh.idr.json"}

	select {
	case e := <-src.Events():
		assert.Equal(t, "MODIFY w/QWRh.idr.json", e.String())
	case <-time.After(time.Second):
		t.Fatal("event not bridged")
	}

	close(in)
	select {
	case _, ok := <-src.Events():
		assert.False(t, ok, "output closes with input")
	case <-time.After(time.Second):
		t.Fatal("output not closed")
	}
}
