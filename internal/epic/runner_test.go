package epic

import (
	"context"
	"testing"
	"time"

	"cart-service/internal/models"
	"cart-service/internal/storage"
	"cart-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStartupRehydrationFlow(t *testing.T) {
	mem := storage.NewMemoryStorage()
	mem.Seed(models.CartState{"x": 3})

	st := store.New(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go st.Run(ctx)

	runner := NewRunner(st,
		NewRehydrateEpic(mem),
		NewPersistEpic(mem),
	)
	runner.Start(ctx)

	st.Dispatch(models.RehydrateCartNext{})

	require.Eventually(t, func() bool {
		return st.State().Cart.Equal(models.CartState{"x": 3})
	}, time.Second, 5*time.Millisecond, "rehydrated snapshot should replace the cart")

	// Mutations after rehydration are persisted once past the
	// post-rehydration skip.
	st.Dispatch(models.AddProductToCart{ProductID: "x"})
	st.Dispatch(models.AddProductToCart{ProductID: "y"})

	require.Eventually(t, func() bool {
		writes := mem.Writes()
		return len(writes) == 1 && writes[0].Equal(models.CartState{"x": 4, "y": 1})
	}, time.Second, 5*time.Millisecond)
}

func TestRehydrationFailureKeepsCartUsable(t *testing.T) {
	mem := storage.NewMemoryStorage()
	mem.GetErr = assert.AnError

	st := store.New(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go st.Run(ctx)

	runner := NewRunner(st,
		NewRehydrateEpic(mem),
		NewPersistEpic(mem),
	)
	runner.Start(ctx)

	st.Dispatch(models.RehydrateCartNext{})
	st.Dispatch(models.AddProductToCart{ProductID: "a"})

	require.Eventually(t, func() bool {
		return st.State().Cart.Equal(models.CartState{"a": 1})
	}, time.Second, 5*time.Millisecond, "cart stays usable when the snapshot read fails")
}

type panickyEpic struct{}

func (panickyEpic) Name() string { return "panicky" }

func (panickyEpic) Run(ctx context.Context, changes <-chan store.Change, dispatch Dispatcher) {
	for range changes {
		panic("boom")
	}
}

func TestPanickingEpicDoesNotDisableSiblings(t *testing.T) {
	mem := storage.NewMemoryStorage()

	st := store.New(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go st.Run(ctx)

	runner := NewRunner(st,
		panickyEpic{},
		NewRehydrateEpic(mem),
		NewPersistEpic(mem),
	)
	runner.Start(ctx)

	st.Dispatch(models.RehydrateCartNext{})
	st.Dispatch(models.AddProductToCart{ProductID: "a"})
	st.Dispatch(models.AddProductToCart{ProductID: "b"})

	require.Eventually(t, func() bool {
		writes := mem.Writes()
		return len(writes) == 1 && writes[0].Equal(models.CartState{"a": 1, "b": 1})
	}, time.Second, 5*time.Millisecond, "persistence keeps working while a sibling panics")
}

func TestRunnerStopsOnCancel(t *testing.T) {
	mem := storage.NewMemoryStorage()

	st := store.New(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	go st.Run(ctx)

	runner := NewRunner(st, NewRehydrateEpic(mem), NewPersistEpic(mem))
	runner.Start(ctx)

	cancel()

	done := make(chan struct{})
	go func() {
		runner.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runner did not stop after cancel")
	}
}
