package store

import (
	"context"
	"testing"
	"time"

	"cart-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func receiveChange(t *testing.T, sub *Subscription) Change {
	t.Helper()
	select {
	case change := <-sub.C:
		return change
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for change")
		return Change{}
	}
}

func TestStoreAppliesActionsInDispatchOrder(t *testing.T) {
	st := New(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := st.Subscribe()
	go st.Run(ctx)

	st.Dispatch(models.AddProductToCart{ProductID: "apple"})
	st.Dispatch(models.AddProductToCart{ProductID: "apple"})
	st.Dispatch(models.RemoveProductFromCart{ProductID: "apple"})

	first := receiveChange(t, sub)
	require.IsType(t, models.AddProductToCart{}, first.Action)
	assert.Equal(t, models.CartState{"apple": 1}, first.State.Cart)

	second := receiveChange(t, sub)
	assert.Equal(t, models.CartState{"apple": 2}, second.State.Cart)

	third := receiveChange(t, sub)
	require.IsType(t, models.RemoveProductFromCart{}, third.Action)
	assert.Equal(t, models.CartState{"apple": 1}, third.State.Cart)

	assert.Equal(t, models.CartState{"apple": 1}, st.State().Cart)
}

func TestChangePairsActionWithResultingState(t *testing.T) {
	st := New(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := st.Subscribe()
	go st.Run(ctx)

	st.Dispatch(models.RehydrateCartComplete{Cart: models.CartState{"x": 3}})

	change := receiveChange(t, sub)
	require.IsType(t, models.RehydrateCartComplete{}, change.Action)
	assert.Equal(t, models.CartState{"x": 3}, change.State.Cart)
}

func TestEverySubscriberSeesEveryChange(t *testing.T) {
	st := New(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	subA := st.Subscribe()
	subB := st.Subscribe()
	go st.Run(ctx)

	st.Dispatch(models.AddProductToCart{ProductID: "apple"})
	st.Dispatch(models.ClearCart{})

	for _, sub := range []*Subscription{subA, subB} {
		first := receiveChange(t, sub)
		assert.Equal(t, models.CartState{"apple": 1}, first.State.Cart)
		second := receiveChange(t, sub)
		assert.Equal(t, models.CartState{}, second.State.Cart)
	}
}

func TestClosedSubscriptionStopsReceiving(t *testing.T) {
	st := New(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := st.Subscribe()
	go st.Run(ctx)

	st.Dispatch(models.AddProductToCart{ProductID: "apple"})
	receiveChange(t, sub)
	sub.Close()

	st.Dispatch(models.AddProductToCart{ProductID: "pear"})

	require.Eventually(t, func() bool {
		return st.State().Cart.Equal(models.CartState{"apple": 1, "pear": 1})
	}, time.Second, 5*time.Millisecond)

	select {
	case change, ok := <-sub.C:
		if ok {
			t.Fatalf("unexpected change after close: %v", change.Action.ActionType())
		}
	default:
	}
}

func TestInitialState(t *testing.T) {
	st := New(zap.NewNop())

	state := st.State()
	assert.NotNil(t, state.Cart)
	assert.Empty(t, state.Cart)
	assert.NotNil(t, state.Products.Entities)
	assert.False(t, state.Products.Loading)
}
