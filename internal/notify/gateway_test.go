package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalGateway_DisplayAndConsume(t *testing.T) {
	g := NewLocalGateway(4)

	err := g.Display(context.Background(), "title", "body", NewRecipePayload("r1"))
	require.NoError(t, err)

	select {
	case n := <-g.Displays():
		assert.Equal(t, "title", n.Title)
		assert.Equal(t, "r1", n.Payload.RecipeID())
	default:
		t.Fatal("expected a pending notification")
	}
}

func TestLocalGateway_DisplayDropsWhenFull(t *testing.T) {
	g := NewLocalGateway(1)

	require.NoError(t, g.Display(context.Background(), "a", "", NewRecipePayload("r1")))
	err := g.Display(context.Background(), "b", "", NewRecipePayload("r2"))

	assert.ErrorIs(t, err, ErrGatewayBusy)
}

func TestLocalGateway_TapRoundTrip(t *testing.T) {
	g := NewLocalGateway(4)

	g.Tap(NewRecipePayload("r7"))

	select {
	case p := <-g.Responses():
		assert.Equal(t, "r7", p.RecipeID())
		assert.Equal(t, TypeNewRecipe, p.Type())
	default:
		t.Fatal("expected a tap response")
	}
}

func TestLocalGateway_TapDropsWhenFull(t *testing.T) {
	g := NewLocalGateway(1)

	g.Tap(NewRecipePayload("r1"))
	g.Tap(NewRecipePayload("r2")) // dropped, must not block

	p := <-g.Responses()
	assert.Equal(t, "r1", p.RecipeID())

	select {
	case <-g.Responses():
		t.Fatal("second tap should have been dropped")
	default:
	}
}
