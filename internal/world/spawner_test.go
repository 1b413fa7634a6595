package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skunkedgame/skunkd/internal/domain"
	"github.com/skunkedgame/skunkd/internal/world"
)

func TestSpawner_SpawnAndGet(t *testing.T) {
	sp := world.NewSpawner()

	p := sp.Spawn(domain.NewResourceStack("Oak Wood", domain.ResourceWood, 10), domain.Position{X: 1, Z: 2})
	require.NotEmpty(t, p.ID)
	assert.False(t, p.SpawnedAt.IsZero())

	got, ok := sp.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, 10, got.Item.Quantity)
	assert.Equal(t, domain.Position{X: 1, Z: 2}, got.Pos)

	_, ok = sp.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, 1, sp.Count())
}

func TestSpawner_UniqueIDs(t *testing.T) {
	sp := world.NewSpawner()

	a := sp.Spawn(domain.NewResourceStack("Stone", domain.ResourceStone, 1), domain.Position{})
	b := sp.Spawn(domain.NewResourceStack("Stone", domain.ResourceStone, 1), domain.Position{})
	assert.NotEqual(t, a.ID, b.ID)
}

// TestSpawner_CollectPartial verifies partial collection decrements the
// pickup and full collection despawns it into the recent set.
func TestSpawner_CollectPartial(t *testing.T) {
	sp := world.NewSpawner()
	p := sp.Spawn(domain.NewResourceStack("Stone", domain.ResourceStone, 10), domain.Position{})

	require.True(t, sp.Collect(p.ID, 4))
	got, ok := sp.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, 6, got.Item.Quantity)
	assert.False(t, sp.RecentlyDespawned(p.ID))

	require.True(t, sp.Collect(p.ID, 6))
	_, ok = sp.Get(p.ID)
	assert.False(t, ok)
	assert.True(t, sp.RecentlyDespawned(p.ID))

	assert.False(t, sp.Collect(p.ID, 1), "collecting a despawned pickup fails")
}

func TestSpawner_Despawn(t *testing.T) {
	sp := world.NewSpawner()
	p := sp.Spawn(domain.NewResourceStack("Stone", domain.ResourceStone, 1), domain.Position{})

	require.True(t, sp.Despawn(p.ID))
	assert.False(t, sp.Despawn(p.ID))
	assert.True(t, sp.RecentlyDespawned(p.ID))
	assert.Zero(t, sp.Count())
}

func TestSpawner_All(t *testing.T) {
	sp := world.NewSpawner()
	sp.Spawn(domain.NewResourceStack("Stone", domain.ResourceStone, 1), domain.Position{})
	sp.Spawn(domain.NewResourceStack("Honey", domain.ResourceHoney, 2), domain.Position{})

	all := sp.All()
	assert.Len(t, all, 2)
}
