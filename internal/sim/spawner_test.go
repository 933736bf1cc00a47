package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/river-rush/internal/config"
	"github.com/vovakirdan/river-rush/internal/ecs"
)

func newSpawner(t *testing.T, seed int64) (*Spawner, *World, *config.RiverConfig) {
	t.Helper()
	cfg := config.DefaultRiverConfig()
	dm := config.NewDifficultyManager(cfg.Difficulty)
	s := NewSpawner(&cfg, dm, NewFactory(&cfg, seed), seed)
	s.Reset(seed, 0)
	return s, NewWorld(), &cfg
}

func TestCollectibleBandsPartition(t *testing.T) {
	bands := config.DefaultRiverConfig().Spawn.Bands
	rng := rand.New(rand.NewSource(42))

	const samples = 100_000
	counts := map[CollectibleChoice]int{}
	for i := 0; i < samples; i++ {
		counts[ChooseCollectible(rng.Float64(), bands)]++
	}

	assert.Equal(t, samples, counts[ChoiceCoin]+counts[ChoiceGem]+counts[ChoicePowerUp])
	assert.InDelta(t, 0.05, float64(counts[ChoicePowerUp])/samples, 0.005)
	assert.InDelta(t, 0.25, float64(counts[ChoiceGem])/samples, 0.01)
	assert.InDelta(t, 0.70, float64(counts[ChoiceCoin])/samples, 0.01)
}

func TestChooseCollectibleBoundaries(t *testing.T) {
	bands := config.SpawnBands{PowerUp: 0.05, Gem: 0.25}
	tests := []struct {
		roll     float64
		expected CollectibleChoice
	}{
		{0, ChoicePowerUp},
		{0.0499, ChoicePowerUp},
		{0.05, ChoiceGem},
		{0.29, ChoiceGem},
		{0.31, ChoiceCoin},
		{0.999999, ChoiceCoin},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, ChooseCollectible(tc.roll, bands), "roll %v", tc.roll)
	}
}

func TestSpawnerOnePerInterval(t *testing.T) {
	s, w, _ := newSpawner(t, 7)

	out := s.Update(w, 1999, true, ModeClassic, 0)
	assert.Equal(t, ecs.NoEntity, out.Obstacle)

	out = s.Update(w, 2000, true, ModeClassic, 0)
	require.NotEqual(t, ecs.NoEntity, out.Obstacle)
	assert.True(t, w.HasTag(out.Obstacle, TagObstacle))

	out = s.Update(w, 2001, true, ModeClassic, 0)
	assert.Equal(t, ecs.NoEntity, out.Obstacle)

	// A long hitch yields a single spawn, not a burst of catch-ups.
	before := w.CountTagged(TagObstacle)
	s.Update(w, 60000, true, ModeClassic, 0)
	assert.Equal(t, before+1, w.CountTagged(TagObstacle))

	last, _, _ := s.Last()
	assert.Equal(t, int64(60000), last)
}

func TestSpawnerIntervalShrinksWithDistance(t *testing.T) {
	s, w, _ := newSpawner(t, 7)

	// At max distance the obstacle interval is the 1s floor.
	out := s.Update(w, 1000, true, ModeClassic, 3000)
	assert.NotEqual(t, ecs.NoEntity, out.Obstacle)
	out = s.Update(w, 1999, true, ModeClassic, 3000)
	assert.Equal(t, ecs.NoEntity, out.Obstacle)
	out = s.Update(w, 2000, true, ModeClassic, 3000)
	assert.NotEqual(t, ecs.NoEntity, out.Obstacle)
}

func TestSpawnerZenSkipsObstacles(t *testing.T) {
	s, w, _ := newSpawner(t, 3)

	for now := int64(0); now <= 60000; now += 16 {
		s.Update(w, now, true, ModeZen, float64(now)/10)
	}

	assert.Zero(t, w.CountTagged(TagObstacle))
	assert.NotZero(t, w.CountTagged(TagCollectible))
	assert.NotZero(t, w.CountTagged(TagDecoration))
}

func TestSpawnerIdleWhenNotPlaying(t *testing.T) {
	s, w, _ := newSpawner(t, 3)
	out := s.Update(w, 100000, false, ModeClassic, 0)
	assert.Equal(t, Spawned{}, out)
	assert.Zero(t, w.Len())
}

func TestSpawnedEntitiesUseLanesAndScroll(t *testing.T) {
	s, w, cfg := newSpawner(t, 11)

	for now := int64(0); now <= 30000; now += 100 {
		s.Update(w, now, true, ModeClassic, 0)
	}

	w.Obstacles().Each(func(e Entity) bool {
		lane, ok := w.Lanes.Get(e)
		require.True(t, ok)
		assert.Contains(t, []int{-1, 0, 1}, lane.Index)

		p, _ := w.Positions.Get(e)
		assert.Equal(t, cfg.World.LaneX(lane.Index), p.X)
		assert.Equal(t, cfg.World.SpawnY, p.Y)

		v, _ := w.Velocities.Get(e)
		assert.Equal(t, -cfg.World.ScrollSpeed, v.Y)

		variant, _ := w.Variants.Get(e)
		assert.Contains(t, cfg.Biomes[0].Obstacles, variant.Name)
		return true
	})

	w.Decorations().Each(func(e Entity) bool {
		p, _ := w.Positions.Get(e)
		assert.GreaterOrEqual(t, p.X, -cfg.World.DecorationSpread)
		assert.Less(t, p.X, cfg.World.DecorationSpread)
		return true
	})
}

func TestSpawnerBiomeVariants(t *testing.T) {
	s, w, cfg := newSpawner(t, 5)
	out := s.Update(w, 5000, true, ModeClassic, 2500)
	require.NotEqual(t, ecs.NoEntity, out.Obstacle)

	variant, _ := w.Variants.Get(out.Obstacle)
	assert.Contains(t, cfg.BiomeAt(2500).Obstacles, variant.Name)
}

func TestSpawnerDeterministic(t *testing.T) {
	run := func() uint64 {
		s, w, _ := newSpawner(t, 99)
		for now := int64(0); now <= 20000; now += 16 {
			s.Update(w, now, true, ModeClassic, float64(now)/20)
			IntegrateScaled(w, 0.016, 1)
		}
		return Digest(w)
	}
	assert.Equal(t, run(), run())
}
