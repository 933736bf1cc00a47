package sim

// Sprite is the renderer's view of one entity.
type Sprite struct {
	Entity   Entity
	Tags     Tag
	Position Position
	Collider Collider
	Anim     AnimState
	Variant  string
	Particle ParticleKind
}

// Sprites enumerates every visible entity in draw order: decorations,
// collectibles, obstacles, particles and the player last. Flagged
// entities are skipped.
func (w *World) Sprites() []Sprite {
	layers := []Tag{TagDecoration, TagCollectible, TagObstacle, TagParticle, TagPlayer}
	out := make([]Sprite, 0, w.Positions.Len())
	for _, layer := range layers {
		w.Query(w.Tags, w.Positions).Where(w.tagged(layer)).Where(w.Live).Each(func(e Entity) bool {
			s := Sprite{Entity: e}
			s.Tags, _ = w.Tags.Get(e)
			s.Position, _ = w.Positions.Get(e)
			s.Collider, _ = w.Colliders.Get(e)
			if a, ok := w.Animations.Get(e); ok {
				s.Anim = a.Current
			}
			if v, ok := w.Variants.Get(e); ok {
				s.Variant = v.Name
			}
			if p, ok := w.Particles.Get(e); ok {
				s.Particle = p.Kind
			}
			out = append(out, s)
			return true
		})
	}
	return out
}
