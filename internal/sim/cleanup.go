package sim

// Cleanup removes entities flagged destroyed or collected, entities
// that scrolled below despawnY and particles whose lifetime ended.
// The player is never removed by the boundary. It returns the number
// of removed entities.
func Cleanup(w *World, despawnY float64, now int64) int {
	var doomed []Entity

	w.Query(w.Positions).Each(func(e Entity) bool {
		if w.Destroyed(e) || w.Collected(e) {
			doomed = append(doomed, e)
			return true
		}
		if p, ok := w.Particles.Get(e); ok && now >= p.ExpiresAt {
			doomed = append(doomed, e)
			return true
		}
		pos, _ := w.Positions.Get(e)
		if pos.Y < despawnY && !w.HasTag(e, TagPlayer) {
			doomed = append(doomed, e)
		}
		return true
	})

	// Flagged entities without a position are still removed.
	w.Query(w.Flags).Each(func(e Entity) bool {
		if !w.Positions.Has(e) && (w.Destroyed(e) || w.Collected(e)) {
			doomed = append(doomed, e)
		}
		return true
	})

	n := 0
	for _, e := range doomed {
		if w.Remove(e) {
			n++
		}
	}
	return n
}
