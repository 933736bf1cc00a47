package sim

// Integrate advances every entity with a velocity by velocity*dt.
func Integrate(w *World, dt float64) {
	IntegrateScaled(w, dt, 1)
}

// IntegrateScaled advances positions like Integrate but scales the
// velocity of every non-player entity by worldScale. The player keeps
// its own pace so that speed-ups and slow motion only affect the river.
func IntegrateScaled(w *World, dt, worldScale float64) {
	w.Velocities.Each(func(e Entity, v *Velocity) {
		p := w.Positions.Ptr(e)
		if p == nil || !w.Alive(e) {
			return
		}
		s := worldScale
		if w.HasTag(e, TagPlayer) {
			s = 1
		}
		p.X += v.X * dt * s
		p.Y += v.Y * dt * s
		p.Z += v.Z * dt * s
	})
}
