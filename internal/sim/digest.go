package sim

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Digest fingerprints the simulation-relevant state of w. Two worlds
// that evolved from the same seed and inputs hash identically.
func Digest(w *World) uint64 {
	h := xxhash.New()
	var buf [8]byte

	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	putF := func(f float64) { putU(math.Float64bits(f)) }

	w.Positions.Each(func(e Entity, p *Position) {
		putU(uint64(e))
		putF(p.X)
		putF(p.Y)
		putF(p.Z)
		tags, _ := w.Tags.Get(e)
		putU(uint64(tags))
		f, _ := w.Flags.Get(e)
		var flags uint64
		if f.Collected {
			flags |= 1
		}
		if f.Destroyed {
			flags |= 2
		}
		if w.NearMisses.Has(e) {
			flags |= 4
		}
		putU(flags)
		if hp, ok := w.Healths.Get(e); ok {
			putU(uint64(int64(hp.Current)))
		}
		if v, ok := w.Variants.Get(e); ok {
			_, _ = h.WriteString(v.Name)
		}
	})
	return h.Sum64()
}
