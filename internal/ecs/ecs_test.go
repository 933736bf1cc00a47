package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolGenerations(t *testing.T) {
	p := NewPool()

	a := p.Create()
	require.NotEqual(t, NoEntity, a)
	require.True(t, p.Alive(a))

	require.True(t, p.Destroy(a))
	assert.False(t, p.Alive(a))
	assert.False(t, p.Destroy(a), "double destroy must be ignored")

	b := p.Create()
	assert.Equal(t, a.Index(), b.Index(), "slot should be reused")
	assert.NotEqual(t, a, b, "reused slot must carry a new generation")
	assert.True(t, p.Alive(b))
	assert.False(t, p.Alive(a))
	assert.Equal(t, 1, p.Len())
}

func TestPoolReset(t *testing.T) {
	p := NewPool()
	a := p.Create()
	b := p.Create()

	p.Reset()

	assert.False(t, p.Alive(a))
	assert.False(t, p.Alive(b))
	assert.Equal(t, 0, p.Len())

	c := p.Create()
	assert.True(t, p.Alive(c))
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, b, c)
}

func TestStoreInsertionOrder(t *testing.T) {
	s := NewStore[int]()
	p := NewPool()
	e1, e2, e3 := p.Create(), p.Create(), p.Create()

	s.Set(e1, 1)
	s.Set(e2, 2)
	s.Set(e3, 3)
	s.Set(e2, 20)

	require.Equal(t, []Entity{e1, e2, e3}, s.Entities())

	v, ok := s.Get(e2)
	require.True(t, ok)
	assert.Equal(t, 20, v)

	s.Remove(e1)
	assert.Equal(t, []Entity{e2, e3}, s.Entities())
	assert.False(t, s.Has(e1))

	// Index map must follow the shift.
	v, ok = s.Get(e3)
	require.True(t, ok)
	assert.Equal(t, 3, v)

	*s.Ptr(e3) = 30
	v, _ = s.Get(e3)
	assert.Equal(t, 30, v)

	_, ok = s.Get(e1)
	assert.False(t, ok)
	assert.Nil(t, s.Ptr(e1))
}

func TestStoreClear(t *testing.T) {
	s := NewStore[string]()
	p := NewPool()
	e := p.Create()
	s.Set(e, "x")
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(e))
}

func TestQueryLiveMembership(t *testing.T) {
	p := NewPool()
	pos := NewStore[float64]()
	tag := NewStore[string]()

	a, b, c := p.Create(), p.Create(), p.Create()
	pos.Set(a, 1)
	pos.Set(b, 2)
	pos.Set(c, 3)
	tag.Set(a, "rock")
	tag.Set(b, "coin")
	tag.Set(c, "rock")

	q := NewQuery(p.Alive, pos, tag).Where(func(e Entity) bool {
		v, _ := tag.Get(e)
		return v == "rock"
	})
	assert.Equal(t, 2, q.Count())

	// Removing an entity mid-iteration must not revisit it.
	var seen []Entity
	q.Each(func(e Entity) bool {
		seen = append(seen, e)
		if e == a {
			p.Destroy(c)
		}
		return true
	})
	assert.Equal(t, []Entity{a}, seen)

	// An entity added later is visible to later evaluations.
	d := p.Create()
	pos.Set(d, 4)
	tag.Set(d, "rock")
	assert.ElementsMatch(t, []Entity{a, d}, q.Entities())

	first, ok := q.First()
	require.True(t, ok)
	assert.Equal(t, a, first)
}

func TestQueryNoStores(t *testing.T) {
	q := NewQuery(nil)
	_, ok := q.First()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Count())
}
