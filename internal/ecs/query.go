package ecs

// Query selects the entities present in every one of its stores that
// also satisfy all of its predicates.
//
// Membership is evaluated lazily: Each snapshots the candidates of the
// smallest store when it starts, then re-checks every condition before
// visiting an entity. Entities added earlier in the tick are therefore
// visible, and entities removed during iteration are skipped.
type Query struct {
	alive  func(Entity) bool
	stores []Storage
	preds  []func(Entity) bool
}

// NewQuery builds a query over the given stores. alive may be nil.
func NewQuery(alive func(Entity) bool, stores ...Storage) *Query {
	return &Query{alive: alive, stores: stores}
}

// Where adds a predicate filter and returns the query for chaining.
func (q *Query) Where(pred func(Entity) bool) *Query {
	q.preds = append(q.preds, pred)
	return q
}

// Match reports whether e currently satisfies the query.
func (q *Query) Match(e Entity) bool {
	if q.alive != nil && !q.alive(e) {
		return false
	}
	for _, s := range q.stores {
		if !s.Has(e) {
			return false
		}
	}
	for _, p := range q.preds {
		if !p(e) {
			return false
		}
	}
	return true
}

func (q *Query) candidates() []Entity {
	if len(q.stores) == 0 {
		return nil
	}
	smallest := q.stores[0]
	for _, s := range q.stores[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	return smallest.Entities()
}

// Each visits every matching entity. Iteration stops early when fn
// returns false.
func (q *Query) Each(fn func(e Entity) bool) {
	for _, e := range q.candidates() {
		if !q.Match(e) {
			continue
		}
		if !fn(e) {
			return
		}
	}
}

// Entities returns the matching entities at the time of the call.
func (q *Query) Entities() []Entity {
	var out []Entity
	q.Each(func(e Entity) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Count returns the number of matching entities.
func (q *Query) Count() int {
	n := 0
	q.Each(func(Entity) bool {
		n++
		return true
	})
	return n
}

// First returns the first matching entity in store order.
func (q *Query) First() (Entity, bool) {
	found := NoEntity
	q.Each(func(e Entity) bool {
		found = e
		return false
	})
	return found, found != NoEntity
}
