package arena

// Handle references an entity in a Registry. It encodes a 32-bit slot
// index in the lower bits and a 32-bit generation in the upper bits.
// The generation increments when a slot is reaped, so a handle held
// across a reap resolves to nothing instead of to a recycled slot.
type Handle uint64

func newHandle(index, generation uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index))
}

func (h Handle) index() uint32      { return uint32(h) }
func (h Handle) generation() uint32 { return uint32(h >> 32) }

type slot struct {
	entity Entity
	gen    uint32
}

// Registry owns every live entity. Entities are stored in generational
// slots; ordered views (one for storage, one per kind) hold handles, so
// slot reuse never aliases an old reference. Removal is two-phase: an
// entity marked destroyed stays visible to iteration until
// RemoveDestroyed reaps it, which lets a full resolution pass observe a
// consistent entity set.
//
// A Registry is not safe for concurrent use; a tick must own it for
// the tick's full duration.
type Registry struct {
	slots  []slot
	free   []uint32
	order  []Handle // creation order, survives reaps
	byKind [kindCount][]Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		slots: make([]slot, 0, 64),
		order: make([]Handle, 0, 64),
	}
}

// Create registers a constructed entity and returns its handle. The
// entity is appended to the storage view and to its kind's view, so
// iteration order is creation order.
func (r *Registry) Create(e Entity) Handle {
	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
		r.slots[idx].entity = e
	} else {
		idx = uint32(len(r.slots))
		r.slots = append(r.slots, slot{entity: e})
	}
	h := newHandle(idx, r.slots[idx].gen)
	r.order = append(r.order, h)
	r.byKind[e.Kind()] = append(r.byKind[e.Kind()], h)
	return h
}

// Get resolves a handle to its entity. It returns nil for a stale
// handle (the entity was reaped, even if the slot has been reused).
func (r *Registry) Get(h Handle) Entity {
	idx := h.index()
	if int(idx) >= len(r.slots) || r.slots[idx].gen != h.generation() {
		return nil
	}
	return r.slots[idx].entity
}

// Alive reports whether a handle still resolves to an entity. An
// entity marked destroyed but not yet reaped is still alive here.
func (r *Registry) Alive(h Handle) bool {
	return r.Get(h) != nil
}

// ForEach invokes fn once per entity of the given kind, in creation
// order. Entities marked destroyed earlier in the same tick are still
// visited; callers that must skip them check Destroyed themselves.
// fn may mark entities destroyed, but entities it creates of the same
// kind are not visited by this pass.
func (r *Registry) ForEach(kind Kind, fn func(Entity)) {
	handles := r.byKind[kind]
	for _, h := range handles {
		if e := r.Get(h); e != nil {
			fn(e)
		}
	}
}

// Each invokes fn once per entity in creation order across every kind.
// The renderer uses this after a reap, so it never observes a
// destroyed-but-unreaped entity.
func (r *Registry) Each(fn func(Entity)) {
	for _, h := range r.order {
		if e := r.Get(h); e != nil {
			fn(e)
		}
	}
}

// UpdateAll runs each entity's per-step update in creation order.
func (r *Registry) UpdateAll(t Tick) {
	for _, h := range r.order {
		if e := r.Get(h); e != nil {
			e.Update(t)
		}
	}
}

// RemoveDestroyed reaps every entity whose destroyed flag is set,
// removing it from storage and from its kind's view as one logical
// operation. Survivor order is preserved. The pass is linear in the
// number of live entities and calling it again with no new
// destructions is a no-op.
func (r *Registry) RemoveDestroyed() {
	reaped := false
	keep := r.order[:0]
	for _, h := range r.order {
		e := r.Get(h)
		if e != nil && e.Destroyed() {
			r.release(h.index())
			reaped = true
			continue
		}
		keep = append(keep, h)
	}
	r.order = keep
	if !reaped {
		return
	}
	for k := range r.byKind {
		live := r.byKind[k][:0]
		for _, h := range r.byKind[k] {
			if r.Alive(h) {
				live = append(live, h)
			}
		}
		r.byKind[k] = live
	}
}

// Clear reaps every entity unconditionally, regardless of its destroyed
// flag. Generations survive, so handles from before the clear stay
// invalid forever.
func (r *Registry) Clear() {
	for _, h := range r.order {
		if r.Alive(h) {
			r.release(h.index())
		}
	}
	r.order = r.order[:0]
	for k := range r.byKind {
		r.byKind[k] = r.byKind[k][:0]
	}
}

// release frees one slot and invalidates handles pointing at it.
func (r *Registry) release(idx uint32) {
	r.slots[idx].entity = nil
	r.slots[idx].gen++
	r.free = append(r.free, idx)
}

// Count returns the number of registered entities of one kind,
// including any marked destroyed but not yet reaped.
func (r *Registry) Count(kind Kind) int {
	return len(r.byKind[kind])
}

// Len returns the total number of registered entities.
func (r *Registry) Len() int {
	return len(r.order)
}

// ForKind iterates one kind's entities with their concrete type, in
// creation order. It panics if T does not match the kind's variant,
// which is a programming error.
func ForKind[T Entity](r *Registry, kind Kind, fn func(T)) {
	r.ForEach(kind, func(e Entity) {
		fn(e.(T))
	})
}
