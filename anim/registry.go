package anim

// registry holds active animations in start order. It is only touched by
// the loop goroutine.
type registry struct {
	byID  map[Handle]*animation
	order []*animation
}

func newRegistry() *registry {
	return &registry{byID: make(map[Handle]*animation)}
}

func (r *registry) add(a *animation) {
	r.byID[a.id] = a
	r.order = append(r.order, a)
}

func (r *registry) get(id Handle) (*animation, bool) {
	a, ok := r.byID[id]
	return a, ok
}

// remove drops id from the lookup map; compact later drops it from order.
func (r *registry) remove(id Handle) {
	delete(r.byID, id)
}

func (r *registry) len() int {
	return len(r.byID)
}

// compact drops entries that are no longer active, keeping start order.
func (r *registry) compact() {
	kept := r.order[:0]
	for _, a := range r.order {
		if a.state == Active {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(r.order); i++ {
		r.order[i] = nil
	}
	r.order = kept
}
