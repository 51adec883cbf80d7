package babel

// SolveStarvation implements spec §4.6: for every origin currently
// retracted, broadcast a signed SeqnoRequest asking for a seqno one past
// whatever we currently know, to pull a fresh (and therefore potentially
// feasible) advertisement out of the network.
func (r *Router[A, L]) SolveStarvation() {
	type pending struct {
		origin A
		seqno  Seqno
	}
	var requests []pending
	for origin, route := range r.Routes {
		if route.Metric != InfMetric {
			continue
		}
		cur, ok := r.seqnoFor(origin)
		if !ok {
			continue
		}
		requests = append(requests, pending{origin: origin, seqno: cur + 1})
	}
	for _, p := range requests {
		r.writeBroadcastPacket(SeqnoRequest[A]{Origin: p.origin, Seqno: p.seqno})
	}
}
