package babel

// writeRetractionFor enqueues an urgent update carrying source's current
// signed identity with metric InfMetric, to every neighbour.
func (r *Router[A, L]) writeRetractionFor(source Signature[SourceID[A]]) {
	r.writeBroadcastPacket(UrgentRouteUpdate[A]{
		Source: source,
		Metric: InfMetric,
	})
}

// BroadcastRoutes serializes every selected route plus this node's own
// self-entry into one batch message and enqueues one copy per neighbour
// (spec §4.7).
func (r *Router[A, L]) BroadcastRoutes() {
	entries := make([]RouteEntry[A], 0, len(r.Routes)+1)
	for _, route := range r.Routes {
		entries = append(entries, RouteEntry[A]{
			Source: route.Source,
			Metric: route.Metric,
		})
	}
	entries = append(entries, r.selfRouteEntry(r.Seqno))

	r.writeBroadcastPacket(BatchRouteUpdate[A]{Routes: entries})
}

// BroadcastSeqnoUpdates drains broadcastRouteFor and emits an urgent
// update for each pending origin (spec §4.7). Idempotent: an origin that
// is neither self nor currently in the route table is silently skipped.
func (r *Router[A, L]) BroadcastSeqnoUpdates() {
	for origin := range r.broadcastRouteFor {
		if pkt, ok := r.seqnoUpdatePacket(origin); ok {
			r.writeBroadcastPacket(pkt)
		}
	}
	r.broadcastRouteFor = make(map[A]struct{})
}

func (r *Router[A, L]) seqnoUpdatePacket(addr A) (Packet[A], bool) {
	if addr == r.Address {
		entry := r.selfRouteEntry(r.Seqno)
		return UrgentRouteUpdate[A]{Source: entry.Source, Metric: entry.Metric}, true
	}
	if route, ok := r.Routes[addr]; ok {
		return UrgentRouteUpdate[A]{Source: route.Source, Metric: route.Metric}, true
	}
	return nil, false
}
