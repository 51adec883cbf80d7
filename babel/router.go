package babel

import "github.com/encodeous/babelgo/warn"

// Router owns all per-node routing state: the link table, the selected
// route table, the seqno-request dedup table, the pending broadcast set,
// and the outbound/warning queues the host drains between entry points.
//
// A Router is not safe for concurrent use. Per spec §5 the three entry
// points (HandleMessage, the tick primitives, and link mutation) are
// mutually exclusive; the host is responsible for serializing them.
type Router[A Address, L LinkID] struct {
	Address A
	Seqno   Seqno

	Links  map[L]*Neighbour[A, L]
	Routes map[A]*Route[A, L]

	seqnoRequests     map[A]Seqno
	broadcastRouteFor map[A]struct{}

	Outbound []OutboundMessage[A, L]
	Warnings *warn.Ring[Warning]

	// TrustResync allows a remote SeqnoRequest to fast-forward this
	// node's own seqno past a single increment when the requester claims
	// to know a newer one (spec §4.4). Off by default: a misbehaving or
	// compromised neighbour could otherwise burn through the seqno space.
	TrustResync bool

	signer Signer[A]
}

// New creates a Router for address, using signer to stamp and validate
// signed values. Pass NullSigner[A]{} for unauthenticated deployments.
func New[A Address, L LinkID](address A, signer Signer[A]) *Router[A, L] {
	return &Router[A, L]{
		Address:           address,
		Seqno:             0,
		Links:             make(map[L]*Neighbour[A, L]),
		Routes:            make(map[A]*Route[A, L]),
		seqnoRequests:     make(map[A]Seqno),
		broadcastRouteFor: make(map[A]struct{}),
		Warnings:          warn.New[Warning](warn.DefaultCapacity),
		signer:            signer,
	}
}

// AddLink registers a new directly connected neighbour on link, with the
// conventional INF starting metric until the host reports real link
// health (spec §6).
func (r *Router[A, L]) AddLink(link L, neighbour A) {
	r.Links[link] = newNeighbour[A, L](neighbour, InfMetric)
}

// SetLinkMetric updates the cost of an existing link as the host's link
// health monitor reports changes. A zero metric is clamped to 1 with a
// warning the next time update_routes normalizes it.
func (r *Router[A, L]) SetLinkMetric(link L, metric Metric) {
	if n, ok := r.Links[link]; ok {
		n.Metric = metric
	}
}

// RemoveLink signals permanent loss of a link. Any selected route that
// depended on it is retracted on the next UpdateRoutes pass.
func (r *Router[A, L]) RemoveLink(link L) {
	delete(r.Links, link)
}

// DrainOutbound removes and returns every queued outbound message.
func (r *Router[A, L]) DrainOutbound() []OutboundMessage[A, L] {
	out := r.Outbound
	r.Outbound = nil
	return out
}

// DrainWarnings removes and returns every queued warning.
func (r *Router[A, L]) DrainWarnings() []Warning {
	return r.Warnings.Drain()
}

// seqnoFor resolves the current seqno known for addr: this node's own
// counter if addr is self, the seqno of its currently selected route if
// one exists, or false if nothing is known about addr yet.
func (r *Router[A, L]) seqnoFor(addr A) (Seqno, bool) {
	if addr == r.Address {
		return r.Seqno, true
	}
	if route, ok := r.Routes[addr]; ok {
		return route.Source.Value.Seqno, true
	}
	return 0, false
}

// writeBroadcastPacket enqueues one copy of a signed packet per neighbour.
func (r *Router[A, L]) writeBroadcastPacket(pkt Packet[A]) {
	signed := r.signer.SignPacket(pkt)
	for link, n := range r.Links {
		r.Outbound = append(r.Outbound, OutboundMessage[A, L]{
			Link:        link,
			Destination: n.Addr,
			Message:     signed,
		})
	}
}

// selfRouteEntry builds the (address, seqno) -> metric 0 entry this node
// advertises for itself, at the given seqno.
func (r *Router[A, L]) selfRouteEntry(at Seqno) RouteEntry[A] {
	return RouteEntry[A]{
		Source: r.signer.SignSource(SourceID[A]{Addr: r.Address, Seqno: at}),
		Metric: 0,
	}
}
