package babel

// Packet is the tagged union of the three message variants the core
// exchanges with neighbours (spec §6). Matching on it is exhaustive via a
// type switch in handle.go; validate runs once on the outer envelope
// signature and, for updates, again on the inner source signature.
type Packet[A Address] interface {
	isPacket()
}

// UrgentRouteUpdate carries a single origin's current advertisement,
// broadcast immediately on seqno advance or retraction, as distinct from
// the periodic batch snapshot.
type UrgentRouteUpdate[A Address] struct {
	Source Signature[SourceID[A]]
	Metric Metric
}

func (UrgentRouteUpdate[A]) isPacket() {}

// RouteEntry is one (source, metric) pair as carried inside a batch update.
type RouteEntry[A Address] struct {
	Source Signature[SourceID[A]]
	Metric Metric
}

// BatchRouteUpdate is a periodic steady-state snapshot of every route this
// node currently selects, plus its own self-entry (spec §4.7).
type BatchRouteUpdate[A Address] struct {
	Routes []RouteEntry[A]
}

func (BatchRouteUpdate[A]) isPacket() {}

// SeqnoRequest asks the network — and ultimately Origin itself — to
// publish a seqno no older than Seqno, so that a previously infeasible
// route can become feasible again.
type SeqnoRequest[A Address] struct {
	Origin A
	Seqno  Seqno
}

func (SeqnoRequest[A]) isPacket() {}

// Envelope is a signed Packet as it appears on the wire: the outer,
// neighbour-scope signature that authenticates the transport peer.
type Envelope[A Address] = Signature[Packet[A]]

// OutboundMessage is one element of the core's outbound queue: a signed
// packet ready to be handed to the transport for a specific link and
// destination address.
type OutboundMessage[A Address, L LinkID] struct {
	Link        L
	Destination A
	Message     Envelope[A]
}
