// Package babel implements the loop-free distance-vector routing core: the
// per-node link table, route table, route selector, message handler and
// seqno logic described for a Babel-family protocol. The package is the
// single logical "Router" component; it is parameterized over the host's
// node-address and link-id types so that it never has to know how those
// are represented on the wire or on disk.
package babel

import "github.com/encodeous/babelgo/seqno"

// Address is the capability a host's node-identity type must provide:
// equality and hashability, so it can key the route and link tables.
// Ordering and serialization, mentioned in spec §6 as host concerns, are
// left to the host entirely — the core never needs to sort or encode one.
type Address interface {
	comparable
}

// LinkID is the capability a host's link-handle type must provide.
type LinkID interface {
	comparable
}

// Seqno re-exports the cyclic sequence number type so callers that only
// import babel don't also need to import seqno directly.
type Seqno = seqno.Seqno

// Metric is a link/path cost. INF denotes unreachability and is reserved;
// it must never be produced by addition except via SumInf's saturation.
type Metric uint16

// InfMetric is the reserved "unreachable" metric value.
const InfMetric Metric = 0xFFFF

// SumInf adds two metrics, saturating at InfMetric-1 and propagating
// InfMetric if either operand is already infinite. This keeps a chain of
// finite-but-large metrics from accidentally wrapping into the reserved
// INF value.
func SumInf(a, b Metric) Metric {
	if a == InfMetric || b == InfMetric {
		return InfMetric
	}
	sum := uint32(a) + uint32(b)
	if sum >= uint32(InfMetric) {
		return InfMetric - 1
	}
	return Metric(sum)
}
