package babel

// Route is the selected entry for one origin: the next hop we chose, the
// composed metric along that hop, and the feasibility distance (FD) that
// guards against adopting a regression later.
//
// State machine (spec §4.8): an origin with no Route entry is Absent; an
// entry with Metric < InfMetric is Live; Metric == InfMetric is Retracted.
// There is no transition back to Absent inside the core — a retracted
// route is never deleted, only ever re-adopted (Retracted -> Live).
type Route[A Address, L LinkID] struct {
	Source    Signature[SourceID[A]]
	Metric    Metric
	FD        Metric
	Link      L
	NextHop   A
	Retracted bool
}
