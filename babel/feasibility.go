package babel

import "github.com/encodeous/babelgo/seqno"

// isFeasible implements spec §4.2. selectedSeqno, fd and selectedMetric
// describe the route currently stored for this origin; candidateSeqno/candidateMetric describe the
// replacement a neighbour is offering. It returns the new feasibility
// distance and true if the candidate should be adopted, or (0, false) if
// it must be rejected.
func isFeasible(selectedSeqno Seqno, fd Metric, selectedMetric Metric, candidateSeqno Seqno, candidateMetric Metric) (Metric, bool) {
	if seqno.LessThan(candidateSeqno, selectedSeqno) {
		return 0, false
	}
	switch {
	case candidateMetric < fd:
		return candidateMetric, true
	case seqno.LessThan(selectedSeqno, candidateSeqno):
		return candidateMetric, true
	case candidateMetric == fd && selectedMetric == InfMetric:
		// Re-admits a route at an unchanged metric once the network has
		// restored it, without requiring a further metric improvement or
		// seqno advance.
		return candidateMetric, true
	default:
		return 0, false
	}
}
