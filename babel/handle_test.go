package babel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// failOuterSigner rejects every outer (neighbour-scope) envelope signature
// while still signing and validating source pairs normally, so it only
// exercises the MACValidationFailError path in HandleMessage itself (spec
// §4.4, §7).
type failOuterSigner struct{ NullSigner[string] }

func (failOuterSigner) ValidatePacket(Signature[Packet[string]], string) bool {
	return false
}

// failSourceSigner accepts every outer envelope but rejects every inner
// source-scope signature, exercising applyUpdate's MAC-validation branch
// (spec §4.5 step 2).
type failSourceSigner struct{ NullSigner[string] }

func (failSourceSigner) ValidateSource(Signature[SourceID[string]], string) bool {
	return false
}

func TestHandleMessageRejectsBadOuterSignatureWithoutStateChange(t *testing.T) {
	r := New[string, int]("1", failOuterSigner{})
	r.AddLink(0, "2")
	r.SetLinkMetric(0, 5)
	r.UpdateRoutes()
	r.DrainOutbound()
	r.DrainWarnings()

	before := snapshotRoutes(r)
	beforeLinks := len(r.Links)
	beforeNeighbourRoutes := len(r.Links[0].Routes)

	env := NullSigner[string]{}.SignPacket(UrgentRouteUpdate[string]{
		Source: NullSigner[string]{}.SignSource(SourceID[string]{Addr: "3", Seqno: 1}),
		Metric: 4,
	})

	err := r.HandleMessage(env, 0, "2")
	require.Error(t, err)
	require.IsType(t, MACValidationFailError[int]{}, err)

	require.Equal(t, before, snapshotRoutes(r))
	require.Equal(t, beforeLinks, len(r.Links))
	require.Equal(t, beforeNeighbourRoutes, len(r.Links[0].Routes))
	require.Empty(t, r.DrainOutbound())
	require.Empty(t, r.DrainWarnings())
}

func TestHandleMessageRejectsBadSourceSignatureWithoutStateChange(t *testing.T) {
	r := New[string, int]("1", failSourceSigner{})
	r.AddLink(0, "2")
	r.SetLinkMetric(0, 5)
	r.UpdateRoutes()
	r.DrainOutbound()
	r.DrainWarnings()

	before := snapshotRoutes(r)
	beforeNeighbourRoutes := len(r.Links[0].Routes)

	env := NullSigner[string]{}.SignPacket(UrgentRouteUpdate[string]{
		Source: NullSigner[string]{}.SignSource(SourceID[string]{Addr: "3", Seqno: 1}),
		Metric: 4,
	})

	err := r.HandleMessage(env, 0, "2")
	require.Error(t, err)
	require.IsType(t, MACValidationFailError[int]{}, err)

	require.Equal(t, before, snapshotRoutes(r))
	require.Equal(t, beforeNeighbourRoutes, len(r.Links[0].Routes))
	require.Empty(t, r.DrainOutbound())
	require.Empty(t, r.DrainWarnings())
}

// TestBatchBroadcastAgainstIdenticalStateProducesNoOutbound covers spec §8's
// first round-trip property: delivering node 1's converged batch snapshot
// to its neighbour node 2, which already holds the same converged state,
// enqueues nothing.
func TestBatchBroadcastAgainstIdenticalStateProducesNoOutbound(t *testing.T) {
	net := vnetSimpleWeighted()
	net.tickN(10)

	r1 := net.routers["1"]
	r2 := net.routers["2"]
	r1.DrainOutbound()
	r2.DrainOutbound()
	r2.DrainWarnings()

	entries := make([]RouteEntry[string], 0, len(r1.Routes)+1)
	for _, route := range r1.Routes {
		entries = append(entries, RouteEntry[string]{Source: route.Source, Metric: route.Metric})
	}
	entries = append(entries, r1.selfRouteEntry(r1.Seqno))
	batch := NullSigner[string]{}.SignPacket(BatchRouteUpdate[string]{Routes: entries})

	err := r2.HandleMessage(batch, 0, "1")
	require.NoError(t, err)
	require.Empty(t, r2.DrainOutbound())
}

// TestSeqnoRequestAtCurrentSeqnoCausesExactlyOneUrgentUpdate covers spec
// §8's second round-trip property.
func TestSeqnoRequestAtCurrentSeqnoCausesExactlyOneUrgentUpdate(t *testing.T) {
	r := New[string, int]("1", NullSigner[string]{})
	r.AddLink(0, "2")
	r.SetLinkMetric(0, 5)
	r.Seqno = 7
	r.DrainOutbound()

	req := NullSigner[string]{}.SignPacket(SeqnoRequest[string]{Origin: "1", Seqno: 7})
	err := r.HandleMessage(req, 0, "2")
	require.NoError(t, err)

	r.BroadcastSeqnoUpdates()
	out := r.DrainOutbound()
	require.Len(t, out, 1)

	update, ok := out[0].Message.Value.(UrgentRouteUpdate[string])
	require.True(t, ok)
	require.Equal(t, "1", update.Source.Value.Addr)
	require.Equal(t, Seqno(7), update.Source.Value.Seqno)
	require.Equal(t, Metric(0), update.Metric)
}

// TestZeroLinkMetricIsClampedWithOneWarning covers spec §8's zero-metric
// boundary behaviour: the clamp fires once, on the tick where the zero
// metric is actually observed, not again on every subsequent tick.
func TestZeroLinkMetricIsClampedWithOneWarning(t *testing.T) {
	r := New[string, int]("1", NullSigner[string]{})
	r.AddLink(0, "2")
	r.SetLinkMetric(0, 0)

	r.UpdateRoutes()
	require.Equal(t, Metric(1), r.Links[0].Metric)

	warnings := r.DrainWarnings()
	require.Len(t, warnings, 1)
	require.IsType(t, MetricIsZeroWarning[int]{}, warnings[0])

	r.UpdateRoutes()
	require.Empty(t, r.DrainWarnings())
}
