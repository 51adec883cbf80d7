package babel

// virtualNetwork is a small in-memory multi-node test harness: it wires a
// set of Router[string, int] instances together over shared edge ids and
// drives them through repeated ticks. The shape (per-edge link id shared by
// both endpoints, deliver-then-full_update-then-flush tick ordering) mirrors
// the reference implementation's own VirtualSystem test harness.
type virtualNetwork struct {
	routers map[string]*Router[string, int]
	pending map[string][]pendingFrame
}

type pendingFrame struct {
	link int
	msg  Envelope[string]
}

type edgeSpec struct {
	id     int
	a, b   string
	metric Metric
}

func newVirtualNetwork(nodes []string, edges []edgeSpec) *virtualNetwork {
	vn := &virtualNetwork{
		routers: make(map[string]*Router[string, int], len(nodes)),
		pending: make(map[string][]pendingFrame),
	}
	for _, n := range nodes {
		vn.routers[n] = New[string, int](n, NullSigner[string]{})
	}
	for _, e := range edges {
		vn.routers[e.a].AddLink(e.id, e.b)
		vn.routers[e.a].SetLinkMetric(e.id, e.metric)
		vn.routers[e.b].AddLink(e.id, e.a)
		vn.routers[e.b].SetLinkMetric(e.id, e.metric)
	}
	return vn
}

// updateEdge changes the cost of edge id on both endpoints that carry it.
func (vn *virtualNetwork) updateEdge(id int, metric Metric) {
	for _, r := range vn.routers {
		if _, ok := r.Links[id]; ok {
			r.SetLinkMetric(id, metric)
		}
	}
}

// tick delivers whatever was flushed on the previous tick, runs a full
// update on every router, and flushes the resulting outbound queues for
// delivery on the next tick.
func (vn *virtualNetwork) tick() {
	for dest, frames := range vn.pending {
		r, ok := vn.routers[dest]
		if !ok {
			continue
		}
		for _, f := range frames {
			n, ok := r.Links[f.link]
			if !ok {
				continue
			}
			_ = r.HandleMessage(f.msg, f.link, n.Addr)
		}
	}
	vn.pending = make(map[string][]pendingFrame)

	for _, r := range vn.routers {
		r.FullUpdate()
	}

	for _, r := range vn.routers {
		for _, out := range r.DrainOutbound() {
			vn.pending[out.Destination] = append(vn.pending[out.Destination], pendingFrame{link: out.Link, msg: out.Message})
		}
	}
}

func (vn *virtualNetwork) tickN(times int) {
	for i := 0; i < times; i++ {
		vn.tick()
	}
}

func (vn *virtualNetwork) nextHop(cur, dst string) (string, bool) {
	route, ok := vn.routers[cur].Routes[dst]
	if !ok {
		return "", false
	}
	return route.NextHop, true
}

func (vn *virtualNetwork) metricTo(cur, dst string) (Metric, bool) {
	route, ok := vn.routers[cur].Routes[dst]
	if !ok {
		return 0, false
	}
	return route.Metric, true
}

func vnetSimpleWeighted() *virtualNetwork {
	return newVirtualNetwork(
		[]string{"1", "2", "3", "4", "5"},
		[]edgeSpec{
			{0, "1", "2", 2},
			{1, "1", "3", 1},
			{2, "2", "3", 4},
			{3, "2", "4", 5},
			{4, "3", "4", 100},
			{5, "3", "5", 8},
			{6, "4", "5", 1},
		},
	)
}

func vnetFragileNetwork() *virtualNetwork {
	return newVirtualNetwork(
		[]string{"1", "2", "3", "4", "5", "6"},
		[]edgeSpec{
			{0, "1", "2", 1},
			{1, "1", "3", 1},
			{2, "2", "3", 1},
			{3, "1", "4", 10},
			{4, "5", "4", 1},
			{5, "6", "4", 1},
			{6, "6", "5", 1},
		},
	)
}
