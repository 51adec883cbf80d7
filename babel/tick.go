package babel

// Update recomputes the route table and flushes any pending urgent
// re-broadcasts, without running starvation recovery or a full batch
// broadcast. It is the lighter primitive spec §4.7 allows implementers to
// expose between full ticks.
func (r *Router[A, L]) Update() {
	r.UpdateRoutes()
	r.BroadcastSeqnoUpdates()
}

// FullUpdate runs the complete tick composite described in spec §4.7:
// route recomputation, starvation recovery, a full batch broadcast, and
// finally any pending urgent re-broadcasts triggered along the way.
func (r *Router[A, L]) FullUpdate() {
	r.UpdateRoutes()
	r.SolveStarvation()
	r.BroadcastRoutes()
	r.BroadcastSeqnoUpdates()
}
