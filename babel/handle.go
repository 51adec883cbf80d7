package babel

import "github.com/encodeous/babelgo/seqno"

// updateAction classifies the effect applyUpdate had on
// neighbour-scope state, so the caller knows whether to schedule a
// re-broadcast or an onward retraction (spec §4.5).
type updateAction int

const (
	actionNone updateAction = iota
	actionSeqnoAdvance
	actionRetraction
)

// HandleMessage validates and dispatches one inbound signed packet from a
// neighbour (spec §4.4). Validation failure on the outer envelope returns
// a MACValidationFailError and makes no state changes.
func (r *Router[A, L]) HandleMessage(msg Envelope[A], link L, sender A) error {
	if !r.signer.ValidatePacket(msg, sender) {
		return MACValidationFailError[L]{Link: link}
	}

	switch p := msg.Value.(type) {
	case UrgentRouteUpdate[A]:
		action, err := r.applyUpdate(RouteEntry[A]{Source: p.Source, Metric: p.Metric}, link, sender)
		if err != nil {
			return err
		}
		switch action {
		case actionSeqnoAdvance:
			r.broadcastRouteFor[p.Source.Value.Addr] = struct{}{}
		case actionRetraction:
			r.writeRetractionFor(p.Source)
		}
		return nil

	case BatchRouteUpdate[A]:
		for _, entry := range p.Routes {
			// Batch updates are periodic steady-state snapshots: no
			// onward re-broadcast, no retraction enqueue (spec §4.4,
			// §9 open question on batch-update retraction asymmetry).
			if _, err := r.applyUpdate(entry, link, sender); err != nil {
				return err
			}
		}
		return nil

	case SeqnoRequest[A]:
		r.handleSeqnoRequest(p)
		return nil
	}
	return nil
}

// applyUpdate applies a single (source, metric) update to neighbour-scope
// state (spec §4.5) and returns the classification the caller should act
// on.
func (r *Router[A, L]) applyUpdate(update RouteEntry[A], link L, neigh A) (updateAction, error) {
	source := update.Source.Value

	if source.Addr == r.Address {
		return actionNone, nil
	}

	if !r.signer.ValidateSource(update.Source, source.Addr) {
		return actionNone, MACValidationFailError[L]{Link: link}
	}

	action := actionNone
	if curSeqno, ok := r.seqnoFor(source.Addr); ok {
		if seqno.LessThan(source.Seqno, curSeqno) {
			return actionNone, nil // stale advertisement, drop silently
		}
		if seqno.LessThan(curSeqno, source.Seqno) {
			action = actionSeqnoAdvance
		}
	}

	selected := false
	if route, ok := r.Routes[source.Addr]; ok {
		selected = route.NextHop == neigh
	}

	n, ok := r.Links[link]
	if !ok {
		return action, nil
	}

	if entry, ok := n.Routes[source.Addr]; ok {
		entry.Source = update.Source
		if update.Metric == InfMetric {
			if !entry.Retracted {
				if action != actionSeqnoAdvance && selected {
					action = actionRetraction
				}
				entry.Retracted = true
			}
		} else {
			entry.Retracted = false
		}
		entry.Metric = update.Metric
		n.Routes[source.Addr] = entry
	} else if update.Metric != InfMetric || selected {
		n.Routes[source.Addr] = ExternalRoute[A]{
			Source:    update.Source,
			Metric:    update.Metric,
			Retracted: update.Metric == InfMetric,
		}
	}

	return action, nil
}

// handleSeqnoRequest implements spec §4.4's SeqnoRequest handling.
func (r *Router[A, L]) handleSeqnoRequest(req SeqnoRequest[A]) {
	cur, ok := r.seqnoFor(req.Origin)
	if !ok {
		return // unknown origin, drop silently
	}

	if seqno.LessOrEqual(req.Seqno, cur) {
		r.broadcastRouteFor[req.Origin] = struct{}{}
		return
	}

	if req.Origin == r.Address {
		old := r.Seqno
		r.Seqno = seqno.Next(r.Seqno)
		if r.TrustResync && seqno.LessThan(r.Seqno, req.Seqno) {
			r.Seqno = req.Seqno
			r.Warnings.Push(DesynchronizedSeqnoWarning{Old: old, New: r.Seqno})
		}
		r.broadcastRouteFor[r.Address] = struct{}{}
		return
	}

	if existing, ok := r.seqnoRequests[req.Origin]; !ok || seqno.LessThan(existing, req.Seqno) {
		r.seqnoRequests[req.Origin] = req.Seqno
		r.writeBroadcastPacket(SeqnoRequest[A]{Origin: req.Origin, Seqno: req.Seqno})
	}
}
