package babel

// UpdateRoutes recomputes the route table from current link and neighbour
// state (spec §4.3). It runs on every tick and after handling any inbound
// message that may have changed neighbour state.
func (r *Router[A, L]) UpdateRoutes() {
	var retractions []Signature[SourceID[A]]

	// 1. Link-loss retraction.
	for _, route := range r.Routes {
		n, linkOK := r.Links[route.Link]
		if !linkOK || n.Metric == InfMetric {
			if !route.Retracted {
				retractions = append(retractions, route.Source)
				route.Retracted = true
			}
			route.Metric = InfMetric
		}
	}

	// 2. Zero-metric normalization.
	for link, n := range r.Links {
		if n.Metric == 0 {
			n.Metric = 1
			r.Warnings.Push(MetricIsZeroWarning[L]{Link: link})
		}
	}

	// 3. Per-neighbour sweep.
	for link, n := range r.Links {
		for src, ext := range n.Routes {
			if src == r.Address {
				continue
			}
			metric := SumInf(n.Metric, ext.Metric)

			if tableRoute, ok := r.Routes[src]; ok {
				newFD, feasible := isFeasible(
					tableRoute.Source.Value.Seqno, tableRoute.FD, tableRoute.Metric,
					ext.Source.Value.Seqno, metric,
				)
				if feasible {
					tableRoute.Source = ext.Source
					tableRoute.Metric = metric
					tableRoute.FD = newFD
					tableRoute.Link = link
					tableRoute.NextHop = n.Addr
					tableRoute.Retracted = metric == InfMetric
				} else if tableRoute.NextHop == n.Addr {
					// This neighbour is the currently selected next hop;
					// its advertisement still has to be tracked even when
					// infeasible as a replacement.
					if metric > tableRoute.FD {
						if !tableRoute.Retracted {
							retractions = append(retractions, tableRoute.Source)
						}
						tableRoute.Metric = InfMetric
						tableRoute.Retracted = true
					} else {
						tableRoute.Metric = metric
						tableRoute.FD = metric
						tableRoute.Retracted = false
					}
				}
			} else if metric != InfMetric {
				r.Routes[src] = &Route[A, L]{
					Source:  ext.Source,
					Metric:  metric,
					FD:      metric,
					Link:    link,
					NextHop: n.Addr,
				}
			}
		}
	}

	// 4. Flush retractions.
	for _, source := range retractions {
		r.writeRetractionFor(source)
	}
}
