package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/encodeous/babelgo/babel"
	"github.com/encodeous/babelgo/internal/config"
	"github.com/encodeous/babelgo/memtransport"
	"github.com/encodeous/babelgo/wire"
)

func newRunCmd() *cobra.Command {
	var configPath string
	var tickOverride int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a topology and report the converged route tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(logLevel)
			runID := uuid.New().String()
			log = log.WithField("run_id", runID)

			top, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if tickOverride > 0 {
				top.Ticks = tickOverride
			}

			log.WithFields(logrus.Fields{
				"nodes": len(top.Nodes),
				"edges": len(top.Edges),
				"ticks": top.Ticks,
			}).Info("starting simulation")

			sim := newSimulation(top)
			for i := 0; i < top.Ticks; i++ {
				sim.tick(log)
			}

			sim.report(cmd, log)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a topology YAML file")
	cmd.Flags().IntVar(&tickOverride, "ticks", 0, "override the topology's tick count")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func newLogger(level string) *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logrus.NewEntry(logger)
}

// simulation wires one babel.Router[string, int] per topology node to a
// shared memtransport.Network, exercising the wire codec on every hop the
// way a real deployment's transport loop would.
type simulation struct {
	routers map[string]*babel.Router[string, int]
	net     *memtransport.Network
	codec   stringCodec
}

func newSimulation(top *config.Topology) *simulation {
	sim := &simulation{
		routers: make(map[string]*babel.Router[string, int], len(top.Nodes)),
		net:     memtransport.NewNetwork(),
	}
	for _, name := range top.Nodes {
		sim.routers[name] = babel.New[string, int](name, babel.NullSigner[string]{})
		sim.net.AddNode(name)
	}
	for _, e := range top.Edges {
		a, aok := sim.routers[e.A]
		b, bok := sim.routers[e.B]
		if !aok || !bok {
			continue
		}
		a.AddLink(e.ID, e.B)
		a.SetLinkMetric(e.ID, babel.Metric(e.Metric))
		b.AddLink(e.ID, e.A)
		b.SetLinkMetric(e.ID, babel.Metric(e.Metric))
	}
	return sim
}

func (sim *simulation) tick(log *logrus.Entry) {
	for name, r := range sim.routers {
		for _, frame := range sim.net.Receive(name) {
			linkID, err := strconv.Atoi(frame.Link)
			if err != nil {
				continue
			}
			neigh, ok := r.Links[linkID]
			if !ok {
				continue
			}
			env, err := wire.DecodeEnvelope[string](frame.Data, sim.codec)
			if err != nil {
				log.WithError(err).Warn("dropping undecodable frame")
				continue
			}
			if err := r.HandleMessage(env, linkID, neigh.Addr); err != nil {
				log.WithError(err).WithField("node", name).Warn("HandleMessage failed")
			}
		}
	}

	for name, r := range sim.routers {
		r.FullUpdate()
		for _, w := range r.DrainWarnings() {
			log.WithField("node", name).Warn(w.String())
		}
	}

	for name, r := range sim.routers {
		for _, out := range r.DrainOutbound() {
			data, err := wire.EncodeEnvelope[string](out.Message, sim.codec)
			if err != nil {
				log.WithError(err).WithField("node", name).Warn("failed to encode outbound packet")
				continue
			}
			sim.net.Send(out.Destination, memtransport.Frame{
				Link:   strconv.Itoa(out.Link),
				Sender: []byte(name),
				Data:   data,
			})
		}
	}
}

func (sim *simulation) report(cmd *cobra.Command, log *logrus.Entry) {
	names := make([]string, 0, len(sim.routers))
	for name := range sim.routers {
		names = append(names, name)
	}
	sort.Strings(names)

	out := cmd.OutOrStdout()
	for _, name := range names {
		r := sim.routers[name]
		origins := make([]string, 0, len(r.Routes))
		for origin := range r.Routes {
			origins = append(origins, origin)
		}
		sort.Strings(origins)

		for _, origin := range origins {
			route := r.Routes[origin]
			fmt.Fprintf(out, "%s -> %s via %s metric %d\n", name, origin, route.NextHop, route.Metric)
		}
	}
	log.Info("simulation complete")
}
