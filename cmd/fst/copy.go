// File: copy.go
// Role: "fst copy" — a queue-selectable straight copy, exercising every
//       Queue discipline visit offers from the command line.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wfst/core"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/katalvlaran/wfst/vector"
	"github.com/katalvlaran/wfst/visit"
)

var copyQueue string

var copyCmd = &cobra.Command{
	Use:   "copy in-path [out-path]",
	Short: "Copy a machine, visiting states in the chosen queue order",
	Args:  cobra.RangeArgs(1, 2),
	Run:   runCopy,
}

func init() {
	copyCmd.Flags().StringVar(&copyQueue, "queue", "fifo", "traversal order: fifo, lifo, shortest, or topo")
}

func runCopy(cmd *cobra.Command, args []string) {
	src, err := readMachine(args[0])
	if err != nil {
		fail("reading input", err)
	}

	queue, err := buildQueue(copyQueue, src)
	if err != nil {
		fail("unknown --queue value", err)
	}

	dst := vector.New(src.ArcType(), semiring.TropicalZero)
	visit.Visit(src, visit.NewCopyVisitor(dst), queue, visit.AnyArcFilter, false)

	outPath := ""
	if len(args) == 2 {
		outPath = args[1]
	}
	if err := writeMachine(outPath, dst); err != nil {
		fail("writing output", err)
	}
}

// buildQueue resolves --queue to a visit.Queue. "shortest" keys by a
// state's distance-from-start measured in hop count, since a vector.Fst
// read off disk carries no independently tracked shortest-distance
// vector; "topo" ranks states by their position in src's own state
// enumeration, which is a topological order only when every arc leads to
// a higher-numbered state and is merely a stable order otherwise.
func buildQueue(name string, src core.Fst) (visit.Queue, error) {
	switch name {
	case "fifo":
		return visit.NewFIFOQueue(), nil
	case "lifo":
		return visit.NewLIFOQueue(), nil
	case "shortest":
		depth := hopDistances(src)
		return visit.NewShortestQueue(func(s core.StateId) int64 { return depth[s] }), nil
	case "topo":
		rank := make(map[core.StateId]int)
		for it := src.States(); !it.Done(); it.Next() {
			rank[it.Value()] = len(rank)
		}
		return visit.NewTopoQueue(rank), nil
	default:
		return nil, fmt.Errorf("%q (want fifo, lifo, shortest, or topo)", name)
	}
}

// hopDistances returns each reachable state's breadth-first hop count
// from src's start state, used as ShortestQueue's priority key.
func hopDistances(src core.Fst) map[core.StateId]int64 {
	dist := map[core.StateId]int64{}
	start := src.Start()
	if start == core.NoStateId {
		return dist
	}

	dist[start] = 0
	queue := []core.StateId{start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for it := src.Arcs(s); !it.Done(); it.Next() {
			next := it.Value().NextState
			if _, seen := dist[next]; !seen {
				dist[next] = dist[s] + 1
				queue = append(queue, next)
			}
		}
	}

	return dist
}
