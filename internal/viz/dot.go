// Package viz renders a day's co-occupancy conflict graph as DOT text.
// Nodes are the day's slots, named ROOM_P<timeslot>; an edge links a filled
// slot to the same timeslot of every other classroom its faculty owes hours
// to, which are exactly the pairs the engine must keep apart.
package viz

import (
	"fmt"

	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/nivedh-m/FacultyScheduler/pkg/model"
)

type slotNode struct {
	id    int64
	dotID string
}

func (n slotNode) ID() int64     { return n.id }
func (n slotNode) DOTID() string { return n.dotID }

// DayGraphDOT builds the conflict graph for one day record and marshals it.
func DayGraphDOT(roster *model.Roster, rec model.DayRecord) (string, error) {
	g := simple.NewUndirectedGraph()

	nodes := make(map[string]slotNode)
	next := int64(0)
	for _, room := range rec.Rooms {
		for t := 1; t <= len(room.Slots); t++ {
			n := slotNode{id: next, dotID: fmt.Sprintf("%s_P%d", room.Classroom, t)}
			nodes[n.dotID] = n
			g.AddNode(n)
			next++
		}
	}

	for _, room := range rec.Rooms {
		for t, name := range room.Slots {
			if name == model.Free {
				continue
			}
			fac, ok := roster.Faculty(name)
			if !ok {
				continue
			}
			from := nodes[fmt.Sprintf("%s_P%d", room.Classroom, t+1)]
			for _, other := range fac.Rooms() {
				if other == room.Classroom {
					continue
				}
				to, ok := nodes[fmt.Sprintf("%s_P%d", other, t+1)]
				if !ok {
					continue
				}
				if !g.HasEdgeBetween(from.ID(), to.ID()) {
					// Orient edges by node id so the DOT output is stable.
					a, b := from, to
					if b.ID() < a.ID() {
						a, b = b, a
					}
					g.SetEdge(simple.Edge{F: a, T: b})
				}
			}
		}
	}

	out, err := dot.Marshal(g, fmt.Sprintf("day_%d", rec.Day), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal conflict graph: %w", err)
	}
	return string(out), nil
}
