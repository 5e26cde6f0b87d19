package builder

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/contagion/bfs"
	"github.com/katalvlaran/contagion/core"
)

// Kind names the generator that produced a Topology. It is part of the
// snapshot name token handed to collaborators.
type Kind string

// Generator kinds.
const (
	KindRandom     Kind = "random"
	KindSmallWorld Kind = "small-world"
	KindScaleFree  Kind = "scale-free"
	KindCommunity  Kind = "community"
	KindSpatial    Kind = "spatial"
	KindComplete   Kind = "complete"
	KindCycle      Kind = "cycle"
	KindPath       Kind = "path"
	KindStar       Kind = "star"
	KindWheel      Kind = "wheel"
	KindGrid       Kind = "grid"
	KindRegular    Kind = "regular"
	KindCustom     Kind = "custom"
)

// Topology is the output of Build: the contact graph, per-vertex base
// infection chances and whatever structure the generator exposes.
// After Build returns it is treated as immutable and may be shared by any
// number of engines.
type Topology struct {
	// Kind is the generator of the last applied constructor.
	Kind Kind

	// Graph holds vertices [0,n) and the directed edge set.
	Graph *core.Graph

	// BaseInfectChance[v] is the probability-like base chance of vertex v.
	BaseInfectChance []float64

	// Positions[v] is the 2-D location of v (SmallWorld ring, Spatial, Grid).
	Positions []r2.Vec

	// Children maps a ScaleFree pyramid parent to the k vertices it owns.
	Children map[int][]int

	// Communities lists the (possibly overlapping) members of each
	// Community group, ascending.
	Communities [][]int
}

// VertexCount returns n.
func (t *Topology) VertexCount() int { return t.Graph.VertexCount() }

// Components returns the weakly connected components of the contact
// graph, ordered by smallest member. An epidemic never leaves the
// components of its seeds.
func (t *Topology) Components() [][]int { return bfs.Components(t.Graph) }
