// Package builder defines shared constants used by topology builders,
// ensuring consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRandom is the canonical name for the Random constructor.
	MethodRandom = "Random"
	// MethodSmallWorld is the canonical name for the SmallWorld constructor.
	MethodSmallWorld = "SmallWorld"
	// MethodScaleFree is the canonical name for the ScaleFree constructor.
	MethodScaleFree = "ScaleFree"
	// MethodCommunity is the canonical name for the Community constructor.
	MethodCommunity = "Community"
	// MethodSpatial is the canonical name for the Spatial constructors.
	MethodSpatial = "Spatial"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRandomRegular is the canonical name for the RandomRegular constructor.
	MethodRandomRegular = "RandomRegular"
	// MethodFromEdges is the canonical name for the FromEdges constructor.
	MethodFromEdges = "FromEdges"
	// MethodEdgeDensity is the canonical name for the EdgeDensity helper.
	MethodEdgeDensity = "EdgeDensity"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinVertices is the smallest vertex count any generator accepts.
const MinVertices = 1

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star topology.
const MinStarNodes = 2

// MinWheelNodes is the smallest wheel: a 3-cycle rim plus the hub.
const MinWheelNodes = 4

// MinCommunityVertices is the smallest vertex count for Community.
const MinCommunityVertices = 2

// MinBranching is the smallest ScaleFree branching factor k.
const MinBranching = 2

//-----------------------------------------------------------------------------
// Probability Bounds and Tunables
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound for probabilities/densities.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for probabilities/densities.
const MaxProbability = 1.0

// communityJitterOctaves is the log2 half-width of the community size
// jitter: sizes are base * 2^u with u ~ U[-1,1).
const communityJitterOctaves = 1.0
