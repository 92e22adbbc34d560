// Package limit validates Bellande Limit requests and submits them to a
// computation provider.
//
// A request describes two nodes, a goal, per-dimension step sizes and a list
// of axis-aligned obstacles inside a D-dimensional environment, where D is
// the length of the environment vector. The computation itself happens
// elsewhere: either a remote HTTP service (package http) or a companion
// executable next to the binary (package exec). Both implement [Provider].
package limit

// Vector is an ordered sequence of D numeric values.
type Vector []float64

// Obstacle is an axis-aligned region.
type Obstacle struct {
	Position   Vector `json:"position"`
	Dimensions Vector `json:"dimensions"`
}

// SearchConfig controls how densely the provider samples around obstacles.
type SearchConfig struct {
	Radius       float64
	SamplePoints int
}

// Default search parameters.
const (
	DefaultSearchRadius = 50.0
	DefaultSamplePoints = 20
)

// Params is a parsed request. It is immutable once validated.
type Params struct {
	Node0       Vector
	Node1       Vector
	Environment Vector
	Size        Vector
	Goal        Vector
	Obstacles   []Obstacle // never nil after ParseInput
	Search      SearchConfig
}

// Dim returns the dimensionality D of the request.
func (p Params) Dim() int { return len(p.Environment) }

// Input carries the raw textual fields as supplied on the command line.
type Input struct {
	Node0        string
	Node1        string
	Environment  string
	Size         string
	Goal         string
	Obstacles    *string // nil = absent
	SearchRadius float64
	SamplePoints int
}
