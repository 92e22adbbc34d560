package limit

import (
	"fmt"
	"math"
	"strconv"
)

// Validate checks that every vector and obstacle has the environment's
// dimensionality and that the search parameters are positive.
func (p Params) Validate() error {
	d := p.Dim()
	if d == 0 {
		return &DimensionMismatchError{Field: "environment", Obstacle: -1, Got: 0, Want: 1}
	}
	vectors := []struct {
		name string
		v    Vector
	}{
		{"node0", p.Node0},
		{"node1", p.Node1},
		{"size", p.Size},
		{"goal", p.Goal},
	}
	for _, f := range vectors {
		if len(f.v) != d {
			return &DimensionMismatchError{Field: f.name, Obstacle: -1, Got: len(f.v), Want: d}
		}
	}
	for i, o := range p.Obstacles {
		if len(o.Position) != d {
			return &DimensionMismatchError{Field: "position", Obstacle: i, Got: len(o.Position), Want: d}
		}
		if len(o.Dimensions) != d {
			return &DimensionMismatchError{Field: "dimensions", Obstacle: i, Got: len(o.Dimensions), Want: d}
		}
	}

	if err := p.validateFinite(); err != nil {
		return err
	}
	return p.Search.Validate()
}

// Validate checks that the radius is finite and positive and that at least
// one sample point is requested.
func (s SearchConfig) Validate() error {
	r := s.Radius
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return &InvalidParameterError{
			Name:  "search_radius",
			Value: strconv.FormatFloat(r, 'g', -1, 64),
			Msg:   "must be a finite number greater than 0",
		}
	}
	if s.SamplePoints <= 0 {
		return &InvalidParameterError{
			Name:  "sample_points",
			Value: strconv.Itoa(s.SamplePoints),
			Msg:   "must be greater than 0",
		}
	}
	return nil
}

// validateFinite rejects NaN and infinite components. encoding/json never
// produces them, but Params may be built directly.
func (p Params) validateFinite() error {
	check := func(field string, v Vector) error {
		for i, x := range v {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return &InvalidParameterError{
					Name:  fmt.Sprintf("%s[%d]", field, i),
					Value: strconv.FormatFloat(x, 'g', -1, 64),
					Msg:   "must be finite",
				}
			}
		}
		return nil
	}
	for _, f := range []struct {
		name string
		v    Vector
	}{
		{"node0", p.Node0},
		{"node1", p.Node1},
		{"environment", p.Environment},
		{"size", p.Size},
		{"goal", p.Goal},
	} {
		if err := check(f.name, f.v); err != nil {
			return err
		}
	}
	for i, o := range p.Obstacles {
		if err := check(fmt.Sprintf("obstacles[%d].position", i), o.Position); err != nil {
			return err
		}
		if err := check(fmt.Sprintf("obstacles[%d].dimensions", i), o.Dimensions); err != nil {
			return err
		}
	}
	return nil
}
