package limit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ParseInput parses the textual fields of in and validates the result.
// The returned error is a *ParseError, *DimensionMismatchError or
// *InvalidParameterError.
func ParseInput(in Input) (Params, error) {
	var (
		p   Params
		err error
	)
	fields := []struct {
		name string
		text string
		dst  *Vector
	}{
		{"node0", in.Node0, &p.Node0},
		{"node1", in.Node1, &p.Node1},
		{"environment", in.Environment, &p.Environment},
		{"size", in.Size, &p.Size},
		{"goal", in.Goal, &p.Goal},
	}
	for _, f := range fields {
		if *f.dst, err = parseVector(f.name, f.text); err != nil {
			return Params{}, err
		}
	}
	if p.Obstacles, err = parseObstacles(in.Obstacles); err != nil {
		return Params{}, err
	}
	p.Search = SearchConfig{Radius: in.SearchRadius, SamplePoints: in.SamplePoints}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

func parseVector(field, text string) (Vector, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Field: field, Msg: "required"}
	}
	if isNull([]byte(text)) {
		return nil, &ParseError{Field: field, Msg: "expected a JSON array of numbers, got null"}
	}
	var v Vector
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, &ParseError{Field: field, Msg: "expected a JSON array of numbers", Err: err}
	}
	return v, nil
}

// obstacleDTO distinguishes a missing key from an empty vector.
type obstacleDTO struct {
	Position   *Vector `json:"position"`
	Dimensions *Vector `json:"dimensions"`
}

// parseObstacles decodes the optional obstacle list. Absent or null text
// yields an empty, non-nil slice.
func parseObstacles(text *string) ([]Obstacle, error) {
	if text == nil || isNull([]byte(*text)) {
		return []Obstacle{}, nil
	}
	var dtos []obstacleDTO
	if err := json.Unmarshal([]byte(*text), &dtos); err != nil {
		return nil, &ParseError{Field: "obstacles", Msg: "expected a JSON array of {position, dimensions} objects", Err: err}
	}
	obstacles := make([]Obstacle, len(dtos))
	for i, d := range dtos {
		if d.Position == nil {
			return nil, &ParseError{Field: fmt.Sprintf("obstacles[%d].position", i), Msg: "required"}
		}
		if d.Dimensions == nil {
			return nil, &ParseError{Field: fmt.Sprintf("obstacles[%d].dimensions", i), Msg: "required"}
		}
		obstacles[i] = Obstacle{Position: *d.Position, Dimensions: *d.Dimensions}
	}
	return obstacles, nil
}

func isNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}
