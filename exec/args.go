package exec

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bellande/limit"
)

// Args returns the argument list for the companion executable:
//
//	passcode node0 node1 environment size goal obstacles search_radius sample_points
//
// Vectors and obstacles are compact JSON; obstacles is "[]" when empty.
func Args(passcode string, p limit.Params) ([]string, error) {
	obstacles := p.Obstacles
	if obstacles == nil {
		obstacles = []limit.Obstacle{}
	}

	args := make([]string, 0, 9)
	args = append(args, passcode)
	for _, v := range []any{p.Node0, p.Node1, p.Environment, p.Size, p.Goal, obstacles} {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("exec: encode argument %d: %w", len(args), err)
		}
		args = append(args, string(b))
	}
	args = append(args,
		strconv.FormatFloat(p.Search.Radius, 'f', -1, 64),
		strconv.Itoa(p.Search.SamplePoints),
	)
	return args, nil
}
