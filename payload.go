package limit

// Payload is the canonical request body sent to the remote service.
type Payload struct {
	Node0        Vector     `json:"node0"`
	Node1        Vector     `json:"node1"`
	Environment  Vector     `json:"environment"`
	Size         Vector     `json:"size"`
	Goal         Vector     `json:"goal"`
	Obstacles    []Obstacle `json:"obstacles"`
	SearchRadius float64    `json:"search_radius"`
	SamplePoints int        `json:"sample_points"`
	Auth         Auth       `json:"auth"`
}

// Auth carries the authorization key expected by the remote service.
type Auth struct {
	AuthorizationKey string `json:"authorization_key"`
}

// NewPayload builds the request body for validated params. Obstacles are
// always encoded as an array, never null.
func NewPayload(p Params, authKey string) Payload {
	obstacles := p.Obstacles
	if obstacles == nil {
		obstacles = []Obstacle{}
	}
	return Payload{
		Node0:        p.Node0,
		Node1:        p.Node1,
		Environment:  p.Environment,
		Size:         p.Size,
		Goal:         p.Goal,
		Obstacles:    obstacles,
		SearchRadius: p.Search.Radius,
		SamplePoints: p.Search.SamplePoints,
		Auth:         Auth{AuthorizationKey: authKey},
	}
}
