package limit_test

import (
	"encoding/json"
	"testing"

	"github.com/bellande/limit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayload(t *testing.T) {
	t.Parallel()

	t.Run("encodes canonical fields", func(t *testing.T) {
		t.Parallel()
		p, err := limit.ParseInput(scenarioInput())
		require.NoError(t, err)

		body, err := json.Marshal(limit.NewPayload(p, "configured-key"))
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"node0": [0, 0],
			"node1": [10, 10],
			"environment": [100, 100],
			"size": [1, 1],
			"goal": [10, 10],
			"obstacles": [],
			"search_radius": 50,
			"sample_points": 20,
			"auth": {"authorization_key": "configured-key"}
		}`, string(body))
	})

	t.Run("nil obstacles become empty array", func(t *testing.T) {
		t.Parallel()
		p := validParams(2)
		p.Obstacles = nil

		payload := limit.NewPayload(p, "k")
		require.NotNil(t, payload.Obstacles)

		body, err := json.Marshal(payload)
		require.NoError(t, err)
		var decoded map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(body, &decoded))
		assert.Equal(t, "[]", string(decoded["obstacles"]))
	})

	t.Run("keeps obstacle order", func(t *testing.T) {
		t.Parallel()
		p := validParams(2)
		payload := limit.NewPayload(p, "k")
		assert.Equal(t, p.Obstacles, payload.Obstacles)
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		p := validParams(3)
		a, err := json.Marshal(limit.NewPayload(p, "k"))
		require.NoError(t, err)
		b, err := json.Marshal(limit.NewPayload(p, "k"))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}
