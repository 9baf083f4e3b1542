package server

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/averycrespi/exprlab/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, s *ExprServer, message string) string {
	t.Helper()
	resp := s.MCPServer().HandleMessage(context.Background(), json.RawMessage(message))
	require.NotNil(t, resp)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	return string(data)
}

func TestNewExprServer_RegistersTools(t *testing.T) {
	s := NewExprServer(types.Config{})

	out := handle(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)

	assert.Contains(t, out, `"name":"list_evaluators"`)
	assert.Contains(t, out, `"name":"evaluate"`)
	assert.Contains(t, out, `"name":"shuffle"`)
}

func TestExprServer_CallEvaluate(t *testing.T) {
	s := NewExprServer(types.Config{})

	out := handle(t, s, `{
		"jsonrpc": "2.0",
		"id": 2,
		"method": "tools/call",
		"params": {
			"name": "evaluate",
			"arguments": {"kind": "custom_expression", "operands": [5, 4, -2, 9, 3]}
		}
	}`)

	assert.Contains(t, out, `5 - 4 + (-2) - 9 + 3`)
	assert.NotContains(t, out, `"isError":true`)
}

func TestExprServer_CallShuffleOnSummator(t *testing.T) {
	s := NewExprServer(types.Config{})

	out := handle(t, s, `{
		"jsonrpc": "2.0",
		"id": 3,
		"method": "tools/call",
		"params": {
			"name": "shuffle",
			"arguments": {"kind": "summator", "operands": [1, -1]}
		}
	}`)

	assert.Contains(t, out, `"isError":true`)
	assert.Contains(t, out, `does not support shuffling`)
}
