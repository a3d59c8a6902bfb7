package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func mustParse(t *testing.T, v any) gjson.Result {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return gjson.ParseBytes(data)
}
