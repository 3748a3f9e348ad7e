package namespace_test

import (
	"bytes"
	"testing"

	"github.com/0glabs/zk-cli/namespace"
	"github.com/0glabs/zk-cli/node"
	"github.com/0glabs/zk-cli/node/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCat(t *testing.T) {
	client := memory.NewClient()
	client.MustCreate("/text", "hello")
	client.MustCreate("/binary", "\xff\xfe\x00")
	reader := namespace.NewReader(client)

	var out bytes.Buffer
	require.NoError(t, reader.Cat(&out, "/text", false))
	assert.Equal(t, "hello\n", out.String())

	out.Reset()
	err := reader.Cat(&out, "/binary", false)
	assert.ErrorIs(t, err, namespace.ErrNotUTF8)
	assert.ErrorContains(t, err, "/binary")
	assert.Empty(t, out.String())

	out.Reset()
	require.NoError(t, reader.Cat(&out, "/binary", true))
	assert.Equal(t, []byte("\xff\xfe\x00"), out.Bytes())

	err = reader.Cat(&out, "/missing", false)
	assert.True(t, node.IsNoNode(err))
}
