package templates

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/expresskit/cli/internal/errors"
)

func TestContent_Env(t *testing.T) {
	data, err := Content("express", "env")
	require.NoError(t, err)
	assert.Equal(t, "\nPORT=5100\nMONGO_URI=mongodb://.......\n\n", string(data))
}

func TestContent_IsVerbatim(t *testing.T) {
	tests := []struct {
		id         string
		wantPrefix string
		contains   []string
	}{
		{
			id:         "manifest",
			wantPrefix: "\n{\n  \"name\": \"nodejs-api-template\"",
			contains:   []string{`"start": "nodemon ./v1/src/app.js"`, `"mongoose": "^6.3.0"`},
		},
		{
			id:         "app",
			wantPrefix: "\nconst express = require(\"express\");",
			contains:   []string{`app.use("/example",require("./routes/ExampleRoute"));`, "process.env.PORT || 5100"},
		},
		{
			id:       "loader-db",
			contains: []string{"DB bağlantısı başarılı."},
		},
		{
			id:       "error-middleware",
			contains: []string{"err.code === 11000", "Server Error"},
		},
		{
			id:       "config-server",
			contains: []string{"dotenv.config();"},
		},
		{
			id:       "config-index",
			contains: []string{`require("./server")`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			data, err := Content("express", tt.id)
			require.NoError(t, err)
			content := string(data)

			if tt.wantPrefix != "" {
				assert.True(t, strings.HasPrefix(content, tt.wantPrefix), "unexpected prefix: %q", content[:min(len(content), 60)])
			}
			for _, want := range tt.contains {
				assert.Contains(t, content, want)
			}
			// Assets are literal; nothing is substituted.
			assert.NotContains(t, content, "{{")
		})
	}
}

func TestContent_Unknown(t *testing.T) {
	_, err := Content("express", "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))

	_, err = Content("missing-template", "env")
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestAssetIDs(t *testing.T) {
	ids, err := AssetIDs("express")
	require.NoError(t, err)
	assert.Len(t, ids, 13)
	assert.Contains(t, ids, "env")
	assert.Contains(t, ids, "manifest")

	_, err = AssetIDs("missing-template")
	assert.Error(t, err)
}
