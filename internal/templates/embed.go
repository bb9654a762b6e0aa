package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	oerrors "github.com/expresskit/cli/internal/errors"
)

// Asset files are stored as <template>/<id>.tmpl and copied verbatim.
//
//go:embed express/*.tmpl
var assetFS embed.FS

const assetExt = ".tmpl"

// assetPath returns the embedded path of an asset.
func assetPath(templateName, id string) string {
	return path.Join(templateName, id+assetExt)
}

// Content returns the raw bytes of an asset.
func Content(templateName, id string) ([]byte, error) {
	data, err := fs.ReadFile(assetFS, assetPath(templateName, id))
	if err != nil {
		return nil, fmt.Errorf("reading asset %s/%s: %w", templateName, id, oerrors.ErrNotFound)
	}
	return data, nil
}

// AssetIDs lists the embedded asset ids of a template, sorted.
func AssetIDs(templateName string) ([]string, error) {
	entries, err := fs.ReadDir(assetFS, templateName)
	if err != nil {
		return nil, fmt.Errorf("listing template %s: %w", templateName, oerrors.ErrNotFound)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), assetExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), assetExt))
	}
	sort.Strings(ids)
	return ids, nil
}
