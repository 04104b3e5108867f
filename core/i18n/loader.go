package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithJSONDir loads translation catalogs from JSON files in fsys.
// Files must follow the {lang}/{namespace}.json layout, for example
// en/common.json or ko/editor.json. Entries outside that layout are
// ignored, so a README next to the catalogs is harmless. A file that fails
// to parse aborts construction.
func WithJSONDir(fsys fs.FS) Option {
	return loadDir(fsys, func(data []byte, out *map[string]any) error {
		return json.Unmarshal(data, out)
	}, ".json")
}

// WithYAMLDir loads translation catalogs from YAML files in fsys.
// Files must follow the {lang}/{namespace}.yaml layout; the .yml extension
// is accepted as well.
func WithYAMLDir(fsys fs.FS) Option {
	return loadDir(fsys, func(data []byte, out *map[string]any) error {
		return yaml.Unmarshal(data, out)
	}, ".yaml", ".yml")
}

// loadDir walks fsys picking up {lang}/{namespace}{ext} files and grafting
// each one as a namespace subtree.
func loadDir(fsys fs.FS, unmarshal func([]byte, *map[string]any) error, exts ...string) Option {
	return func(i *I18n) error {
		if fsys == nil {
			return fmt.Errorf("filesystem cannot be nil")
		}
		return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			lang, file, ok := splitCatalogPath(p)
			if !ok {
				return nil
			}
			ext := path.Ext(file)
			if !slices.Contains(exts, ext) {
				return nil
			}
			namespace := strings.TrimSuffix(file, ext)
			if namespace == "" {
				return nil
			}

			data, err := fs.ReadFile(fsys, p)
			if err != nil {
				return fmt.Errorf("failed to read catalog %s: %w", p, err)
			}
			var translations map[string]any
			if err := unmarshal(data, &translations); err != nil {
				return fmt.Errorf("failed to parse catalog %s: %w", p, err)
			}

			i.graft(lang, namespace, translations)
			return nil
		})
	}
}

// splitCatalogPath splits a walked path into its language directory and file
// name, requiring exactly the {lang}/{file} depth.
func splitCatalogPath(p string) (lang, file string, ok bool) {
	parts := strings.Split(p, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
