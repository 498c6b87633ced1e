package messages

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a messages file by extension (".yaml", ".yml" or ".json").
func Parse(filename string, content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, errors.Join(ErrFailedToParse, err)
		}
	case "json":
		if err := json.Unmarshal(content, &data); err != nil {
			return nil, errors.Join(ErrFailedToParse, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}

	out := make(map[string]map[string]any, len(data))
	for lang, tree := range data {
		m, ok := normalize(tree)
		if !ok || lang == "" {
			return nil, fmt.Errorf("%w: language %q: expected a map, got %T", ErrInvalidStructure, lang, tree)
		}
		out[lang] = m
	}
	return out, nil
}

// normalize converts nested map[any]any nodes to map[string]any.
func normalize(v any) (map[string]any, bool) {
	var m map[string]any
	switch x := v.(type) {
	case map[string]any:
		m = x
	case map[any]any:
		m = make(map[string]any, len(x))
		for k, val := range x {
			m[fmt.Sprint(k)] = val
		}
	default:
		return nil, false
	}
	for k, val := range m {
		if nested, ok := normalize(val); ok {
			m[k] = nested
		}
	}
	return m, true
}

// merge copies src into dst recursively; src wins on leaves.
func merge(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			merge(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			copied := make(map[string]any, len(srcMap))
			merge(copied, srcMap)
			dst[k] = copied
			continue
		}
		dst[k] = v
	}
}
