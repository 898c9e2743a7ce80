package stash

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ReadYAML decodes the YAML mapping stored at path. A document whose top
// level is not a mapping fails with ErrMalformed.
func ReadYAML(path string) (map[string]any, error) {
	return readFile(FormatYAML, path, func(data []byte) (map[string]any, int, error) {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, 0, newCodecError(ErrMalformed, path, err)
		}
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, 0, newCodecError(ErrMalformed, path,
				fmt.Errorf("top-level value must be a mapping, got %s", typeName(v)))
		}
		return obj, 1, nil
	})
}

// WriteYAML writes obj to path as a YAML mapping. It follows the WriteJSON
// rules for obj and for existing files.
func WriteYAML(obj any, path string, opts ...Option) error {
	return writeFile(FormatYAML, path, newOptions(opts), func() ([]byte, error) {
		if err := checkMapping(obj, "obj"); err != nil {
			return nil, err
		}
		data, err := yaml.Marshal(obj)
		if err != nil {
			return nil, newCodecError(ErrMarshal, path, err)
		}
		return data, nil
	})
}
