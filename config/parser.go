package config

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// lowerKeys returns a copy of the given map with all keys lower cased, including the keys of maps nested in maps and
// slices.
func lowerKeys(m map[string]interface{}) map[string]interface{} {
	lowered := make(map[string]interface{}, len(m))
	for key, val := range m {
		lowered[strings.ToLower(key)] = lowerNestedKeys(val)
	}

	return lowered
}

func lowerNestedKeys(val interface{}) interface{} {
	switch typedVal := val.(type) {
	case map[string]interface{}:
		return lowerKeys(typedVal)
	case []interface{}:
		lowered := make([]interface{}, len(typedVal))
		for i, elem := range typedVal {
			lowered[i] = lowerNestedKeys(elem)
		}

		return lowered
	default:
		return val
	}
}

// jsonLowerParser is a koanf.Parser for JSON files that lower cases all keys.
type jsonLowerParser struct{}

func (p *jsonLowerParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	return lowerKeys(out), nil
}

func (p *jsonLowerParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return json.MarshalIndent(o, "", "  ")
}

// yamlLowerParser is a koanf.Parser for YAML files that lower cases all keys.
type yamlLowerParser struct{}

func (p *yamlLowerParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	return lowerKeys(out), nil
}

func (p *yamlLowerParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(o)
}
