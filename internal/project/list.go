package project

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FlexibleStrings is a string list that deserializes from either a sequence or
// a single comma-delimited scalar. Both shapes normalize to trimmed, non-empty
// entries, so downstream code only ever sees a clean slice.
type FlexibleStrings []string

// SplitList splits a comma-delimited string into trimmed, non-empty tokens.
// An empty or all-whitespace input yields an empty (non-nil) slice.
func SplitList(s string) []string {
	return NormalizeList(strings.Split(s, ","))
}

// NormalizeList trims every entry and drops the empty ones. The result is
// always non-nil. Applying NormalizeList to its own output is a no-op.
func NormalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

// UnmarshalJSON accepts either a JSON array of strings or a single string of
// comma-separated tokens.
func (f *FlexibleStrings) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = NormalizeList(list)
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("expected string or string array: %w", err)
	}
	*f = SplitList(single)
	return nil
}

// UnmarshalYAML accepts either a YAML sequence of strings or a single scalar
// of comma-separated tokens.
func (f *FlexibleStrings) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*f = NormalizeList(list)
		return nil
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*f = SplitList(single)
		return nil
	default:
		return fmt.Errorf("expected string or string sequence, got yaml kind %d", value.Kind)
	}
}

// Strings returns the list as a plain, normalized, non-nil slice.
func (f FlexibleStrings) Strings() []string {
	return NormalizeList(f)
}
