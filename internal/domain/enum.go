package domain

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

// enumSet names the members of a closed integer enumeration. Values travel
// through JSON as their names and through the store as integers.
type enumSet[E ~int] struct {
	kind  string
	names map[E]string
}

func newEnumSet[E ~int](kind string, names map[E]string) enumSet[E] {
	return enumSet[E]{kind: kind, names: names}
}

func (s enumSet[E]) valid(v E) bool {
	_, ok := s.names[v]
	return ok
}

func (s enumSet[E]) name(v E) string {
	if name, ok := s.names[v]; ok {
		return name
	}
	return strconv.Itoa(int(v))
}

// marshal writes undefined values as plain numbers.
func (s enumSet[E]) marshal(v E) []byte {
	if name, ok := s.names[v]; ok {
		return []byte(strconv.Quote(name))
	}
	return []byte(strconv.Itoa(int(v)))
}

// unmarshal accepts a member name (any case) or its integer value.
func (s enumSet[E]) unmarshal(data []byte, dst *E) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		text, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", s.kind, err)
		}
		for v, name := range s.names {
			if strings.EqualFold(name, text) {
				*dst = v
				return nil
			}
		}
		// numeric strings are accepted like bare numbers
		raw = text
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s: unknown value %s", s.kind, string(data))
	}
	*dst = E(n)
	return nil
}

func (s enumSet[E]) value(v E) (driver.Value, error) {
	return int64(v), nil
}

func (s enumSet[E]) scan(src any, dst *E) error {
	switch v := src.(type) {
	case int64:
		*dst = E(v)
	case int32:
		*dst = E(v)
	case []byte:
		n, err := strconv.Atoi(string(v))
		if err != nil {
			return fmt.Errorf("%s: scan %q: %w", s.kind, v, err)
		}
		*dst = E(n)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: scan %q: %w", s.kind, v, err)
		}
		*dst = E(n)
	case nil:
		*dst = 0
	default:
		return fmt.Errorf("%s: cannot scan %T", s.kind, src)
	}
	return nil
}
