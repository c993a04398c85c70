package toml

import "fmt"

const currentCartSchemaVersion = 1

type cartFileSchema struct {
	Version   int              `toml:"version"`
	UpdatedAt string           `toml:"updated_at,omitempty"`
	Items     []cartItemSchema `toml:"items"`
}

type cartItemSchema struct {
	DishID   string `toml:"dish_id"`
	Name     string `toml:"name"`
	Quantity int    `toml:"quantity"`
	Note     string `toml:"note,omitempty"`
}

func (s *cartFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentCartSchemaVersion
	}
}

func (s cartFileSchema) validateVersion() error {
	if s.Version > currentCartSchemaVersion {
		return fmt.Errorf("unsupported cart schema version %d (current %d)", s.Version, currentCartSchemaVersion)
	}
	return nil
}
