package unit

import "jungle-defense/internal/entity"

// Passive does nothing but stand in its cell, e.g. the tree producers need.
type Passive struct {
	entity.Base
}
