package pet

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityType identifies generated pets as toolkit entities
const EntityType = "pet"

// GenerationResult is the output of one generate action
type GenerationResult struct {
	ID            string            `json:"id"`
	GeneratedAt   time.Time         `json:"generated_at"`
	Request       GenerationRequest `json:"request"`
	Stats         StatVector        `json:"stats"`
	BaseStats     BaseStatVector    `json:"base_stats"`
	Elements      [4]int            `json:"elements"`
	EnemybaseLine string            `json:"enemybase_line"`
}

var _ core.Entity = (*GenerationResult)(nil)

// GetID returns the result id
func (r *GenerationResult) GetID() string {
	return r.ID
}

// GetType returns EntityType
func (r *GenerationResult) GetType() string {
	return EntityType
}
