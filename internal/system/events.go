package system

import "github.com/corvid/corvid/internal/core/ecs"

// HealthDepleted is emitted when an entity's health reaches zero. Readable
// by subscribers on the following tick.
type HealthDepleted struct {
	ID ecs.EntityID
}

// WallBounce is emitted when an entity reflects off the scene bounds.
type WallBounce struct {
	ID ecs.EntityID
}
