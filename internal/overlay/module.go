package overlay

import "time"

// Module is one debug tool registered with the overlay. Modules describe
// themselves for the console's module list and get a per-tick update hook.
type Module interface {
	ID() string
	Title() string
	Description() string
	Update(dt time.Duration)
}
