package domain

const (
	ResourceTypeRoom    = "room"
	ResourceTypeVehicle = "vehicle"
)

// Resource is anything that can be booked. Type is open-ended: "room" and
// "vehicle" are the seeded kinds, but new kinds need no code change.
type Resource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type CreateResourceInput struct {
	ID   string
	Name string
	Type string
}

type UpdateResourceInput struct {
	Name *string
	Type *string
}
