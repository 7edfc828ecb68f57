// Package ownership decides whether a caller may see or mutate a resource.
package ownership

import "github.com/google/uuid"

// Owned is implemented by resources that belong to a single user.
type Owned interface {
	Owner() uuid.UUID
}

// Authorize reports whether actorID owns a resource owned by ownerID.
// Ids are compared by their canonical string form.
func Authorize(actorID, ownerID uuid.UUID) bool {
	return actorID.String() == ownerID.String()
}

// Filter returns the items owned by actorID, preserving order.
func Filter[T Owned](actorID uuid.UUID, items []T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if Authorize(actorID, it.Owner()) {
			out = append(out, it)
		}
	}
	return out
}
