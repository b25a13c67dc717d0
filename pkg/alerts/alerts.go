// Package alerts wraps engine findings in a uniformly tagged envelope so
// that operational consumers can dispatch on kind without inspecting
// payload fields. Bunching is the only kind today; new kinds add a tag and
// a payload pointer rather than ad hoc fields.
package alerts

import (
	"time"

	"github.com/google/uuid"

	"github.com/cityloop/transitops/pkg/bunching"
)

// Kind tags the payload variant carried by an Alert.
type Kind string

const KindBunching Kind = "bunching"

// Alert is the tagged union of operational alert payloads. Exactly one
// payload pointer is non-nil, matching Kind.
type Alert struct {
	ID       string          `json:"id"`
	Kind     Kind            `json:"kind"`
	RaisedAt time.Time       `json:"raised_at"`
	Bunching *bunching.Alert `json:"bunching,omitempty"`
}

// FromBunching wraps one bunching finding, stamping it with a fresh id and
// the detection time.
func FromBunching(b bunching.Alert, at time.Time) Alert {
	return Alert{
		ID:       uuid.NewString(),
		Kind:     KindBunching,
		RaisedAt: at,
		Bunching: &b,
	}
}

// CollectBunching wraps a detector result set, preserving order.
func CollectBunching(bs []bunching.Alert, at time.Time) []Alert {
	out := make([]Alert, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBunching(b, at))
	}
	return out
}
