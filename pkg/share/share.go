// Package share stores visualization inputs so they can be reopened by link.
//
// A [State] is the minimal input that reproduces a scene: the structure, the
// heap mode and the keys (or heap operation script). States travel in two
// forms:
//
//   - a self-contained token from [Encode], safe to put in a URL query
//   - a short UUID returned by a [Store], for states too long for a URL
//
// # Stores
//
//   - [MemoryStore]: process-local, for tests and single-instance servers
//   - [FileStore]: one JSON file per record, for the CLI
//   - [MongoStore]: shared across server instances
//
// Records are immutable; saving the same state twice yields two IDs.
package share

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/scene"
)

// State is the input needed to rebuild a visualization.
type State struct {
	Structure string    `json:"structure" bson:"structure"`
	Mode      string    `json:"mode,omitempty" bson:"mode,omitempty"`
	Values    []float64 `json:"values,omitempty" bson:"values,omitempty"`
	Ops       string    `json:"ops,omitempty" bson:"ops,omitempty"`
}

// Validate checks the structure kind and values.
func (s State) Validate() error {
	if !scene.ValidKinds[s.Structure] {
		return errors.New(errors.ErrCodeInvalidStructure, "invalid structure: %q (must be heap or bst)", s.Structure)
	}
	if err := errors.ValidateValues(s.Values); err != nil {
		return err
	}
	return errors.ValidateScript(s.Ops)
}

// Record is a stored state.
type Record struct {
	ID        string    `json:"id" bson:"_id"`
	State     State     `json:"state" bson:"state"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Store persists share records.
type Store interface {
	// Save stores st and returns its new ID.
	Save(ctx context.Context, st State) (string, error)

	// Load returns the state saved under id. Unknown IDs yield an
	// ErrCodeShareNotFound error.
	Load(ctx context.Context, id string) (State, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// NewID returns a fresh share ID.
func NewID() string {
	return uuid.NewString()
}

func newRecord(st State) Record {
	return Record{ID: NewID(), State: st, CreatedAt: time.Now().UTC()}
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeShareNotFound, "share %s not found", id)
}

// =============================================================================
// Tokens
// =============================================================================

// Encode returns a URL-safe token for st.
func Encode(st State) (string, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode parses a token produced by [Encode] and validates the result.
func Decode(token string) (State, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return State{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed share token")
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed share token")
	}
	if err := st.Validate(); err != nil {
		return State{}, err
	}
	return st, nil
}
