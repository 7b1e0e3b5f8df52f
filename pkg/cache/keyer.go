package cache

// Keyer builds cache keys for each kind of cached value.
type Keyer interface {
	// SceneKey identifies a laid-out scene.
	SceneKey(opts SceneKeyOpts) string

	// ArtifactKey identifies a rendered output of the scene under sceneKey.
	ArtifactKey(sceneKey string, opts ArtifactKeyOpts) string
}

// SceneKeyOpts holds every input that changes scene geometry or content.
type SceneKeyOpts struct {
	Structure string    `json:"structure"`
	Mode      string    `json:"mode,omitempty"`
	Values    []float64 `json:"values,omitempty"`
	Ops       string    `json:"ops,omitempty"`
	Highlight *float64  `json:"highlight,omitempty"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
}

// ArtifactKeyOpts holds the rendering options for one output format.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Style  string `json:"style,omitempty"`
	Seed   uint64 `json:"seed,omitempty"`
	Steps  bool   `json:"steps,omitempty"`

	Interactive bool `json:"interactive,omitempty"`
}

// DefaultKeyer hashes option structs into stable keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) SceneKey(opts SceneKeyOpts) string {
	return hashKey("scene", opts)
}

func (DefaultKeyer) ArtifactKey(sceneKey string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneKey, opts)
}

var _ Keyer = DefaultKeyer{}
