package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/algoviz/pkg/cache"
	"github.com/matzehuels/algoviz/pkg/observability"
	"github.com/matzehuels/algoviz/pkg/scene"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so caching behaves the same everywhere.
//
// The Runner holds no per-run state, so one Runner can serve concurrent
// requests with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the default entry lifetimes when positive.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Build
	buildStart := time.Now()
	s, key, buildHit, err := r.BuildWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Scene = s
	result.SceneKey = key
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.NodeCount = len(s.Nodes)
	result.Stats.EdgeCount = len(s.Edges)
	result.CacheInfo.BuildHit = buildHit

	opts.Logger.Info("built scene",
		"structure", s.Kind,
		"nodes", len(s.Nodes),
		"duration", result.Stats.BuildTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, s, key, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// BuildWithCacheInfo builds the scene with caching. It returns the scene,
// its cache key and whether it came from cache.
func (r *Runner) BuildWithCacheInfo(ctx context.Context, opts Options) (scene.Scene, string, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForBuild(); err != nil {
		return scene.Scene{}, "", false, err
	}
	hooks := observability.Pipeline()

	key := r.Keyer.SceneKey(opts.SceneKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if s, err := scene.Unmarshal(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "scene")
				return s, key, true, nil
			}
			// Undecodable entries fall through to a rebuild.
		} else if err != nil {
			opts.Logger.Warn("cache read failed", "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, "scene")
	}

	hooks.OnBuildStart(ctx, opts.Structure, len(opts.Values))
	start := time.Now()
	s, err := Build(opts)
	hooks.OnBuildComplete(ctx, opts.Structure, len(s.Nodes), time.Since(start), err)
	if err != nil {
		return scene.Scene{}, "", false, err
	}
	for _, step := range s.Steps {
		opts.Logger.Debug(step)
	}

	if data, err := scene.Marshal(s); err == nil {
		r.set(ctx, "scene", key, data, cache.SceneTTL)
	}
	return s, key, false, nil
}

// Build is a convenience wrapper that calls BuildWithCacheInfo and discards
// the cache information.
func (r *Runner) Build(ctx context.Context, opts Options) (scene.Scene, error) {
	s, _, _, err := r.BuildWithCacheInfo(ctx, opts)
	return s, err
}

// RenderWithCacheInfo renders every requested format with caching. sceneKey
// identifies s in the cache; when empty the scene's JSON hash is used.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, s scene.Scene, sceneKey string, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	if sceneKey == "" {
		data, err := scene.Marshal(s)
		if err != nil {
			return nil, false, fmt.Errorf("serialize scene for cache key: %w", err)
		}
		sceneKey = cache.Hash(data)
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(sceneKey, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit && !opts.Refresh {
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
			continue
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, missing)
	start := time.Now()
	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := Render(ctx, s, renderOpts)
	hooks.OnRenderComplete(ctx, missing, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		r.set(ctx, "artifact", r.Keyer.ArtifactKey(sceneKey, opts.ArtifactKeyOpts(format)), data, cache.ArtifactTTL)
		artifacts[format] = data
	}
	return artifacts, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards
// the cache information.
func (r *Runner) Render(ctx context.Context, s scene.Scene, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, s, "", opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// set writes to the cache, logging rather than failing on errors.
func (r *Runner) set(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if r.TTL > 0 {
		ttl = r.TTL
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
