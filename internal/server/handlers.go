package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/algoviz/pkg/buildinfo"
	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/keys"
	"github.com/matzehuels/algoviz/pkg/pipeline"
	"github.com/matzehuels/algoviz/pkg/scene"
	"github.com/matzehuels/algoviz/pkg/share"
)

// =============================================================================
// Responses
// =============================================================================

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code"`
}

// BuildResponse is the body returned by POST /api/{structure}.
type BuildResponse struct {
	SceneKey  string            `json:"scene_key"`
	Scene     scene.Scene       `json:"scene"`
	Artifacts map[string]string `json:"artifacts"`
	Cached    bool              `json:"cached"`
}

// ShareResponse is the body returned when a share is created.
type ShareResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, ErrorResponse{Error: errors.UserMessage(err), Code: errors.GetCode(err)})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

// handleBuild runs the full pipeline for the structure named in the path.
func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := decodeBody(w, r, &opts); err != nil {
		s.writeError(w, err)
		return
	}
	structure := chi.URLParam(r, "structure")
	if opts.Structure != "" && opts.Structure != structure {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "body structure %q does not match path %q", opts.Structure, structure))
		return
	}
	opts.Structure = structure
	opts.Logger = s.logger

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	artifacts := make(map[string]string, len(result.Artifacts))
	for format, data := range result.Artifacts {
		artifacts[format] = string(data)
	}
	writeJSON(w, http.StatusOK, BuildResponse{
		SceneKey:  result.SceneKey,
		Scene:     result.Scene,
		Artifacts: artifacts,
		Cached:    result.CacheInfo.BuildHit && result.CacheInfo.RenderHit,
	})
}

// handleRenderToken renders a share token as a single artifact, so links
// can be embedded directly as images.
//
//	GET /api/render?state=<token>&format=svg&style=handdrawn&search=40
func (s *Server) handleRenderToken(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	st, err := share.Decode(q.Get("state"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	opts := optionsFromState(st)
	opts.Logger = s.logger
	opts.Style = q.Get("style")
	opts.Steps = q.Get("steps") == "true"
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts.Formats = []string{format}
	if v := q.Get("search"); v != "" {
		key, ok := keys.Parse(v)
		if !ok {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid search key: %q", v))
			return
		}
		opts.Highlight = &key
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType(format))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(result.Artifacts[format])
}

// handleScene returns a previously built scene from the cache.
func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	data, hit, err := s.runner.Cache.Get(r.Context(), key)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !hit {
		s.writeError(w, errors.New(errors.ErrCodeSceneNotFound, "scene %s not found", key))
		return
	}
	sc, err := scene.Unmarshal(data)
	if err != nil {
		s.writeError(w, errors.New(errors.ErrCodeSceneNotFound, "scene %s not found", key))
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleCreateShare(w http.ResponseWriter, r *http.Request) {
	var st share.State
	if err := decodeBody(w, r, &st); err != nil {
		s.writeError(w, err)
		return
	}
	if err := st.Validate(); err != nil {
		s.writeError(w, err)
		return
	}
	token, err := share.Encode(st)
	if err != nil {
		s.writeError(w, err)
		return
	}
	id, err := s.shares.Save(r.Context(), st)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ShareResponse{ID: id, Token: token})
}

func (s *Server) handleGetShare(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateShareID(id); err != nil {
		s.writeError(w, err)
		return
	}
	st, err := s.shares.Load(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// =============================================================================
// Helpers
// =============================================================================

func optionsFromState(st share.State) pipeline.Options {
	return pipeline.Options{
		Structure: st.Structure,
		Mode:      st.Mode,
		Values:    st.Values,
		Ops:       st.Ops,
	}
}

func contentType(format string) string {
	switch format {
	case pipeline.FormatSVG, pipeline.FormatGraphviz:
		return "image/svg+xml"
	case pipeline.FormatJSON:
		return "application/json"
	}
	return "text/vnd.graphviz"
}
