package api

import (
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v5"
)

// Server exposes loaded CLI documents over a small read-mostly REST API, used
// by the serve command as a geometry viewer backend.
type Server struct {
	store *DocumentStore
}

func NewServer(store *DocumentStore) *Server {
	if store == nil {
		store = NewDocumentStore()
	}
	return &Server{store: store}
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/v1/documents", s.handleListDocuments)
	e.GET("/v1/documents/:id", s.handleGetDocument)
	e.DELETE("/v1/documents/:id", s.handleDeleteDocument)
	e.GET("/v1/documents/:id/layers", s.handleListLayers)
	e.GET("/v1/documents/:id/layers/:index", s.handleGetLayer)
}

func (s *Server) handleListDocuments(c *echo.Context) error {
	docs := s.store.List()
	infos := make([]DocumentInfo, len(docs))
	for i, doc := range docs {
		infos[i] = doc.Info()
	}
	return writeJSON(c, http.StatusOK, map[string]any{
		"object": "list",
		"data":   infos,
	})
}

func (s *Server) handleGetDocument(c *echo.Context) error {
	doc, ok := s.store.Get(c.Param("id"))
	if !ok {
		return writeNotFound(c, "no such document")
	}
	return writeJSON(c, http.StatusOK, doc.Info())
}

func (s *Server) handleDeleteDocument(c *echo.Context) error {
	id := c.Param("id")
	doc, ok := s.store.Remove(id)
	if !ok {
		return writeNotFound(c, "no such document")
	}
	_ = doc.Close()
	return writeJSON(c, http.StatusOK, map[string]any{
		"id":      id,
		"deleted": true,
	})
}

func (s *Server) handleListLayers(c *echo.Context) error {
	doc, ok := s.store.Get(c.Param("id"))
	if !ok {
		return writeNotFound(c, "no such document")
	}
	return writeJSON(c, http.StatusOK, map[string]any{
		"object": "list",
		"data":   doc.LayerSummaries(),
	})
}

func (s *Server) handleGetLayer(c *echo.Context) error {
	doc, ok := s.store.Get(c.Param("id"))
	if !ok {
		return writeNotFound(c, "no such document")
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return writeBadRequest(c, "layer index must be an integer")
	}
	layer, ok := doc.Layer(index)
	if !ok {
		return writeNotFound(c, "layer index out of range")
	}
	return writeJSON(c, http.StatusOK, layer)
}

func writeJSON(c *echo.Context, status int, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Blob(status, echo.MIMEApplicationJSON, b)
}
