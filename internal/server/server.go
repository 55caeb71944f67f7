package server

import (
	"sync"

	"github.com/gin-gonic/gin"

	"cvmatch/pkg/models"
)

// Server is a local stand-in for the remote scoring service. It keeps match
// history in memory only; nothing is persisted.
type Server struct {
	mu      sync.Mutex
	history []models.HistoryEntry
}

// New creates an empty stub server
func New() *Server {
	return &Server{}
}

// Router builds the gin engine with the same routes as the real service
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.POST("/predict/", s.handlePredict)
	api.POST("/predict-with-files/", s.handlePredictWithFiles)
	api.GET("/matches/history/", s.handleHistory)
	api.GET("/supported-formats/", s.handleSupportedFormats)

	return r
}

// record prepends a scored pair to the in-memory history (newest first)
func (s *Server) record(entry models.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append([]models.HistoryEntry{entry}, s.history...)
}

func (s *Server) entries() []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}
