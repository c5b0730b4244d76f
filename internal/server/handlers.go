package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/agenthands/interactome/internal/core"
	"github.com/agenthands/interactome/internal/core/centrality"
	"github.com/agenthands/interactome/internal/core/model"
	"github.com/agenthands/interactome/internal/core/network"
	"github.com/agenthands/interactome/internal/source"
)

const maxUploadBytes = 10 << 20

type pageData struct {
	Databases []model.Database
	Protein   string
	Database  model.Database
	Report    *model.Report
	Error     string
}

func (s *Server) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData{
		Databases: s.Databases,
		Database:  s.defaultDatabase(),
	})
}

// AnalyzePage renders either a complete report or a single error message.
func (s *Server) AnalyzePage(c *gin.Context) {
	protein := strings.TrimSpace(c.Query("protein"))
	data := pageData{
		Databases: s.Databases,
		Protein:   protein,
		Database:  s.defaultDatabase(),
	}

	db, err := s.database(c.Query("database"))
	if err == nil {
		data.Database = db
		data.Report, err = s.Analyzer.Analyze(c.Request.Context(), protein, db)
	}
	if err != nil {
		status, msg := errorResponse(err)
		data.Report = nil
		data.Error = msg
		c.HTML(status, "report.html", data)
		return
	}

	c.HTML(http.StatusOK, "report.html", data)
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) ListDatabases(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"databases": s.Databases})
}

func (s *Server) Analyze(c *gin.Context) {
	db, err := s.database(c.Query("database"))
	if err != nil {
		s.fail(c, err)
		return
	}

	report, err := s.Analyzer.Analyze(c.Request.Context(), c.Query("protein"), db)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

type GraphRequest struct {
	Records []model.InteractionRecord `json:"records"`
}

// AnalyzeGraph analyzes records supplied in the request body instead of a
// configured database.
func (s *Server) AnalyzeGraph(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := s.schema.Validate(doc); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fmt.Sprintf("%v: %v", network.ErrSchemaViolation, err)})
		return
	}

	var req GraphRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	report, err := s.Analyzer.AnalyzeRecords(c.Request.Context(), req.Records)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *Server) fail(c *gin.Context, err error) {
	status, msg := errorResponse(err)
	c.JSON(status, gin.H{"error": msg})
}

func (s *Server) database(raw string) (model.Database, error) {
	if strings.TrimSpace(raw) == "" {
		return s.defaultDatabase(), nil
	}
	db, ok := model.ParseDatabase(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", source.ErrUnknownDatabase, raw)
	}
	return db, nil
}

func (s *Server) defaultDatabase() model.Database {
	if len(s.Databases) == 0 {
		return model.DatabaseBioGRID
	}
	return s.Databases[0]
}

// errorResponse maps a pipeline error to a status code and the message shown
// to the user.
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrInvalidProtein), errors.Is(err, source.ErrUnknownDatabase):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, network.ErrSchemaViolation), errors.Is(err, centrality.ErrDegenerateGraph):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, centrality.ErrNotConverged):
		return http.StatusUnprocessableEntity, err.Error() + "; retry with a larger iteration bound"
	case errors.Is(err, source.ErrSourceUnavailable):
		log.Printf("Source unavailable: %v", err)
		return http.StatusServiceUnavailable, err.Error()
	default:
		log.Printf("Analysis failed: %v", err)
		return http.StatusInternalServerError, "Failed to analyze network"
	}
}
