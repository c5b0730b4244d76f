package server

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/agenthands/interactome/internal/core"
	"github.com/agenthands/interactome/internal/core/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed schema/records.json
var recordsSchema string

type Server struct {
	Analyzer  *core.Analyzer
	Databases []model.Database

	schema    *jsonschema.Schema
	templates *template.Template
}

func NewServer(analyzer *core.Analyzer, databases []model.Database) (*Server, error) {
	sch, err := jsonschema.CompileString("records.json", recordsSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile records schema: %w", err)
	}

	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	if len(databases) == 0 {
		log.Printf("Warning: no databases configured, analysis requests will fail")
	}

	return &Server{
		Analyzer:  analyzer,
		Databases: databases,
		schema:    sch,
		templates: tmpl,
	}, nil
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(s.templates)

	r.GET("/", s.Index)
	r.GET("/analyze", s.AnalyzePage)
	r.GET("/health", s.Health)

	api := r.Group("/api/v1")
	api.GET("/databases", s.ListDatabases)
	api.GET("/analyze", s.Analyze)
	api.POST("/graph", s.AnalyzeGraph)

	return r
}

var templateFuncs = template.FuncMap{
	"comma": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"rank": func(i int) int {
		return i + 1
	},
	"score": func(v float64) string {
		return strconv.FormatFloat(v, 'f', 4, 64)
	},
	// barWidth scales v against the largest score of the chart, in percent.
	"barWidth": func(v float64, scores []float64) string {
		max := 0.0
		for _, s := range scores {
			if s > max {
				max = s
			}
		}
		if max <= 0 {
			return "0"
		}
		return strconv.FormatFloat(100*v/max, 'f', 1, 64)
	},
}
