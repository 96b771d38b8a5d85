package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"autotube/events"
	"autotube/generator"
	"autotube/store"
	"autotube/types"
	"autotube/youtube"
)

// Server bundles the dependencies the request handlers need. Everything is
// injected so tests can swap in fakes.
type Server struct {
	store      store.Store
	generator  *generator.Generator
	auth       *youtube.Auth
	publisher  *youtube.Publisher
	producer   *events.Producer
	archiver   *store.Archiver
	cronSecret string
}

// ServerConfig carries the dependencies for NewServer. Producer and
// Archiver may be nil; the corresponding side effects are skipped.
type ServerConfig struct {
	Store      store.Store
	Generator  *generator.Generator
	Auth       *youtube.Auth
	Producer   *events.Producer
	Archiver   *store.Archiver
	CronSecret string
}

// NewServer creates a new API server instance.
func NewServer(cfg ServerConfig) *Server {
	return &Server{
		store:      cfg.Store,
		generator:  cfg.Generator,
		auth:       cfg.Auth,
		publisher:  youtube.NewPublisher(cfg.Auth),
		producer:   cfg.Producer,
		archiver:   cfg.Archiver,
		cronSecret: cfg.CronSecret,
	}
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(s *Server) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	s.RegisterDashboardRoutes(r)
	s.RegisterConfigRoutes(r)
	s.RegisterVideoRoutes(r)
	s.RegisterGenerateRoutes(r)
	s.RegisterAuthRoutes(r)
	s.RegisterPublishRoutes(r)
	s.RegisterCronRoutes(r)
	s.RegisterScheduleRoutes(r)
	s.RegisterTopicRoutes(r)
	s.RegisterHealthRoutes(r)
	return r
}

// recordVideo appends a record and runs the optional side effects
// (S3 archival, Kafka event). Side effects never fail the request.
func (s *Server) recordVideo(ctx context.Context, video types.VideoRecord, source string) error {
	if err := s.store.AppendVideo(ctx, video); err != nil {
		return err
	}
	s.archiver.ArchiveVideo(video)
	s.producer.VideoGenerated(video, source)
	return nil
}
