package http

import (
	"time"

	"jobdesk/internal/config"
	"jobdesk/internal/domain"
	"jobdesk/internal/infra/auth/googleid"
	"jobdesk/internal/infra/db"
	"jobdesk/internal/infra/ratelimit"
	"jobdesk/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	cfg config.Config
	r   *gin.Engine

	verifier  domain.Verifier
	directory domain.Directory
	companies *usecase.CompanyService
	jobs      *usecase.JobService

	authInitErr error

	rateLimiter         domain.RateLimiter
	rateLimitRequests   int
	rateLimitWindow     time.Duration
	rateLimitFailClosed bool
}

type ServerDeps struct {
	Verifier    domain.Verifier
	Directory   domain.Directory
	Companies   *usecase.CompanyService
	Jobs        *usecase.JobService
	RateLimiter domain.RateLimiter
}

func NewServer(cfg config.Config, store *db.Store) *Server {
	users := db.NewUserRepository(store.DB)
	companies := db.NewCompanyRepository(store.DB)
	jobs := db.NewJobRepository(store.DB)

	deps := ServerDeps{
		Directory: usecase.NewUserDirectory(users),
		Companies: usecase.NewCompanyService(companies),
		Jobs:      usecase.NewJobService(jobs, companies),
	}
	return NewServerWithDeps(cfg, deps)
}

func NewServerWithDeps(cfg config.Config, deps ServerDeps) *Server {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{
		cfg:       cfg,
		r:         r,
		verifier:  deps.Verifier,
		directory: deps.Directory,
		companies: deps.Companies,
		jobs:      deps.Jobs,
	}
	if s.verifier == nil {
		verifier, err := googleid.NewVerifier(cfg)
		if err != nil {
			s.authInitErr = err
		} else {
			s.verifier = verifier
		}
	}
	s.initCORS()
	s.initRateLimit(deps.RateLimiter)
	s.routes()
	return s
}

func (s *Server) initCORS() {
	if s.cfg.FrontendURL == "" {
		return
	}
	s.r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{s.cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func (s *Server) initRateLimit(override domain.RateLimiter) {
	if override != nil {
		s.rateLimiter = override
	}
	if s.rateLimiter == nil && s.cfg.RateLimitRequests > 0 {
		if s.cfg.RedisAddr != "" {
			if limiter, err := ratelimit.NewRedisLimiter(s.cfg.RedisAddr, s.cfg.RedisPassword, s.cfg.RedisDB, nil); err == nil {
				s.rateLimiter = limiter
			}
		}
		if s.rateLimiter == nil {
			s.rateLimiter = ratelimit.NewMemoryLimiter(ratelimit.MemoryLimiterConfig{
				MaxKeys: s.cfg.RateLimitMaxKeys,
			})
		}
	}
	s.rateLimitRequests = s.cfg.RateLimitRequests
	s.rateLimitWindow = s.cfg.RateLimitWindow()
	s.rateLimitFailClosed = s.cfg.RateLimitFailClosed
}

func (s *Server) routes() {
	s.r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	s.r.Use(s.rateLimit())

	auth := s.r.Group("/auth")
	{
		auth.GET("/login", s.handleLogin)
		auth.GET("/callback", s.handleCallback)
		auth.GET("/logout", s.handleLogout)
		auth.GET("/user_info", s.requireUser(), s.handleUserInfo)
	}

	company := s.r.Group("/company", s.requireUser())
	{
		company.GET("/", s.handleListCompanies)
		company.POST("/", s.handleCreateCompany)
		company.GET("/:company_id", s.handleGetCompany)
		company.PUT("/:company_id", s.handleUpdateCompany)
		company.DELETE("/:company_id", s.handleDeleteCompany)
	}

	jobs := s.r.Group("/jobs")
	{
		jobs.GET("/public/:job_id", s.handlePublicGetJob)

		protected := jobs.Group("", s.requireUser())
		protected.GET("/", s.handleListJobs)
		protected.POST("/", s.handleCreateJob)
		protected.GET("/:job_id", s.handleGetJob)
		protected.PUT("/:job_id", s.handleUpdateJob)
		protected.DELETE("/:job_id", s.handleDeleteJob)
	}
}

func (s *Server) Run() error {
	if s.authInitErr != nil {
		return s.authInitErr
	}
	return s.r.Run(s.cfg.HTTPAddr)
}
