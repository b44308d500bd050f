package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/fleetrate/internal/config"
	"github.com/smallbiznis/fleetrate/internal/machine"
	machinedomain "github.com/smallbiznis/fleetrate/internal/machine/domain"
	"github.com/smallbiznis/fleetrate/internal/pricingmodel"
	pricingdomain "github.com/smallbiznis/fleetrate/internal/pricingmodel/domain"
	"github.com/smallbiznis/fleetrate/internal/resolution"
	resolutiondomain "github.com/smallbiznis/fleetrate/internal/resolution/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	pricingmodel.Module,
	machine.Module,
	resolution.Module,
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(RunHTTP),
)

func NewEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	catalogSvc    pricingdomain.Service
	machineSvc    machinedomain.Service
	resolutionSvc resolutiondomain.Service
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	CatalogSvc    pricingdomain.Service
	MachineSvc    machinedomain.Service
	ResolutionSvc resolutiondomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		catalogSvc:    p.CatalogSvc,
		machineSvc:    p.MachineSvc,
		resolutionSvc: p.ResolutionSvc,
	}

	svc.registerRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	r := s.engine

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "hello world")
	})

	// -------- Pricing models --------
	r.GET("/pricing-models", s.ListPricingModels)
	r.POST("/pricing-models", s.CreatePricingModel)
	r.GET("/pricing-models/:pmid", s.GetPricingModelByID)
	r.PUT("/pricing-models/:pmid", s.UpdatePricingModel)

	// -------- Prices --------
	r.GET("/pricing-models/:pmid/prices", s.ListModelPrices)
	r.POST("/pricing-models/:pmid/prices", s.AddModelPrice)
	r.DELETE("/pricing-models/:pmid/prices/:priceid", s.RemoveModelPrice)

	// -------- Machines --------
	r.PUT("/machines/:machineid/prices/:pmid", s.AssignMachinePricing)
	r.DELETE("/machines/:machineid/prices", s.ClearMachinePricing)
	r.GET("/machines/:machineid/prices", s.GetMachinePricing)
}

func RunHTTP(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
