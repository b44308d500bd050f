package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	pricingdomain "github.com/smallbiznis/fleetrate/internal/pricingmodel/domain"
)

type pricingModelRequest struct {
	Name string `json:"name"`
}

type addPriceRequest struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
	Value int    `json:"value"`
}

func (s *Server) ListPricingModels(c *gin.Context) {
	resp, err := s.catalogSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) CreatePricingModel(c *gin.Context) {
	// A missing or malformed body falls through to the required-name check.
	var req pricingModelRequest
	_ = c.ShouldBindJSON(&req)

	id, err := s.catalogSvc.Create(c.Request.Context(), req.Name)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (s *Server) GetPricingModelByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("pmid"))
	resp, err := s.catalogSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) UpdatePricingModel(c *gin.Context) {
	var req pricingModelRequest
	_ = c.ShouldBindJSON(&req)

	id := strings.TrimSpace(c.Param("pmid"))
	updated, err := s.catalogSvc.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": updated})
}

func (s *Server) ListModelPrices(c *gin.Context) {
	id := strings.TrimSpace(c.Param("pmid"))
	resp, err := s.catalogSvc.GetPrices(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) AddModelPrice(c *gin.Context) {
	var req addPriceRequest
	_ = c.ShouldBindJSON(&req)

	id := strings.TrimSpace(c.Param("pmid"))
	priceID, err := s.catalogSvc.AddPrice(c.Request.Context(), id, pricingdomain.AddPriceRequest{
		Name:  req.Name,
		Price: req.Price,
		Value: req.Value,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": priceID})
}

func (s *Server) RemoveModelPrice(c *gin.Context) {
	modelID := strings.TrimSpace(c.Param("pmid"))
	priceID := strings.TrimSpace(c.Param("priceid"))

	removed, err := s.catalogSvc.RemovePrice(c.Request.Context(), modelID, priceID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if !removed {
		AbortWithError(c, ErrNotFound)
		return
	}

	c.Status(http.StatusOK)
}

func isPricingValidationError(err error) bool {
	switch err {
	case pricingdomain.ErrNameRequired,
		pricingdomain.ErrIDRequired,
		pricingdomain.ErrNameIDRequired,
		pricingdomain.ErrModelExists,
		pricingdomain.ErrPriceNameRequired,
		pricingdomain.ErrPriceExists,
		pricingdomain.ErrPriceAndIDRequired:
		return true
	default:
		return false
	}
}
