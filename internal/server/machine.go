package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	machinedomain "github.com/smallbiznis/fleetrate/internal/machine/domain"
)

func (s *Server) AssignMachinePricing(c *gin.Context) {
	machineID := strings.TrimSpace(c.Param("machineid"))
	modelID := strings.TrimSpace(c.Param("pmid"))

	// Resolve the model first so assigning an unknown model is a not-found,
	// even though the registry itself does not verify the reference.
	model, err := s.catalogSvc.GetByID(c.Request.Context(), modelID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	id, err := s.machineSvc.SetPrice(c.Request.Context(), machineID, model.ID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if id == "" {
		AbortWithError(c, machinedomain.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (s *Server) ClearMachinePricing(c *gin.Context) {
	machineID := strings.TrimSpace(c.Param("machineid"))

	id, err := s.machineSvc.RemovePrice(c.Request.Context(), machineID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if id == "" {
		AbortWithError(c, machinedomain.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (s *Server) GetMachinePricing(c *gin.Context) {
	machineID := strings.TrimSpace(c.Param("machineid"))

	resp, err := s.resolutionSvc.EffectivePricing(c.Request.Context(), machineID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func isMachineValidationError(err error) bool {
	switch err {
	case machinedomain.ErrIDRequired,
		machinedomain.ErrIDAndModelRequired:
		return true
	default:
		return false
	}
}
