package usecase

import (
	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	"github.com/hhtransportationtx/dispatch/services/dispatch"
)

// DispatchUC implements the dispatch use case interface
type DispatchUC struct {
	cfg          *models.Config
	dispatchRepo dispatch.DispatchRepo
	dispatchGW   dispatch.DispatchGW
}

// NewDispatchUC creates a new dispatch use case
func NewDispatchUC(
	cfg *models.Config,
	dispatchRepo dispatch.DispatchRepo,
	dispatchGW dispatch.DispatchGW,
) *DispatchUC {
	return &DispatchUC{
		cfg:          cfg,
		dispatchRepo: dispatchRepo,
		dispatchGW:   dispatchGW,
	}
}
