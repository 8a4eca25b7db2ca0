package controller

import (
	"github.com/michaelekornrud/BouvetRadar/internal/service/cpv"
	"github.com/michaelekornrud/BouvetRadar/internal/service/doffin"
	"github.com/michaelekornrud/BouvetRadar/internal/service/ssb"
)

type Controller struct {
	cpv    *cpv.Service
	nuts   *ssb.Service
	styrk  *ssb.Service
	doffin *doffin.Service
}

func NewController(cpvSvc *cpv.Service, nuts, styrk *ssb.Service, doffinSvc *doffin.Service) *Controller {
	return &Controller{
		cpv:    cpvSvc,
		nuts:   nuts,
		styrk:  styrk,
		doffin: doffinSvc,
	}
}
