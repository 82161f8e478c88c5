package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexcase/internal/domain"
	"lexcase/internal/service"
	"lexcase/internal/transport/http/ez"
	mdw "lexcase/internal/transport/http/middleware"
	"lexcase/internal/validation"
)

// CaseRoles may create cases.
var CaseRoles = []domain.Role{domain.RoleLawyer, domain.RoleAdmin}

type CaseHandler struct {
	svc          *service.CaseService
	v            *validation.Validator
	authenticate gin.HandlerFunc
}

func NewCaseHandler(svc *service.CaseService, v *validation.Validator, authenticate gin.HandlerFunc) *CaseHandler {
	return &CaseHandler{svc: svc, v: v, authenticate: authenticate}
}

func (h *CaseHandler) MountAPI(api *gin.RouterGroup) {
	e := ez.New(api.Group("/cases"), h.v)

	// authentication and role checks run before the body is validated
	ez.RegisterAction(e, ez.Action[service.CreateCaseInput, *domain.Case]{
		Method: http.MethodPost,
		Path:   "",
		Status: http.StatusCreated,
		Rules:  validation.CreateCase,
		Guards: []gin.HandlerFunc{h.authenticate, mdw.Authorize(CaseRoles...)},
		Handler: func(c *gin.Context, in *service.CreateCaseInput) (*domain.Case, error) {
			caller, _ := mdw.IdentityFrom(c)
			return h.svc.Create(c.Request.Context(), caller, *in)
		},
	})
}
