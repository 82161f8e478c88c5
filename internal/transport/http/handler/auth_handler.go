package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexcase/internal/service"
	"lexcase/internal/transport/http/ez"
	"lexcase/internal/validation"
)

type AuthHandler struct {
	svc *service.AuthService
	v   *validation.Validator
}

func NewAuthHandler(svc *service.AuthService, v *validation.Validator) *AuthHandler {
	return &AuthHandler{svc: svc, v: v}
}

func (h *AuthHandler) Priority() int { return 10 }

// MountAPI registers POST /auth/signup and POST /auth/login.
func (h *AuthHandler) MountAPI(api *gin.RouterGroup) {
	e := ez.New(api.Group("/auth"), h.v)

	ez.RegisterAction(e, ez.Action[service.SignupInput, *service.AuthResult]{
		Method: http.MethodPost,
		Path:   "/signup",
		Status: http.StatusCreated,
		Rules:  validation.Signup,
		Handler: func(c *gin.Context, in *service.SignupInput) (*service.AuthResult, error) {
			return h.svc.Signup(c.Request.Context(), *in)
		},
	})

	ez.RegisterAction(e, ez.Action[service.LoginInput, *service.AuthResult]{
		Method: http.MethodPost,
		Path:   "/login",
		Rules:  validation.Login,
		Handler: func(c *gin.Context, in *service.LoginInput) (*service.AuthResult, error) {
			return h.svc.Login(c.Request.Context(), *in)
		},
	})
}
