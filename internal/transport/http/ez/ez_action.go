// Package ez registers JSON actions in one call: bind, validate, run, reply.
package ez

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	mdw "lexcase/internal/transport/http/middleware"
	resp "lexcase/internal/transport/http/response"
	"lexcase/internal/validation"
)

type EZ struct {
	g *gin.RouterGroup
	v *validation.Validator
}

func New(g *gin.RouterGroup, v *validation.Validator) EZ {
	if v == nil {
		v = validation.New()
	}
	return EZ{g: g, v: v}
}

// Action is one endpoint: I is the JSON body, O the data of the success envelope.
type Action[I any, O any] struct {
	// Method defaults to POST and Status to 200.
	Method string
	Path   string
	Status int
	// Rules validates the bound body; nil skips validation.
	Rules *validation.RuleSet
	// Guards run before the body is read (authentication, roles).
	Guards  []gin.HandlerFunc
	Handler func(c *gin.Context, in *I) (O, error)
}

func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	status := a.Status
	if status == 0 {
		status = http.StatusOK
	}

	h := func(c *gin.Context) {
		var in I
		if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
			if resp.IsBodyTooLarge(err) {
				resp.Abort(c, http.StatusRequestEntityTooLarge, mdw.MsgBodyTooLarge)
				return
			}
			resp.Fail(c, validation.DecodeError(err, a.Rules))
			return
		}
		if a.Rules != nil {
			if err := e.v.Struct(&in, a.Rules); err != nil {
				resp.Fail(c, err)
				return
			}
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			resp.Fail(c, err)
			return
		}
		resp.OK(c, status, out)
	}

	chain := append(append([]gin.HandlerFunc{}, a.Guards...), h)
	method := strings.ToUpper(a.Method)
	if method == "" {
		method = http.MethodPost
	}
	e.g.Handle(method, a.Path, chain...)
}
