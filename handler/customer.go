package handler

import (
	"net/http"

	"Backoffice/config"
	"Backoffice/middleware"
	"Backoffice/models"
	"Backoffice/pkg/context"
	"Backoffice/pkg/response"
	"Backoffice/service"
	"Backoffice/types"

	"github.com/gin-gonic/gin"
)

type Customer struct {
	Config          *config.Config
	CustomerService service.ICustomerService
}

func (h *Customer) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/customer", authorize, middleware.RequireRoles(models.RoleAdmin))
	g.GET("", context.Wrap(h.List))
	g.GET("/lookup/:phone", context.Wrap(h.Lookup))
	g.POST("/register", context.Wrap(h.Register))
	g.GET("/:id", context.Wrap(h.Get))
	g.PUT("/:id", context.Wrap(h.Update))
}

// Lookup 客户表优先, 否则从历史订单合成
func (h *Customer) Lookup(c *gin.Context) error {
	resp, err := h.CustomerService.LookupByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (h *Customer) Register(c *gin.Context) error {
	var req types.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request: "+err.Error())
	}

	resp, err := h.CustomerService.Register(c.Request.Context(), context.GetActorID(c), &req)
	if err != nil {
		return bizError(err)
	}
	response.Created(c, resp)
	return nil
}

func (h *Customer) Get(c *gin.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	resp, err := h.CustomerService.GetById(c.Request.Context(), id)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (h *Customer) List(c *gin.Context) error {
	resp, err := h.CustomerService.List(c.Request.Context())
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (h *Customer) Update(c *gin.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	var req types.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request: "+err.Error())
	}

	resp, err := h.CustomerService.Update(c.Request.Context(), context.GetActorID(c), id, &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}
