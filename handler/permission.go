package handler

import (
	"Backoffice/config"
	"Backoffice/middleware"
	"Backoffice/models"
	"Backoffice/pkg/context"
	"Backoffice/pkg/response"
	"Backoffice/service"

	"github.com/gin-gonic/gin"
)

type Permission struct {
	Config            *config.Config
	PermissionService service.IPermissionService
}

func (h *Permission) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	privileged := middleware.RequireRoles(models.RoleAdmin, models.RoleSuperAdmin)

	g := r.Group("/permissions", authorize)
	g.GET("", privileged, context.Wrap(h.List))
	g.GET("/by-resource", privileged, context.Wrap(h.ByResource))
	g.GET("/my-permissions", context.Wrap(h.Mine))
	g.GET("/:id", privileged, context.Wrap(h.Get))
}

func (h *Permission) List(c *gin.Context) error {
	resp, err := h.PermissionService.ListPermissions(c.Request.Context())
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (h *Permission) ByResource(c *gin.Context) error {
	resp, err := h.PermissionService.ListPermissionsByResource(c.Request.Context())
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

// Mine 只要求登录, 不校验角色
func (h *Permission) Mine(c *gin.Context) error {
	resp, err := h.PermissionService.GetEffectivePermissions(c.Request.Context(), context.GetActorID(c))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (h *Permission) Get(c *gin.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	resp, err := h.PermissionService.GetPermissionById(c.Request.Context(), id)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}
