package handler

import (
	"net/http"

	"Backoffice/config"
	"Backoffice/middleware"
	"Backoffice/pkg/context"
	"Backoffice/pkg/response"
	"Backoffice/service"
	"Backoffice/types"

	"github.com/gin-gonic/gin"
)

type Wishlist struct {
	Config          *config.Config
	WishlistService service.IWishlistService
}

func (h *Wishlist) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/wishlist", authorize)
	g.GET("", context.Wrap(h.List))
	g.POST("", context.Wrap(h.Add))
	g.GET("/check", context.Wrap(h.Check))
	g.DELETE("/:id", context.Wrap(h.Remove))
}

func (h *Wishlist) List(c *gin.Context) error {
	resp, err := h.WishlistService.ListForUser(c.Request.Context(), context.GetActorID(c))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (h *Wishlist) Add(c *gin.Context) error {
	var req types.AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request: "+err.Error())
	}

	resp, err := h.WishlistService.AddItem(c.Request.Context(), context.GetActorID(c), &req)
	if err != nil {
		return bizError(err)
	}
	response.Created(c, resp)
	return nil
}

func (h *Wishlist) Remove(c *gin.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	if err := h.WishlistService.RemoveItem(c.Request.Context(), context.GetActorID(c), id); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Wishlist) Check(c *gin.Context) error {
	var req types.CheckWishlistItemRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request: "+err.Error())
	}
	// productVariantId= 绑定为 0, 按无规格处理
	if req.ProductVariantID != nil && *req.ProductVariantID == 0 {
		req.ProductVariantID = nil
	}

	exists, err := h.WishlistService.CheckItem(c.Request.Context(), context.GetActorID(c), req.ProductID, req.ProductVariantID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, types.CheckWishlistItemResponse{Exists: exists})
	return nil
}
