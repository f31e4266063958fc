package handler

import (
	"errors"
	"net/http"
	"strconv"

	"Backoffice/pkg/log"
	"Backoffice/pkg/response"
	"Backoffice/service"

	"go.uber.org/zap"
)

// bizError 把服务层的哨兵错误转换为带状态码的 BizError
func bizError(err error) error {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return response.ErrUnauthorized(err.Error())
	case errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrPermissionNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrVariantNotFound),
		errors.Is(err, service.ErrWishlistItemNotFound):
		return response.ErrNotFound(err.Error())
	case errors.Is(err, service.ErrPhoneConflict),
		errors.Is(err, service.ErrWishlistConflict):
		return response.ErrConflict(err.Error())
	}
	log.L.Error("unhandled service error", zap.Error(err))
	return response.ErrInternal(err)
}

func parseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusBadRequest, "invalid id: "+raw)
	}
	return id, nil
}
