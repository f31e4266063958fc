package context

import (
	stdctx "context"
	"errors"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	CtxPrincipal = "principal"
)

var ErrNoIdentity = errors.New("missing or invalid identity claim")

type principalKey struct{}

// Principal 当前调用方, 由认证中间件注入
type Principal struct {
	Subject string
	Roles   []string
}

// UserID 解析 name identifier, 无法解析时 ok 为 false
func (p Principal) UserID() (uint64, bool) {
	if p.Subject == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(p.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func (p Principal) HasRole(roles ...string) bool {
	for _, r := range roles {
		if slices.Contains(p.Roles, r) {
			return true
		}
	}
	return false
}

func WithPrincipal(ctx stdctx.Context, p Principal) stdctx.Context {
	return stdctx.WithValue(ctx, principalKey{}, p)
}

func PrincipalFrom(ctx stdctx.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// SetPrincipal 同时写入 gin 上下文和 request context
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(CtxPrincipal, p)
	c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), p))
}

func GetPrincipal(c *gin.Context) (Principal, bool) {
	if v, ok := c.Get(CtxPrincipal); ok {
		if p, ok := v.(Principal); ok {
			return p, true
		}
	}
	return PrincipalFrom(c.Request.Context())
}

// GetUserID 需要明确身份的接口使用
func GetUserID(c *gin.Context) (uint64, error) {
	p, ok := GetPrincipal(c)
	if !ok {
		return 0, ErrNoIdentity
	}
	id, ok := p.UserID()
	if !ok {
		return 0, ErrNoIdentity
	}
	return id, nil
}

// GetActorID 审计归属使用, 没有身份时视为匿名 0
func GetActorID(c *gin.Context) uint64 {
	id, err := GetUserID(c)
	if err != nil {
		return 0
	}
	return id
}
