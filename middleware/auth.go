package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vnkhanh/product-management/database"
	"github.com/vnkhanh/product-management/logger"
	"github.com/vnkhanh/product-management/models"
	"github.com/vnkhanh/product-management/utils"
)

const (
	// TokenCookie chứa JWT đăng nhập trang quản trị
	TokenCookie = "token"

	accountKey = "account"
	roleKey    = "role"
)

// AccountLoader đọc tài khoản và nhóm quyền để gắn vào request
type AccountLoader interface {
	AccountByID(ctx context.Context, id string) (*models.Account, error)
	RoleByID(ctx context.Context, id string) (*models.Role, error)
}

// RequireAuth kiểm tra cookie token, nạp account + role vào context.
// Không hợp lệ thì xoá cookie và chuyển về trang đăng nhập.
func RequireAuth(secret, loginPath string, accounts AccountLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromGin(c)

		tokenString, err := c.Cookie(TokenCookie)
		if err != nil || tokenString == "" {
			redirectToLogin(c, loginPath)
			return
		}

		claims, err := utils.VerifyToken(secret, tokenString)
		if err != nil {
			log.Debug("invalid admin token", zap.Error(err))
			redirectToLogin(c, loginPath)
			return
		}

		account, err := accounts.AccountByID(c.Request.Context(), claims.AccountID)
		if err != nil {
			if !errors.Is(err, database.ErrNotFound) {
				log.Error("load account", zap.Error(err))
			}
			redirectToLogin(c, loginPath)
			return
		}

		// Tài khoản bị khoá thì token cũ cũng mất hiệu lực
		if !account.Active() {
			redirectToLogin(c, loginPath)
			return
		}

		role, err := accounts.RoleByID(c.Request.Context(), account.RoleID)
		if err != nil && !errors.Is(err, database.ErrNotFound) {
			log.Error("load role", zap.Error(err))
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(accountKey, account)
		c.Set(roleKey, role)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context, loginPath string) {
	ClearToken(c)
	c.Redirect(http.StatusFound, loginPath)
	c.Abort()
}

// ClearToken xoá cookie đăng nhập
func ClearToken(c *gin.Context) {
	c.SetCookie(TokenCookie, "", -1, "/", "", false, true)
}

// CurrentAccount trả về tài khoản đã đăng nhập, nil nếu chưa qua RequireAuth
func CurrentAccount(c *gin.Context) *models.Account {
	if v, ok := c.Get(accountKey); ok {
		if account, ok := v.(*models.Account); ok {
			return account
		}
	}
	return nil
}

// CurrentRole có thể nil khi role của tài khoản đã bị xoá
func CurrentRole(c *gin.Context) *models.Role {
	if v, ok := c.Get(roleKey); ok {
		if role, ok := v.(*models.Role); ok {
			return role
		}
	}
	return nil
}
