package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CodyT21/todos/internal/config"
	"github.com/CodyT21/todos/internal/handlers"
	"github.com/CodyT21/todos/internal/models"
	"github.com/CodyT21/todos/internal/repositories"
	"github.com/CodyT21/todos/internal/services"
)

// SessionMiddleware はCookieのトークンからセッションを復元し、コンテキストに設定するミドルウェアです。
// トークンがない・不正・期限切れの場合は新しい空のセッションを発行します。
// 有効期間の半分を過ぎたトークンは再発行するので、期限はリポジトリのアイドル時間だけで決まります。
func SessionMiddleware(cfg *config.Config, sessionRepo *repositories.SessionRepository, jwtService *services.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, claims := restoreSession(c, cfg.CookieName, sessionRepo, jwtService)
		switch {
		case session == nil:
			id, created := sessionRepo.Create()
			if err := issueSessionCookie(c, cfg, jwtService, id); err != nil {
				log.Printf("Failed to issue session token: %v", err)
				sessionRepo.Delete(id)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
				return
			}
			session = created
		case jwtService.ShouldRefresh(claims):
			// 失敗しても現在のトークンはまだ有効なので続行
			if err := issueSessionCookie(c, cfg, jwtService, claims.SessionID); err != nil {
				log.Printf("Failed to refresh session token: %v", err)
			}
		}

		c.Set(handlers.SessionKey, session)
		c.Next()
	}
}

func restoreSession(c *gin.Context, cookieName string, sessionRepo *repositories.SessionRepository, jwtService *services.JWTService) (*models.Session, *services.SessionClaims) {
	token, err := c.Cookie(cookieName)
	if err != nil || token == "" {
		return nil, nil
	}
	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		return nil, nil
	}
	session, err := sessionRepo.FindByID(claims.SessionID)
	if err != nil {
		return nil, nil
	}
	return session, claims
}

func issueSessionCookie(c *gin.Context, cfg *config.Config, jwtService *services.JWTService, sessionID string) error {
	token, err := jwtService.GenerateToken(sessionID)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, token, int(cfg.TokenTTL().Seconds()), "/", "", cfg.CookieSecure, true)
	return nil
}
