package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/CodyT21/todos/internal/config"
	"github.com/CodyT21/todos/internal/models"
	"github.com/CodyT21/todos/internal/repositories"
	"github.com/CodyT21/todos/internal/routes"
	"github.com/CodyT21/todos/internal/services"
)

const (
	TestSecret     = "test-secret"
	TestCookieName = "todos_session"
	TestSessionTTL = time.Hour
)

// TestConfig はテスト用の設定を返します。
func TestConfig() *config.Config {
	return &config.Config{
		Port:           "8080",
		GinMode:        gin.TestMode,
		SessionSecret:  TestSecret,
		SessionTTL:     TestSessionTTL,
		CookieName:     TestCookieName,
		AllowedOrigins: []string{"http://localhost:3000"},
	}
}

// SetupTestRouter はテスト用のGinルーターとセッションリポジトリをセットアップします。
func SetupTestRouter(t *testing.T) (*gin.Engine, *repositories.SessionRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sessionRepo := repositories.NewSessionRepository(TestSessionTTL)
	jwtService := services.NewJWTService(TestSecret, TestConfig().TokenTTL())
	return routes.SetupRouter(TestConfig(), sessionRepo, jwtService), sessionRepo
}

// SetupTestRouterWithClock はセッションとトークンが同じ時計を使うルーターをセットアップします。
// 返されたClientはその時計でトークンを検証します。
func SetupTestRouterWithClock(t *testing.T, now func() time.Time) (*Client, *repositories.SessionRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sessionRepo := repositories.NewSessionRepository(TestSessionTTL).WithClock(now)
	jwtService := services.NewJWTService(TestSecret, TestConfig().TokenTTL()).WithClock(now)
	router := routes.SetupRouter(TestConfig(), sessionRepo, jwtService)
	client := NewClient(t, router, sessionRepo)
	client.jwtService = jwtService
	return client, sessionRepo
}

// Client はセッションCookieを引き継いでリクエストを送るテスト用クライアントです。
type Client struct {
	t           *testing.T
	router      *gin.Engine
	sessionRepo *repositories.SessionRepository
	jwtService  *services.JWTService
	cookies     map[string]*http.Cookie
}

// NewClient は新しいClientを作成します。
func NewClient(t *testing.T, router *gin.Engine, sessionRepo *repositories.SessionRepository) *Client {
	return &Client{
		t:           t,
		router:      router,
		sessionRepo: sessionRepo,
		jwtService:  services.NewJWTService(TestSecret, TestConfig().TokenTTL()),
		cookies:     map[string]*http.Cookie{},
	}
}

// Do はリクエストを送り、Set-Cookie を保存します。
func (c *Client) Do(req *http.Request) *httptest.ResponseRecorder {
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	for _, cookie := range w.Result().Cookies() {
		c.cookies[cookie.Name] = cookie
	}
	return w
}

// SessionCookie は保存しているセッションCookieを返します。未設定なら nil です。
func (c *Client) SessionCookie() *http.Cookie {
	return c.cookies[TestCookieName]
}

// Get はGETリクエストを送ります。
func (c *Client) Get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	return c.Do(req)
}

// PostForm はフォームをPOSTします。
func (c *Client) PostForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.Do(req)
}

// Session はCookieのトークンからサーバー側のセッションを取得します。
func (c *Client) Session() *models.Session {
	c.t.Helper()
	cookie, ok := c.cookies[TestCookieName]
	require.True(c.t, ok, "session cookie not set")
	claims, err := c.jwtService.ValidateToken(cookie.Value)
	require.NoError(c.t, err)
	session, err := c.sessionRepo.FindByID(claims.SessionID)
	require.NoError(c.t, err)
	return session
}

// CreateTestList はリストを作成し、成功したことを確認します。
func (c *Client) CreateTestList(name string) {
	c.t.Helper()
	w := c.PostForm("/lists", url.Values{"list_name": {name}})
	require.Equal(c.t, http.StatusSeeOther, w.Code, "リスト作成に失敗しました: %s", w.Body.String())
}

// AddTestTodo はTodoを追加し、成功したことを確認します。
func (c *Client) AddTestTodo(listID int, name string) {
	c.t.Helper()
	w := c.PostForm("/lists/"+strconv.Itoa(listID)+"/todos", url.Values{"todo": {name}})
	require.Equal(c.t, http.StatusSeeOther, w.Code, "Todo作成に失敗しました: %s", w.Body.String())
}
