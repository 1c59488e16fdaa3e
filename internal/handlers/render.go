package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/CodyT21/todos/internal/models"
)

// SessionKey はgin.Contextにセッションを格納するキーです。
const SessionKey = "session"

// フラッシュメッセージ
const (
	msgListCreated    = "The list has been created."
	msgListUpdated    = "The list has been updated."
	msgListDeleted    = "The list has been deleted."
	msgDuplicateName  = "That list name already exists."
	msgListNameLength = "List name must be between 1 and 100 characters."
	msgListNotFound   = "The specified list was not found."
	msgTodoAdded      = "The todo was added."
	msgTodoUpdated    = "The todo has been updated."
	msgTodoDeleted    = "The todo has been deleted."
	msgTodoNameLength = "Todo must be between 1 and 100 characters."
	msgTodoNotFound   = "The specified todo was not found."
	msgAllCompleted   = "All todos have been completed."
)

// page はテンプレートに渡す値です。使わないフィールドはゼロ値のままにします。
type page struct {
	Error    string
	Success  string
	Lists    []models.IndexedList
	List     *models.List
	ListID   int
	Todos    []models.IndexedTodo
	ListName string
	TodoName string
}

// render はフラッシュメッセージを取り出して消去し、テンプレートを描画します。
func render(c *gin.Context, session *models.Session, status int, name string, p page) {
	p.Error, p.Success = session.TakeFlash()
	c.HTML(status, name, p)
}

// redirect はGETでは302、POSTの後は303でリダイレクトします。
func redirect(c *gin.Context, location string) {
	status := http.StatusSeeOther
	if c.Request.Method == http.MethodGet {
		status = http.StatusFound
	}
	c.Redirect(status, location)
}

// currentSession はセッションミドルウェアが設定したセッションを取得します。
func currentSession(c *gin.Context) (*models.Session, bool) {
	val, exists := c.Get(SessionKey)
	if !exists {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session not found in context"})
		return nil, false
	}
	session, ok := val.(*models.Session)
	if !ok || session == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Invalid session type in context"})
		return nil, false
	}
	return session, true
}

// paramIndex はパスパラメータを位置として解釈します。数値でない場合は -1 を返し、範囲外として扱われます。
func paramIndex(c *gin.Context, key string) int {
	idx, err := strconv.Atoi(c.Param(key))
	if err != nil {
		return -1
	}
	return idx
}

func listPath(index int) string {
	return "/lists/" + strconv.Itoa(index)
}

func isXHR(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}
