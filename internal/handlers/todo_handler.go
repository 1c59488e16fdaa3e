package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CodyT21/todos/internal/models"
	"github.com/CodyT21/todos/internal/services"
)

// TodoHandler はTodo関連のハンドラーを管理します。
type TodoHandler struct {
	store *services.ListStore
}

// NewTodoHandler は新しいTodoHandlerを作成します。
func NewTodoHandler(store *services.ListStore) *TodoHandler {
	return &TodoHandler{store: store}
}

// CreateTodoHandler はリストに新しいTodoを追加します。
func (h *TodoHandler) CreateTodoHandler(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	id := paramIndex(c, "id")
	list, ok := loadList(c, h.store, session, id)
	if !ok {
		return
	}
	var req models.TodoRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Printf("Failed to bind todo form: %v", err)
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	if err := h.store.AddTodo(session, id, req.Todo); err != nil {
		session.Error = msgTodoNameLength
		p := listPage(id, list)
		p.TodoName = req.Todo
		render(c, session, http.StatusUnprocessableEntity, "list", p)
		return
	}
	session.Success = msgTodoAdded
	redirect(c, listPath(id))
}

// UpdateTodoHandler はTodoの完了状態を更新します。
func (h *TodoHandler) UpdateTodoHandler(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	id := paramIndex(c, "id")
	if _, ok := loadList(c, h.store, session, id); !ok {
		return
	}
	var req models.TodoStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Printf("Failed to bind todo status form: %v", err)
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	if err := h.store.SetTodoCompleted(session, id, paramIndex(c, "todo_id"), req.IsCompleted()); err != nil {
		session.Error = msgTodoNotFound
		redirect(c, listPath(id))
		return
	}
	session.Success = msgTodoUpdated
	redirect(c, listPath(id))
}

// DeleteTodoHandler はTodoを削除します。
func (h *TodoHandler) DeleteTodoHandler(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	id := paramIndex(c, "id")
	if _, ok := loadList(c, h.store, session, id); !ok {
		return
	}

	if err := h.store.DeleteTodo(session, id, paramIndex(c, "todo_id")); err != nil {
		session.Error = msgTodoNotFound
		redirect(c, listPath(id))
		return
	}
	if isXHR(c) {
		c.Status(http.StatusNoContent)
		return
	}
	session.Success = msgTodoDeleted
	redirect(c, listPath(id))
}

// CompleteAllHandler はリスト内のすべてのTodoを完了にします。
func (h *TodoHandler) CompleteAllHandler(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	id := paramIndex(c, "id")
	if err := h.store.CompleteAll(session, id); err != nil {
		session.Error = msgListNotFound
		redirect(c, "/lists")
		return
	}
	session.Success = msgAllCompleted
	redirect(c, listPath(id))
}
