package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CodyT21/todos/internal/models"
	"github.com/CodyT21/todos/internal/services"
)

// ListHandler はリスト関連のハンドラーを管理します。
type ListHandler struct {
	store *services.ListStore
}

// NewListHandler は新しいListHandlerを作成します。
func NewListHandler(store *services.ListStore) *ListHandler {
	return &ListHandler{store: store}
}

// IndexHandler はリスト一覧へリダイレクトします。
func (h *ListHandler) IndexHandler(c *gin.Context) {
	c.Redirect(http.StatusFound, "/lists")
}

// GetListsHandler はすべてのリストを表示します。
func (h *ListHandler) GetListsHandler(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	lists := models.SortListsForDisplay(h.store.ListAllLists(session))
	render(c, session, http.StatusOK, "lists", page{Lists: lists})
}

// NewListFormHandler はリスト作成フォームを表示します。
func (h *ListHandler) NewListFormHandler(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	render(c, session, http.StatusOK, "new_list", page{})
}

// CreateListHandler は新しいリストを作成します。
func (h *ListHandler) CreateListHandler(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	var req models.ListRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Printf("Failed to bind list form: %v", err)
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	if _, err := h.store.CreateList(session, req.ListName); err != nil {
		session.Error = listNameMessage(err)
		render(c, session, http.StatusUnprocessableEntity, "new_list", page{ListName: req.ListName})
		return
	}
	session.Success = msgListCreated
	redirect(c, "/lists")
}

// GetListHandler は1つのリストとそのTodoを表示します。
func (h *ListHandler) GetListHandler(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	id := paramIndex(c, "id")
	list, ok := loadList(c, h.store, session, id)
	if !ok {
		return
	}
	render(c, session, http.StatusOK, "list", listPage(id, list))
}

// EditListHandler はリスト編集フォームを表示します。
func (h *ListHandler) EditListHandler(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	id := paramIndex(c, "id")
	list, ok := loadList(c, h.store, session, id)
	if !ok {
		return
	}
	render(c, session, http.StatusOK, "edit_list", page{List: list, ListID: id, ListName: list.Name})
}

// UpdateListHandler はリスト名を変更します。
func (h *ListHandler) UpdateListHandler(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	id := paramIndex(c, "id")
	list, ok := loadList(c, h.store, session, id)
	if !ok {
		return
	}
	var req models.ListRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Printf("Failed to bind list form: %v", err)
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	if err := h.store.RenameList(session, id, req.ListName); err != nil {
		session.Error = listNameMessage(err)
		render(c, session, http.StatusUnprocessableEntity, "edit_list", page{List: list, ListID: id, ListName: req.ListName})
		return
	}
	session.Success = msgListUpdated
	redirect(c, listPath(id))
}

// DeleteListHandler はリストを削除します。
func (h *ListHandler) DeleteListHandler(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	if err := h.store.DeleteList(session, paramIndex(c, "id")); err != nil {
		session.Error = msgListNotFound
	} else {
		session.Success = msgListDeleted
	}
	if isXHR(c) {
		c.String(http.StatusOK, "/lists")
		return
	}
	redirect(c, "/lists")
}

// loadList はリストを取得します。見つからなければエラーを設定して一覧へリダイレクトします。
func loadList(c *gin.Context, store *services.ListStore, session *models.Session, id int) (*models.List, bool) {
	list, err := store.LoadList(session, id)
	if err != nil {
		session.Error = msgListNotFound
		redirect(c, "/lists")
		return nil, false
	}
	return list, true
}

func listPage(id int, list *models.List) page {
	return page{List: list, ListID: id, Todos: models.SortTodosForDisplay(list.Todos)}
}

func listNameMessage(err error) string {
	if errors.Is(err, services.ErrDuplicateName) {
		return msgDuplicateName
	}
	return msgListNameLength
}
