package handlers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTodo(t *testing.T) {
	t.Run("adds an incomplete todo", func(t *testing.T) {
		client := newClient(t)
		client.CreateTestList("Groceries")

		w := client.PostForm("/lists/0/todos", url.Values{"todo": {" Milk "}})

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/lists/0", w.Header().Get("Location"))
		session := client.Session()
		todos := session.Lists[0].Todos
		require.Len(t, todos, 1)
		assert.Equal(t, "Milk", todos[0].Name)
		assert.False(t, todos[0].Completed)
		assert.Equal(t, "The todo was added.", session.Success)
	})

	t.Run("invalid name re-renders the list", func(t *testing.T) {
		client := newClient(t)
		client.CreateTestList("Groceries")

		w := client.PostForm("/lists/0/todos", url.Values{"todo": {strings.Repeat("x", 101)}})

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Todo must be between 1 and 100 characters.")
		assert.Empty(t, client.Session().Lists[0].Todos)
	})

	t.Run("json body binds todo", func(t *testing.T) {
		client := newClient(t)
		client.CreateTestList("Groceries")

		req, _ := http.NewRequest(http.MethodPost, "/lists/0/todos", strings.NewReader(`{"todo": "Milk"}`))
		req.Header.Set("Content-Type", "application/json")
		w := client.Do(req)

		require.Equal(t, http.StatusSeeOther, w.Code)
		todos := client.Session().Lists[0].Todos
		require.Len(t, todos, 1)
		assert.Equal(t, "Milk", todos[0].Name)
	})

	t.Run("missing list", func(t *testing.T) {
		client := newClient(t)

		w := client.PostForm("/lists/0/todos", url.Values{"todo": {"Milk"}})

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/lists", w.Header().Get("Location"))
		assert.Equal(t, "The specified list was not found.", client.Session().Error)
	})
}

func TestUpdateTodo(t *testing.T) {
	client := newClient(t)
	client.CreateTestList("Groceries")
	client.AddTestTodo(0, "Milk")

	// --- Test Case 1: "true" で完了になること ---
	w := client.PostForm("/lists/0/todos/0", url.Values{"completed": {"true"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/lists/0", w.Header().Get("Location"))
	session := client.Session()
	assert.True(t, session.Lists[0].Todos[0].Completed)
	assert.Equal(t, "The todo has been updated.", session.Success)

	// --- Test Case 2: "true" 以外は未完了になること ---
	w = client.PostForm("/lists/0/todos/0", url.Values{"completed": {"yes"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.False(t, client.Session().Lists[0].Todos[0].Completed)

	// --- Test Case 3: 範囲外のTodo ---
	w = client.PostForm("/lists/0/todos/3", url.Values{"completed": {"true"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/lists/0", w.Header().Get("Location"))
	assert.Equal(t, "The specified todo was not found.", client.Session().Error)
}

func TestDeleteTodo(t *testing.T) {
	t.Run("form post", func(t *testing.T) {
		client := newClient(t)
		client.CreateTestList("Groceries")
		client.AddTestTodo(0, "Milk")
		client.AddTestTodo(0, "Eggs")

		w := client.PostForm("/lists/0/todos/0/destroy", nil)

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/lists/0", w.Header().Get("Location"))
		session := client.Session()
		require.Len(t, session.Lists[0].Todos, 1)
		assert.Equal(t, "Eggs", session.Lists[0].Todos[0].Name)
		assert.Equal(t, "The todo has been deleted.", session.Success)
	})

	t.Run("xhr", func(t *testing.T) {
		client := newClient(t)
		client.CreateTestList("Groceries")
		client.AddTestTodo(0, "Milk")

		req, _ := http.NewRequest(http.MethodPost, "/lists/0/todos/0/destroy", nil)
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
		w := client.Do(req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, client.Session().Lists[0].Todos)
	})

	t.Run("out of range todo", func(t *testing.T) {
		client := newClient(t)
		client.CreateTestList("Groceries")

		w := client.PostForm("/lists/0/todos/0/destroy", nil)

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "The specified todo was not found.", client.Session().Error)
	})

	t.Run("missing list", func(t *testing.T) {
		client := newClient(t)

		w := client.PostForm("/lists/2/todos/0/destroy", nil)

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/lists", w.Header().Get("Location"))
	})
}

func TestCompleteAll(t *testing.T) {
	client := newClient(t)
	client.CreateTestList("Groceries")
	client.AddTestTodo(0, "Milk")
	client.AddTestTodo(0, "Eggs")

	w := client.PostForm("/lists/0/complete_all", nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/lists/0", w.Header().Get("Location"))
	session := client.Session()
	assert.True(t, session.Lists[0].IsCompleted())
	assert.Equal(t, "All todos have been completed.", session.Success)

	w = client.PostForm("/lists/7/complete_all", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/lists", w.Header().Get("Location"))
}
