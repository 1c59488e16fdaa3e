package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/CodyT21/todos/internal/models"
)

// 名前の長さの許容範囲（前後の空白を除いた文字数）
const (
	MinNameLength = 1
	MaxNameLength = 100
)

var (
	ErrDuplicateName = errors.New("duplicate list name")
	ErrInvalidLength = errors.New("invalid name length")
	ErrNotFound      = errors.New("not found")

	// ErrTodoNotFound はリストは存在するがTodoの位置が範囲外の場合のエラーです。
	ErrTodoNotFound = fmt.Errorf("todo %w", ErrNotFound)
)

// ListStore はセッション内のリストとTodoを操作します。
// 状態は持たず、操作対象のセッションを毎回引数で受け取ります。
type ListStore struct{}

// NewListStore は新しいListStoreを作成します。
func NewListStore() *ListStore {
	return &ListStore{}
}

// ValidateListName はリスト名を検証します。重複チェックを長さチェックより先に行います。
func ValidateListName(name string, existing []*models.List) error {
	for _, list := range existing {
		if list.Name == name {
			return ErrDuplicateName
		}
	}
	return validateLength(name)
}

// ValidateTodoName はTodo名の長さを検証します。
func ValidateTodoName(name string) error {
	return validateLength(name)
}

func validateLength(name string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n < MinNameLength || n > MaxNameLength {
		return ErrInvalidLength
	}
	return nil
}

// ListAllLists はセッション内のすべてのリストを保存順で返します。
func (s *ListStore) ListAllLists(session *models.Session) []*models.List {
	return session.Lists
}

// CreateList は新しい空のリストを末尾に追加します。
func (s *ListStore) CreateList(session *models.Session, name string) (*models.List, error) {
	name = strings.TrimSpace(name)
	if err := ValidateListName(name, session.Lists); err != nil {
		return nil, err
	}
	list := &models.List{Name: name, Todos: []models.Todo{}}
	session.Lists = append(session.Lists, list)
	return list, nil
}

// LoadList は指定位置のリストを返します。範囲外なら ErrNotFound です。
func (s *ListStore) LoadList(session *models.Session, index int) (*models.List, error) {
	if index < 0 || index >= len(session.Lists) {
		return nil, ErrNotFound
	}
	return session.Lists[index], nil
}

// RenameList はリスト名を変更します。重複チェックでは対象のリスト自身を除外します。
func (s *ListStore) RenameList(session *models.Session, index int, newName string) error {
	list, err := s.LoadList(session, index)
	if err != nil {
		return err
	}
	newName = strings.TrimSpace(newName)
	others := make([]*models.List, 0, len(session.Lists))
	for i, l := range session.Lists {
		if i != index {
			others = append(others, l)
		}
	}
	if err := ValidateListName(newName, others); err != nil {
		return err
	}
	list.Name = newName
	return nil
}

// DeleteList は指定位置のリストを削除します。後ろのリストの位置は1つずつ詰められます。
func (s *ListStore) DeleteList(session *models.Session, index int) error {
	if _, err := s.LoadList(session, index); err != nil {
		return err
	}
	session.Lists = append(session.Lists[:index], session.Lists[index+1:]...)
	return nil
}

// AddTodo はリストの末尾に未完了のTodoを追加します。
func (s *ListStore) AddTodo(session *models.Session, listIndex int, name string) error {
	list, err := s.LoadList(session, listIndex)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if err := ValidateTodoName(name); err != nil {
		return err
	}
	list.Todos = append(list.Todos, models.Todo{Name: name})
	return nil
}

// DeleteTodo は指定位置のTodoを削除します。
func (s *ListStore) DeleteTodo(session *models.Session, listIndex, todoIndex int) error {
	list, err := s.loadTodo(session, listIndex, todoIndex)
	if err != nil {
		return err
	}
	list.Todos = append(list.Todos[:todoIndex], list.Todos[todoIndex+1:]...)
	return nil
}

// SetTodoCompleted はTodoの完了状態を設定します。
func (s *ListStore) SetTodoCompleted(session *models.Session, listIndex, todoIndex int, completed bool) error {
	list, err := s.loadTodo(session, listIndex, todoIndex)
	if err != nil {
		return err
	}
	list.Todos[todoIndex].Completed = completed
	return nil
}

// CompleteAll はリスト内のすべてのTodoを完了にします。
func (s *ListStore) CompleteAll(session *models.Session, listIndex int) error {
	list, err := s.LoadList(session, listIndex)
	if err != nil {
		return err
	}
	for i := range list.Todos {
		list.Todos[i].Completed = true
	}
	return nil
}

// loadTodo はリストを取得し、todoIndex が範囲内かを確認します。
func (s *ListStore) loadTodo(session *models.Session, listIndex, todoIndex int) (*models.List, error) {
	list, err := s.LoadList(session, listIndex)
	if err != nil {
		return nil, err
	}
	if todoIndex < 0 || todoIndex >= len(list.Todos) {
		return nil, ErrTodoNotFound
	}
	return list, nil
}
