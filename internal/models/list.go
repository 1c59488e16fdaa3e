package models

// List は名前付きのTodoリストです。Todos の順序が保存順になります。
type List struct {
	Name  string `json:"name"`
	Todos []Todo `json:"todos"`
}

// ListRequest はリスト作成・名前変更フォームの入力です。
type ListRequest struct {
	ListName string `form:"list_name" json:"list_name"`
}

// IsNew はTodoが1件もない場合に true を返します。
func (l *List) IsNew() bool {
	return len(l.Todos) == 0
}

// AllCompleted はすべてのTodoが完了しているかを返します。空のリストでは true です。
func (l *List) AllCompleted() bool {
	for _, todo := range l.Todos {
		if !todo.Completed {
			return false
		}
	}
	return true
}

// IsCompleted はリストが完了済みかを返します。Todoのないリストは完了扱いになりません。
func (l *List) IsCompleted() bool {
	return l.AllCompleted() && !l.IsNew()
}

// RemainingCount は未完了のTodo数を返します。
func (l *List) RemainingCount() int {
	remaining := 0
	for _, todo := range l.Todos {
		if !todo.Completed {
			remaining++
		}
	}
	return remaining
}

// TotalCount はTodoの総数を返します。
func (l *List) TotalCount() int {
	return len(l.Todos)
}
