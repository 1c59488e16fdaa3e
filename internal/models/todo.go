// Package modelsはリストとTodoを定義します。
package models

// Todo はリスト内の1件のTodoを表します。
type Todo struct {
	Name      string `json:"name"`      // Todoの名前（1〜100文字）
	Completed bool   `json:"completed"` // 完了状態
}

// TodoRequest はTodo追加フォームの入力です。
type TodoRequest struct {
	Todo string `form:"todo" json:"todo"`
}

// TodoStatusRequest はTodoの完了状態更新フォームの入力です。
type TodoStatusRequest struct {
	Completed string `form:"completed" json:"completed"`
}

// IsCompleted は completed が文字列 "true" のときだけ true を返します。
func (r TodoStatusRequest) IsCompleted() bool {
	return r.Completed == "true"
}
