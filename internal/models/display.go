package models

// IndexedList は表示用に並べ替えたリストです。Index は保存順での位置を保持します。
type IndexedList struct {
	Index int
	*List
}

// IndexedTodo は表示用に並べ替えたTodoです。
type IndexedTodo struct {
	Index int
	Todo
}

// SortListsForDisplay は未完了のリストを先に、完了済みのリストを後に並べます。
// 各グループ内の相対順序は保たれ、元のスライスは変更しません。
func SortListsForDisplay(lists []*List) []IndexedList {
	sorted := make([]IndexedList, 0, len(lists))
	for _, i := range displayOrder(lists, (*List).IsCompleted) {
		sorted = append(sorted, IndexedList{Index: i, List: lists[i]})
	}
	return sorted
}

// SortTodosForDisplay は未完了のTodoを先に、完了済みのTodoを後に並べます。
func SortTodosForDisplay(todos []Todo) []IndexedTodo {
	sorted := make([]IndexedTodo, 0, len(todos))
	for _, i := range displayOrder(todos, func(t Todo) bool { return t.Completed }) {
		sorted = append(sorted, IndexedTodo{Index: i, Todo: todos[i]})
	}
	return sorted
}

// displayOrder は安定した二分割で並べた元インデックスを返します。
func displayOrder[T any](items []T, completed func(T) bool) []int {
	order := make([]int, 0, len(items))
	var done []int
	for i, item := range items {
		if completed(item) {
			done = append(done, i)
			continue
		}
		order = append(order, i)
	}
	return append(order, done...)
}
