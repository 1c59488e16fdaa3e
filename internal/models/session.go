package models

// Session は1セッション分の状態です。リストはセッションの寿命の間だけ保持されます。
type Session struct {
	Lists   []*List
	Error   string
	Success string
}

// NewSession は空のリストを持つ新しいSessionを作成します。
func NewSession() *Session {
	return &Session{Lists: []*List{}}
}

// TakeFlash はフラッシュメッセージを読み出し、同時に消去します。
func (s *Session) TakeFlash() (errMsg, success string) {
	errMsg, success = s.Error, s.Success
	s.Error, s.Success = "", ""
	return errMsg, success
}
