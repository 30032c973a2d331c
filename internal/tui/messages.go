package tui

type copiedMsg struct {
	id  int64
	err error
}
