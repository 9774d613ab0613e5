package tui

// DocumentChangedMsg carries a document that was edited outside the editor.
type DocumentChangedMsg struct {
	Raw any
}

// DocumentErrorMsg reports a failure to reload or watch the document.
type DocumentErrorMsg struct {
	Err error
}

type savedMsg struct {
	Err error
}
