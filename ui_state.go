package main

type uiState struct {
	terminalWidth  int
	terminalHeight int
	noticeMsg      string
	noticeType     string
	noticeSeq      int
}
