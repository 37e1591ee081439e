package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/justfortestingnothibghere/Api/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgSongsFetched MsgKind = iota
	MsgBrowserOpened
)

type songsFetched struct {
	songs []models.Song
	err   error
}

type browserOpened struct {
	url string
	err error
}

// songsFetchedMsg is the constructor for [MsgSongsFetched]
func songsFetchedMsg(songs []models.Song, err error) Msg {
	return Msg{kind: MsgSongsFetched, data: songsFetched{songs, err}}
}

// browserOpenedMsg is the constructor for [MsgBrowserOpened]
func browserOpenedMsg(url string, err error) Msg {
	return Msg{kind: MsgBrowserOpened, data: browserOpened{url, err}}
}
