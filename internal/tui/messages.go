package tui

import (
	"github.com/rxassist/rxassist/internal/store"
	"github.com/rxassist/rxassist/internal/tui/scenes"
)

// Scene identifies a screen in the dashboard.
type Scene int

const (
	SceneHome Scene = iota
	SceneChat
	SceneAnalytics
	SceneExplorer
	SceneHelp
)

// String returns a human-readable scene name for the breadcrumb.
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneChat:
		return "Q&A Chat"
	case SceneAnalytics:
		return "Analytics"
	case SceneExplorer:
		return "Data Explorer"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// NavigateMsg switches to a different scene.
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user. Fatal errors (dataset load
// failures) block every scene until the program is restarted.
type ErrorMsg struct {
	Err   error
	Fatal bool
}

// DataLoadedMsg hands the freshly loaded store to the event loop, along
// with everything the scenes render. The store is built inside the load
// command and not shared until this message is processed.
type DataLoadedMsg struct {
	Store     *store.Store
	Summary   *store.Summary
	Analytics *scenes.AnalyticsData
}
