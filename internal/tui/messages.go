package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dinehall/dinehall/models"
)

// navigateTo switches the router to another page; payload, when non-nil, is
// re-dispatched as the first message of the target page.
type navigateTo struct {
	page    string
	payload tea.Msg
}

type loginResultMsg struct {
	user models.User
	err  error
}

type boardLoadedMsg struct {
	tickets []models.KitchenTicket
	summary models.KitchenSummary
	err     error
}

type statusUpdatedMsg struct {
	order models.Order
	err   error
}

type refreshTickMsg struct{}
