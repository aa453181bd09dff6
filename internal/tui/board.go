// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dinehall/dinehall/internal/adapter"
	"github.com/dinehall/dinehall/models"
)

// BoardModel is the live ticket board. It polls the server on a timer,
// renders active orders urgent-first with overdue tickets highlighted, and
// lets the operator advance the selected order through its lifecycle.
type BoardModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	refresh time.Duration

	tickets []models.KitchenTicket
	summary models.KitchenSummary
	cursor  int

	loading bool
	errMsg  string
}

func NewBoardModel(ctx context.Context, serverAdapter adapter.ServerAdapter, refresh time.Duration) *BoardModel {
	return &BoardModel{
		ctx:     ctx,
		adapter: serverAdapter,
		refresh: refresh,
		loading: true,
	}
}

// Init implements [tea.Model]. Loads the board immediately and schedules the
// first refresh tick.
func (m *BoardModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadBoard(), m.cmdScheduleRefresh())
}

// Update implements [tea.Model]. Handled messages:
//   - [boardLoadedMsg]   — replaces tickets and summary, clamps the cursor.
//   - [refreshTickMsg]   — reloads the board and schedules the next tick.
//   - [statusUpdatedMsg] — reloads the board, or shows the transition error.
//   - up/down            — moves the selection.
//   - enter              — advances the selected order to its next status.
//   - x                  — cancels the selected order (pending/confirmed only).
//   - r                  — manual refresh.
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.tickets = msg.tickets
		m.summary = msg.summary
		if m.cursor >= len(m.tickets) {
			m.cursor = max(0, len(m.tickets)-1)
		}
		return m, nil

	case refreshTickMsg:
		return m, tea.Batch(m.cmdLoadBoard(), m.cmdScheduleRefresh())

	case statusUpdatedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, m.cmdLoadBoard()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.tickets)-1 {
				m.cursor++
			}
		case "enter":
			if ticket, ok := m.selected(); ok {
				if next, allowed := nextKitchenStatus(ticket.Order.Status); allowed {
					return m, m.cmdUpdateStatus(ticket.Order.OrderID, next)
				}
			}
		case "x":
			if ticket, ok := m.selected(); ok {
				if ticket.Order.Status.CanTransitionTo(models.OrderStatusCancelled) {
					return m, m.cmdUpdateStatus(ticket.Order.OrderID, models.OrderStatusCancelled)
				}
				m.errMsg = "order can no longer be cancelled"
			}
		case "r":
			m.loading = true
			return m, m.cmdLoadBoard()
		case "q":
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements [tea.Model]. Renders the summary header, the ticket list
// with urgency and overdue highlighting, and the selected ticket's lines.
func (m *BoardModel) View() string {
	var b strings.Builder

	b.WriteString(summaryStyle.Render(fmt.Sprintf(
		"pending %d │ confirmed %d │ preparing %d │ ready %d │ overdue %d",
		m.summary.Pending, m.summary.Confirmed, m.summary.Preparing, m.summary.Ready, m.summary.Overdue,
	)))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading tickets...\n")
	case len(m.tickets) == 0:
		b.WriteString("No active orders. All caught up.\n")
	default:
		for i, ticket := range m.tickets {
			b.WriteString(m.renderTicketLine(i, ticket))
			b.WriteString("\n")
		}

		if ticket, ok := m.selected(); ok && len(ticket.Order.Items) > 0 {
			b.WriteString("\n")
			for _, item := range ticket.Order.Items {
				b.WriteString(fmt.Sprintf("    %d× %s", item.Quantity, item.Name))
				if item.Notes != "" {
					b.WriteString(" (" + item.Notes + ")")
				}
				b.WriteString("\n")
			}
			if ticket.Order.Notes != "" {
				b.WriteString("    note: " + ticket.Order.Notes + "\n")
			}
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("KITCHEN DISPLAY", strings.TrimRight(b.String(), "\n"),
		"↑/↓: select │ enter: advance │ x: cancel │ r: refresh │ q: quit")
}

func (m *BoardModel) renderTicketLine(i int, ticket models.KitchenTicket) string {
	order := ticket.Order

	marker := "  "
	if i == m.cursor {
		marker = "> "
	}

	table := order.TableNumber
	if table == "" {
		table = "—"
	}

	line := fmt.Sprintf("%s%s  %-9s  table %-4s  %2dm  %s",
		marker, order.OrderNumber, order.Status, table, ticket.ElapsedMinutes, order.CustomerName)

	switch {
	case ticket.Overdue:
		line = overdueStyle.Render(line + "  OVERDUE")
	case order.Priority == models.OrderPriorityUrgent:
		line = urgentStyle.Render(line + "  URGENT")
	case i == m.cursor:
		line = selectedStyle.Render(line)
	}
	return line
}

func (m *BoardModel) selected() (models.KitchenTicket, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tickets) {
		return models.KitchenTicket{}, false
	}
	return m.tickets[m.cursor], true
}

// nextKitchenStatus is the single-key advance path on the board:
// pending → confirmed → preparing → ready → completed.
func nextKitchenStatus(status models.OrderStatus) (models.OrderStatus, bool) {
	switch status {
	case models.OrderStatusPending:
		return models.OrderStatusConfirmed, true
	case models.OrderStatusConfirmed:
		return models.OrderStatusPreparing, true
	case models.OrderStatusPreparing:
		return models.OrderStatusReady, true
	case models.OrderStatusReady:
		return models.OrderStatusCompleted, true
	}
	return "", false
}

func (m *BoardModel) cmdLoadBoard() tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		tickets, err := serverAdapter.Tickets(ctx)
		if err != nil {
			return boardLoadedMsg{err: err}
		}
		summary, err := serverAdapter.Summary(ctx)
		if err != nil {
			return boardLoadedMsg{err: err}
		}
		return boardLoadedMsg{tickets: tickets, summary: summary}
	}
}

func (m *BoardModel) cmdUpdateStatus(orderID int64, status models.OrderStatus) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		order, err := serverAdapter.UpdateOrderStatus(ctx, orderID, status)
		return statusUpdatedMsg{order: order, err: err}
	}
}

func (m *BoardModel) cmdScheduleRefresh() tea.Cmd {
	return tea.Tick(m.refresh, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}
