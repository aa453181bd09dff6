package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/store"
	"github.com/dinehall/dinehall/models"
)

// priorityRank orders kitchen tickets; higher values display first.
var priorityRank = map[models.OrderPriority]int{
	models.OrderPriorityUrgent: 3,
	models.OrderPriorityHigh:   2,
	models.OrderPriorityMedium: 1,
	models.OrderPriorityLow:    0,
}

// kitchenService projects active orders onto the kitchen display. Elapsed
// time and overdue state are computed server-side so every display client
// agrees on them.
type kitchenService struct {
	orderRepository store.OrderRepository
	clock           Clock
	logger          *logger.Logger
}

// NewKitchenService constructs a KitchenService over the order repository.
func NewKitchenService(orderRepository store.OrderRepository, logger *logger.Logger) KitchenService {
	return &kitchenService{
		orderRepository: orderRepository,
		clock:           realClock{},
		logger:          logger,
	}
}

// Tickets returns active orders for the kitchen display: urgent priorities
// first, then oldest first within the same priority.
func (k *kitchenService) Tickets(ctx context.Context) ([]models.KitchenTicket, error) {
	orders, err := k.orderRepository.ListOrders(ctx, models.OrderFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("listing active orders failed: %w", err)
	}

	now := k.clock.Now()
	tickets := make([]models.KitchenTicket, 0, len(orders))
	for _, order := range orders {
		tickets = append(tickets, models.KitchenTicket{
			Order:          order,
			ElapsedMinutes: order.ElapsedMinutes(now),
			Overdue:        order.Overdue(now),
		})
	}

	// ListOrders already returns oldest first; the sort is stable so equal
	// priorities keep that ordering.
	sort.SliceStable(tickets, func(i, j int) bool {
		return priorityRank[tickets[i].Order.Priority] > priorityRank[tickets[j].Order.Priority]
	})

	return tickets, nil
}

// Summary gives per-status counts for the display header, including how many
// active orders are past their estimated preparation time.
func (k *kitchenService) Summary(ctx context.Context) (models.KitchenSummary, error) {
	orders, err := k.orderRepository.ListOrders(ctx, models.OrderFilter{ActiveOnly: true})
	if err != nil {
		return models.KitchenSummary{}, fmt.Errorf("listing active orders failed: %w", err)
	}

	now := k.clock.Now()
	var summary models.KitchenSummary
	for _, order := range orders {
		switch order.Status {
		case models.OrderStatusPending:
			summary.Pending++
		case models.OrderStatusConfirmed:
			summary.Confirmed++
		case models.OrderStatusPreparing:
			summary.Preparing++
		case models.OrderStatusReady:
			summary.Ready++
		}
		if order.Overdue(now) {
			summary.Overdue++
		}
	}

	return summary, nil
}
