package router

import (
	"fmt"

	apirouter "github.com/anurag2169/RiseStream-backend/internal/api/router"
	subscriptionhdl "github.com/anurag2169/RiseStream-backend/internal/api/subscription/handler"
	subscriptionsvc "github.com/anurag2169/RiseStream-backend/internal/api/subscription/service"

	"github.com/gofiber/fiber/v3"
)

// Register mounts /subscriptions on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	svc, err := subscriptionsvc.NewSubscriptionService()
	if err != nil {
		return fmt.Errorf("create subscription service: %w", err)
	}
	Mount(r.Protected(v1, "/subscriptions"), subscriptionhdl.NewSubscriptionHandler(svc))
	return nil
}

func Mount(subs fiber.Router, h *subscriptionhdl.SubscriptionHandler) {
	subs.Post("/c/:channelId", h.Toggle)
	subs.Get("/c/:channelId", h.ListSubscribers)
	subs.Get("/u/:subscriberId", h.ListSubscribedChannels)
}
