package subscriptionhdl

import (
	"context"

	basehdl "github.com/anurag2169/RiseStream-backend/internal/api/base/handler"
	submodels "github.com/anurag2169/RiseStream-backend/internal/api/subscription/models"
	"github.com/anurag2169/RiseStream-backend/internal/logger"
	"github.com/anurag2169/RiseStream-backend/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SubscriptionService interface {
	Toggle(ctx context.Context, channel, subscriber primitive.ObjectID) (bool, error)
	ListSubscribers(ctx context.Context, channel primitive.ObjectID) ([]submodels.SubscriberView, error)
	ListSubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) ([]submodels.ChannelView, error)
}

type SubscriptionHandler struct {
	*basehdl.BaseHandler
	svc SubscriptionService
}

func NewSubscriptionHandler(svc SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{BaseHandler: basehdl.NewBaseHandler(), svc: svc}
}

// Toggle handles POST /subscriptions/c/:channelId.
func (h *SubscriptionHandler) Toggle(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		subscriber, err := h.CurrentUserID(c)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		channel, err := utility.ParseObjectID(c.Params("channelId"), "channel id")
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}

		ctx, cancel := h.RequestContext(c)
		defer cancel()
		subscribed, err := h.svc.Toggle(ctx, channel, subscriber)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		logger.LogAction(c, "subscription.toggle", "channel", channel.Hex(), map[string]interface{}{"subscribed": subscribed})

		data := fiber.Map{"subscribed": subscribed}
		if subscribed {
			return h.HandleCreated(c, data, "You have Successfully Subscribed this channel", nil)
		}
		return h.HandleResponse(c, data, "Subscription Removed Successfully", nil)
	})
}

// ListSubscribers handles GET /subscriptions/c/:channelId.
func (h *SubscriptionHandler) ListSubscribers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		channel, err := utility.ParseObjectID(c.Params("channelId"), "channel id")
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		ctx, cancel := h.RequestContext(c)
		defer cancel()
		rows, err := h.svc.ListSubscribers(ctx, channel)
		return h.HandleResponse(c, rows, "Subscribers are fetched successfully", err)
	})
}

// ListSubscribedChannels handles GET /subscriptions/u/:subscriberId.
func (h *SubscriptionHandler) ListSubscribedChannels(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		subscriber, err := utility.ParseObjectID(c.Params("subscriberId"), "subscriber id")
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		ctx, cancel := h.RequestContext(c)
		defer cancel()
		rows, err := h.svc.ListSubscribedChannels(ctx, subscriber)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		return h.HandleResponse(c, fiber.Map{"subscribedChannels": rows}, "Subscribed channels are fetched successfully", nil)
	})
}
