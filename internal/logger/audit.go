package logger

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// LogAction writes one audit entry for a mutation performed by the current actor.
func LogAction(c fiber.Ctx, action, resourceType, resourceID string, details map[string]interface{}) {
	fields := requestFields(c)
	fields["action"] = action
	fields["resource_type"] = resourceType
	fields["resource_id"] = resourceID
	fields["user_agent"] = strings.Clone(c.Get("User-Agent"))
	fields["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	if len(details) > 0 {
		fields["details"] = details
	}

	GetAuditLogger().WithFields(logrus.Fields(fields)).Info("audit")
}
