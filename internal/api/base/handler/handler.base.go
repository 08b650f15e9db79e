// Package basehdl holds the request helpers shared by every API handler.
package basehdl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strconv"
	"time"

	basemodels "github.com/anurag2169/RiseStream-backend/internal/api/base/models"
	"github.com/anurag2169/RiseStream-backend/internal/api/middleware"
	"github.com/anurag2169/RiseStream-backend/internal/common"
	"github.com/anurag2169/RiseStream-backend/internal/global"
	"github.com/anurag2169/RiseStream-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultStoreTimeout = 5 * time.Second
	defaultUploadDir    = "./public/temp"
)

// BaseHandler carries the per-request settings shared by the domain handlers.
type BaseHandler struct {
	StoreTimeout time.Duration
	UploadDir    string
}

// NewBaseHandler reads its settings from the loaded configuration when available.
func NewBaseHandler() *BaseHandler {
	h := &BaseHandler{StoreTimeout: defaultStoreTimeout, UploadDir: defaultUploadDir}
	if cfg := global.MongoDB_ServerConfig; cfg != nil {
		h.StoreTimeout = cfg.StoreTimeout()
		if cfg.UploadTmpDir != "" {
			h.UploadDir = cfg.UploadTmpDir
		}
	}
	return h
}

// RequestContext bounds every store call made for this request.
func (h *BaseHandler) RequestContext(c fiber.Ctx) (context.Context, context.CancelFunc) {
	timeout := h.StoreTimeout
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return context.WithTimeout(c.Context(), timeout)
}

// CurrentUserID returns the actor attached by the auth middleware.
func (h *BaseHandler) CurrentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	raw, _ := c.Locals(logger.UserIDLocal).(string)
	if raw == "" {
		return primitive.NilObjectID, common.ErrActorMissing
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, common.ErrActorMissing
	}
	return id, nil
}

// ValidateInput runs the struct validator and turns field errors into sub-errors.
func (h *BaseHandler) ValidateInput(input interface{}) error {
	err := global.GetValidator().Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return common.NewValidationError(common.MsgValidationError, nil)
	}
	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, fieldMessage(fe))
	}
	return common.NewValidationError(details[0], details)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "not_blank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "object_id":
		return fmt.Sprintf("%s must be a valid id", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// ParseRequestBody decodes the JSON body into input and validates it.
// An empty body decodes as an empty object.
func (h *BaseHandler) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil && !errors.Is(err, io.EOF) {
		return common.ErrInvalidFormat
	}
	return h.ValidateInput(input)
}

// ParsePagination reads ?page and ?limit.
func (h *BaseHandler) ParsePagination(c fiber.Ctx) basemodels.Pagination {
	page, _ := strconv.ParseInt(c.Query("page"), 10, 64)
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)
	return basemodels.NewPagination(page, limit)
}

// SaveUpload stores the multipart file field in the upload directory.
// It returns an empty path when the field is absent.
func (h *BaseHandler) SaveUpload(c fiber.Ctx, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return "", nil
	}
	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	path := filepath.Join(h.UploadDir, uuid.NewString()+filepath.Ext(fh.Filename))
	if err := c.SaveFile(fh, path); err != nil {
		return "", fmt.Errorf("save upload %s: %w", field, err)
	}
	return path, nil
}

// RemoveUpload deletes a temporary upload, ignoring empty paths.
func RemoveUpload(c fiber.Ctx, path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.WithRequest(c).WithError(err).Warn("failed to remove temporary upload")
	}
}

// SafeHandler recovers a panic in fn and answers with an internal error.
func (h *BaseHandler) SafeHandler(c fiber.Ctx, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithRequest(c).WithField("stack", string(debug.Stack())).Errorf("handler panic: %v", r)
			err = middleware.HandleErrorResponse(c, common.NewError(
				common.ErrCodeInternalServer,
				common.MsgInternalError,
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return fn()
}

// HandleResponse writes a 200 envelope, or the error envelope when err is set.
func (h *BaseHandler) HandleResponse(c fiber.Ctx, data interface{}, message string, err error) error {
	if err != nil {
		return middleware.HandleErrorResponse(c, err)
	}
	return middleware.SuccessResponse(c, common.StatusOK, data, message)
}

// HandleCreated writes a 201 envelope, or the error envelope when err is set.
func (h *BaseHandler) HandleCreated(c fiber.Ctx, data interface{}, message string, err error) error {
	if err != nil {
		return middleware.HandleErrorResponse(c, err)
	}
	return middleware.SuccessResponse(c, common.StatusCreated, data, message)
}
