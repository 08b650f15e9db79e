package basehdl

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anurag2169/RiseStream-backend/internal/common"
	"github.com/anurag2169/RiseStream-backend/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type createInput struct {
	Title   string `json:"title" validate:"not_blank"`
	OwnerID string `json:"ownerId" validate:"omitempty,object_id"`
}

func readEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestParseRequestBody(t *testing.T) {
	h := NewBaseHandler()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Post("/", func(c fiber.Ctx) error {
		var in createInput
		if err := h.ParseRequestBody(c, &in); err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		return h.HandleCreated(c, in, "created", nil)
	})

	cases := []struct {
		name   string
		body   string
		status int
		msg    string
	}{
		{"valid", `{"title":"hello"}`, 201, "created"},
		{"blank title", `{"title":"   "}`, 400, "title is required"},
		{"empty body", ``, 400, "title is required"},
		{"bad owner id", `{"title":"x","ownerId":"nope"}`, 400, "ownerId must be a valid id"},
		{"malformed", `{"title":`, 400, "Malformed request body"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
			body := readEnvelope(t, resp)
			assert.Equal(t, tc.msg, body["message"])
		})
	}
}

func TestParsePagination(t *testing.T) {
	h := NewBaseHandler()
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		p := h.ParsePagination(c)
		return c.JSON(fiber.Map{"page": p.Page, "limit": p.Limit})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/?page=3&limit=500", nil))
	require.NoError(t, err)
	body := readEnvelope(t, resp)
	assert.EqualValues(t, 3, body["page"])
	assert.EqualValues(t, 100, body["limit"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/?page=abc", nil))
	require.NoError(t, err)
	body = readEnvelope(t, resp)
	assert.EqualValues(t, 1, body["page"])
	assert.EqualValues(t, 10, body["limit"])
}

func TestCurrentUserID(t *testing.T) {
	h := NewBaseHandler()
	id := primitive.NewObjectID()
	app := fiber.New()
	app.Get("/:uid", func(c fiber.Ctx) error {
		if uid := c.Params("uid"); uid != "none" {
			c.Locals(logger.UserIDLocal, uid)
		}
		got, err := h.CurrentUserID(c)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		return h.HandleResponse(c, got.Hex(), "", nil)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/"+id.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, id.Hex(), readEnvelope(t, resp)["data"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/none", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestSafeHandlerRecoversPanic(t *testing.T) {
	h := NewBaseHandler()
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return h.SafeHandler(c, func() error {
			panic("boom")
		})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	body := readEnvelope(t, resp)
	assert.Equal(t, common.MsgInternalError, body["message"])
	assert.Equal(t, false, body["success"])
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/fail", func(c fiber.Ctx) error {
		return errors.New("db password leaked")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	body := readEnvelope(t, resp)
	assert.Equal(t, common.MsgInternalError, body["message"])
	assert.Equal(t, "SYS_001", body["code"])
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context, *readpref.ReadPref) error { return s.err }

func TestHandleHealth(t *testing.T) {
	cases := []struct {
		name   string
		db     Pinger
		status int
		state  string
	}{
		{"no database", nil, 200, "healthy"},
		{"database up", stubPinger{}, 200, "healthy"},
		{"database down", stubPinger{err: errors.New("no reachable servers")}, 503, "degraded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", NewSystemHandler(tc.db).HandleHealth)
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
			body := readEnvelope(t, resp)
			data := body["data"].(map[string]interface{})
			assert.Equal(t, tc.state, data["status"])
		})
	}
}
