package auth

import (
	"errors"
	"net/http"

	"github.com/ghoOst57/genetic-miniapp/internal/api"
	"github.com/ghoOst57/genetic-miniapp/internal/logger"
	"github.com/ghoOst57/genetic-miniapp/internal/metrics"

	"github.com/gin-gonic/gin"
)

const devModeWarning = "BOT_TOKEN not set, dev mode active"

type Handler struct {
	botToken      string
	sessionSecret string
	devMode       bool
}

func NewHandler(botToken, sessionSecret string, devMode bool) *Handler {
	return &Handler{
		botToken:      botToken,
		sessionSecret: sessionSecret,
		devMode:       devMode,
	}
}

type VerifyRequest struct {
	InitData string `json:"initData"`
}

type VerifyResponse struct {
	Ok      bool        `json:"ok"`
	DevMode bool        `json:"dev_mode,omitempty"`
	User    interface{} `json:"user,omitempty"`
	Token   string      `json:"token,omitempty"`
	Warning string      `json:"warning,omitempty"`
}

// @Summary      Verify Telegram WebApp initData
// @Description  Checks the initData signature against the bot token. Without a configured bot token the endpoint is a permissive dev-mode no-op.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  auth.VerifyRequest  true  "initData payload"
// @Success      200  {object}  auth.VerifyResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      401  {object}  api.ErrorResponse
// @Router       /auth/verify [post]
func (h *Handler) Verify(c *gin.Context) {
	if h.devMode {
		logger.Warn("auth bypass active", "warning", devModeWarning)
		metrics.RecordAuthVerification("dev_mode")
		c.JSON(http.StatusOK, VerifyResponse{Ok: true, DevMode: true, Warning: devModeWarning})
		return
	}

	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.InitData == "" {
		metrics.RecordAuthVerification("missing")
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "initData required"})
		return
	}

	data, err := VerifyInitData(req.InitData, h.botToken)
	if err != nil {
		switch {
		case errors.Is(err, ErrHashMissing):
			metrics.RecordAuthVerification("missing")
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			metrics.RecordAuthVerification("rejected")
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: ErrBadSignature.Error()})
		}
		return
	}

	resp := VerifyResponse{Ok: true, User: data["user"]}

	if id, username, ok := telegramUser(data); ok {
		token, err := GenerateSessionToken(id, username, h.sessionSecret)
		if err != nil {
			logger.Error("failed to mint session token", "error", err)
		} else {
			resp.Token = token
		}
	}

	metrics.RecordAuthVerification("verified")
	c.JSON(http.StatusOK, resp)
}

// telegramUser pulls the numeric id and username out of the decoded
// "user" field, tolerating its absence.
func telegramUser(data map[string]interface{}) (int64, string, bool) {
	user, ok := data["user"].(map[string]interface{})
	if !ok {
		return 0, "", false
	}

	id, ok := user["id"].(float64)
	if !ok {
		return 0, "", false
	}

	username, _ := user["username"].(string)
	return int64(id), username, true
}
