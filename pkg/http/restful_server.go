package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"liyu1981.xyz/rf-code-hub/pkg/models"
	"liyu1981.xyz/rf-code-hub/pkg/rf"
)

// Sender transmits a code through the radio.
type Sender interface {
	Send(ctx context.Context, code string) error
}

// WebhookRegistry manages webhook subscribers.
type WebhookRegistry interface {
	Register(ctx context.Context, hook, url string) (*models.Webhook, error)
	Unregister(ctx context.Context, id string) error
	List(ctx context.Context, hook string) ([]models.Webhook, error)
}

type RestfulServer struct {
	Server *gin.Engine
	RF     *rf.RF
	// Transport is nil when no radio is attached; send routes answer 503.
	Transport Sender
	Webhooks  WebhookRegistry
	// Live serves the websocket channel at /ws when set.
	Live http.Handler
	// RateLimiterStore throttles transmissions per code.
	RateLimiterStore *rf.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(code string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	}
	return rs.RateLimiterStore.GetLimiter(code)
}

func (rs *RestfulServer) CheckSendLimiter(code string) bool {
	limiter := rs.GetLimiter(code)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	if rs.RF.AssetsDir != "" {
		rs.Server.Static("/assets", rs.RF.AssetsDir)
	}

	cards := rs.Server.Group("/cards")
	{
		cards.GET("", rs.ListCards)
		cards.POST("", rs.CreateCard)
		cards.GET("/:shortname", rs.GetCard)
		cards.DELETE("/:shortname", rs.DeleteCard)
		cards.POST("/:shortname/arm", rs.ArmCard)
		cards.POST("/:shortname/switch/:state", rs.SwitchCard)
	}

	codes := rs.Server.Group("/codes")
	{
		codes.GET("", rs.ListCodes)
		codes.DELETE("", rs.PruneCodes)
		codes.GET("/:code", rs.GetCode)
		codes.DELETE("/:code", rs.DeleteCode)
		codes.GET("/:code/availability", rs.GetAvailability)
		codes.POST("/:code/ignore", rs.IgnoreCode)
		codes.POST("/:code/send", rs.SendCode)
	}

	webhooks := rs.Server.Group("/webhooks")
	{
		webhooks.GET("", rs.ListWebhooks)
		webhooks.POST("", rs.RegisterWebhook)
		webhooks.DELETE("/:id", rs.UnregisterWebhook)
	}

	if rs.Live != nil {
		rs.Server.GET("/ws", gin.WrapH(rs.Live))
	}
}
