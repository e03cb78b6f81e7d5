package http

import (
	"errors"
	"net/http"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/rf-code-hub/pkg/common"
	"liyu1981.xyz/rf-code-hub/pkg/models"
	"liyu1981.xyz/rf-code-hub/pkg/rf"
	"liyu1981.xyz/rf-code-hub/pkg/webhook"
)

var errNoTransport = errors.New("no radio transport attached")

// statusFor maps engine errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, rf.ErrCardNotFound),
		errors.Is(err, rf.ErrCodeNotFound),
		errors.Is(err, webhook.ErrWebhookNotFound):
		return http.StatusNotFound
	case errors.Is(err, rf.ErrCardExists),
		errors.Is(err, rf.ErrCodeAssigned),
		errors.Is(err, webhook.ErrWebhookExists):
		return http.StatusConflict
	case errors.Is(err, rf.ErrInvalidCard),
		errors.Is(err, rf.ErrNotAnAlarm),
		errors.Is(err, webhook.ErrInvalidWebhook):
		return http.StatusBadRequest
	case errors.Is(err, errNoTransport):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abortWith(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		common.GetLoggerWith(common.LoggerNameRestfulServer).Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type CardRequest struct {
	Shortname   string `json:"shortname" zog:"shortname"`
	Name        string `json:"name" zog:"name"`
	Type        string `json:"type" zog:"type"`
	OnCode      string `json:"on_code" zog:"on_code"`
	OffCode     string `json:"off_code" zog:"off_code"`
	TriggerCode string `json:"trigger_code" zog:"trigger_code"`
	Armed       bool   `json:"armed" zog:"armed"`
	Img         string `json:"img" zog:"img"`
}

var cardRequestSchema = z.Struct(z.Shape{
	"Shortname":   z.String().Trim().Required(),
	"Name":        z.String().Trim(),
	"Type":        z.String().Required(),
	"OnCode":      z.String().Trim(),
	"OffCode":     z.String().Trim(),
	"TriggerCode": z.String().Trim(),
	"Armed":       z.Bool(),
	"Img":         z.String().Trim(),
})

func (rs *RestfulServer) ListCards(c *gin.Context) {
	cards, err := rs.RF.Cards.List(c.Request.Context())
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (rs *RestfulServer) CreateCard(c *gin.Context) {
	var req CardRequest
	if err := cardRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	card := models.Card{
		Shortname:   req.Shortname,
		Name:        req.Name,
		Type:        models.CardType(req.Type),
		OnCode:      req.OnCode,
		OffCode:     req.OffCode,
		TriggerCode: req.TriggerCode,
		Armed:       req.Armed,
		Img:         req.Img,
	}
	if err := rs.RF.Lifecycle.Add(c.Request.Context(), &card); err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (rs *RestfulServer) GetCard(c *gin.Context) {
	card, err := rs.RF.Cards.Get(c.Request.Context(), c.Param("shortname"))
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

func (rs *RestfulServer) DeleteCard(c *gin.Context) {
	removed, err := rs.RF.Lifecycle.Remove(c.Request.Context(), c.Param("shortname"))
	if errors.Is(err, rf.ErrCascadeFailed) {
		common.GetLoggerWith(common.LoggerNameRestfulServer).Warn("Card removed with stale codes left behind",
			zap.String("shortname", c.Param("shortname")),
			zap.Error(err),
		)
		c.JSON(http.StatusOK, gin.H{"removed_codes": removed, "warning": err.Error()})
		return
	}
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed_codes": removed})
}

type ArmRequest struct {
	Armed bool `json:"armed" zog:"armed"`
}

var armRequestSchema = z.Struct(z.Shape{
	"Armed": z.Bool(),
})

// ArmCard sets the armed flag to the body's value; a missing flag disarms.
func (rs *RestfulServer) ArmCard(c *gin.Context) {
	var req ArmRequest
	if err := armRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	card, err := rs.RF.Lifecycle.SetArmed(c.Request.Context(), c.Param("shortname"), req.Armed)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// SwitchCard transmits the on or off code of a switch card.
func (rs *RestfulServer) SwitchCard(c *gin.Context) {
	card, err := rs.RF.Cards.Get(c.Request.Context(), c.Param("shortname"))
	if err != nil {
		abortWith(c, err)
		return
	}

	sw, ok := card.Device().(models.SwitchDevice)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card " + card.Shortname + " is not a switch"})
		return
	}

	var code string
	switch c.Param("state") {
	case "on":
		code = sw.OnCode
	case "off":
		code = sw.OffCode
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "state must be on or off"})
		return
	}
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "switch " + card.Shortname + " has no " + c.Param("state") + " code"})
		return
	}

	rs.send(c, code)
}

func (rs *RestfulServer) ListCodes(c *gin.Context) {
	codes, err := rs.RF.Codes.List(c.Request.Context())
	if err != nil {
		abortWith(c, err)
		return
	}

	switch c.Query("ignored") {
	case "true":
		codes = common.Filter(codes, func(code models.RFCode) bool { return code.Ignored })
	case "false":
		codes = common.Filter(codes, func(code models.RFCode) bool { return !code.Ignored })
	}
	c.JSON(http.StatusOK, codes)
}

// PruneCodes drops every ignored code. Only ?ignored=true is accepted so a
// bare DELETE cannot wipe the store.
func (rs *RestfulServer) PruneCodes(c *gin.Context) {
	if c.Query("ignored") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only ?ignored=true is supported"})
		return
	}

	removed, err := rs.RF.Codes.RemoveWhere(c.Request.Context(), models.CodeFilter{IgnoredOnly: true}, true)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

func (rs *RestfulServer) GetCode(c *gin.Context) {
	code, err := rs.RF.Codes.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, code)
}

func (rs *RestfulServer) DeleteCode(c *gin.Context) {
	code := c.Param("code")
	removed, err := rs.RF.Codes.Remove(c.Request.Context(), code)
	if err != nil {
		abortWith(c, err)
		return
	}
	if removed == 0 {
		abortWith(c, rf.ErrCodeNotFound)
		return
	}
	rs.RF.Repeats.Forget(code)
	c.Status(http.StatusNoContent)
}

func (rs *RestfulServer) GetAvailability(c *gin.Context) {
	availability, err := rs.RF.Availability.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, availability)
}

type IgnoreRequest struct {
	Ignored bool `json:"ignored" zog:"ignored"`
}

var ignoreRequestSchema = z.Struct(z.Shape{
	"Ignored": z.Bool(),
})

func (rs *RestfulServer) IgnoreCode(c *gin.Context) {
	var req IgnoreRequest
	if err := ignoreRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.RF.Codes.SetIgnored(c.Request.Context(), c.Param("code"), req.Ignored); err != nil {
		abortWith(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *RestfulServer) SendCode(c *gin.Context) {
	rs.send(c, c.Param("code"))
}

func (rs *RestfulServer) send(c *gin.Context, code string) {
	if rs.Transport == nil {
		abortWith(c, errNoTransport)
		return
	}
	if !rs.CheckSendLimiter(code) {
		c.Status(http.StatusTooManyRequests)
		return
	}
	if err := rs.Transport.Send(c.Request.Context(), code); err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"sent": code})
}

func (rs *RestfulServer) ListWebhooks(c *gin.Context) {
	webhooks, err := rs.Webhooks.List(c.Request.Context(), c.Query("hook"))
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, webhooks)
}

type WebhookRequest struct {
	Hook string `json:"hook" zog:"hook"`
	URL  string `json:"url" zog:"url"`
}

var webhookRequestSchema = z.Struct(z.Shape{
	"Hook": z.String().Trim().Required(),
	"URL":  z.String().Trim().Required(),
})

func (rs *RestfulServer) RegisterWebhook(c *gin.Context) {
	var req WebhookRequest
	if err := webhookRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	wh, err := rs.Webhooks.Register(c.Request.Context(), req.Hook, req.URL)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, wh)
}

func (rs *RestfulServer) UnregisterWebhook(c *gin.Context) {
	if err := rs.Webhooks.Unregister(c.Request.Context(), c.Param("id")); err != nil {
		abortWith(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
