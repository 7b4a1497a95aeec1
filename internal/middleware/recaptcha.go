package middleware

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/brightpage/admin-core/internal/pkg/recaptcha"
	"github.com/brightpage/admin-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type recaptchaBody struct {
	RecaptchaToken string `json:"recaptchaToken"`
}

// VerifyRecaptcha gates public write endpoints (contact, newsletter) behind a
// bot-verification check: the request body must carry a recaptchaToken that
// verifies with a score at or above the threshold.
func VerifyRecaptcha(client *recaptcha.Client, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.BadRequest(c, "Invalid request body.")
			return
		}
		// The handler still needs to bind the body.
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))

		var body recaptchaBody
		if err := json.Unmarshal(raw, &body); err != nil || body.RecaptchaToken == "" {
			response.BadRequest(c, "reCAPTCHA token is required.")
			return
		}

		ok, result, err := client.Verify(c.Request.Context(), body.RecaptchaToken)
		if err != nil {
			log.Error("recaptcha verification failed", zap.Error(err))
			response.InternalError(c)
			return
		}
		if !ok {
			if result != nil {
				log.Warn("recaptcha rejected",
					zap.Float64("score", result.Score),
					zap.Strings("error_codes", result.ErrorCodes),
				)
			}
			response.Forbidden(c, "Failed reCAPTCHA verification. You might be a bot.")
			return
		}
		c.Next()
	}
}
