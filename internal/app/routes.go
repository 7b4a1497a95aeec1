package app

import (
	"net/http"

	"github.com/brightpage/admin-core/internal/middleware"
	"github.com/brightpage/admin-core/internal/modules/auth"
	"github.com/brightpage/admin-core/internal/modules/banner"
	"github.com/brightpage/admin-core/internal/modules/category"
	"github.com/brightpage/admin-core/internal/modules/cms"
	"github.com/brightpage/admin-core/internal/modules/contact"
	"github.com/brightpage/admin-core/internal/modules/event"
	"github.com/brightpage/admin-core/internal/modules/news"
	"github.com/brightpage/admin-core/internal/modules/newsletter"
	"github.com/brightpage/admin-core/internal/modules/testimonial"
	"github.com/brightpage/admin-core/internal/pkg/mail"
	"github.com/brightpage/admin-core/internal/pkg/recaptcha"
	"github.com/brightpage/admin-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	log := a.logger

	authMW := middleware.Auth()
	recaptchaMW := middleware.VerifyRecaptcha(
		recaptcha.New(a.cfg.Recaptcha.SecretKey, a.cfg.Recaptcha.VerifyURL), log)

	r.NoRoute(func(c *gin.Context) { response.NotFound(c, "") })
	r.NoMethod(func(c *gin.Context) { response.MethodNotAllowed(c) })

	// Rate limiting only runs when Redis is configured.
	if a.rc != nil {
		r.Use(middleware.RateLimit(a.rc.Raw()))
	}

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Admin Backend API is running!")
	})

	// Uploaded images are served from a predictable public path:
	// /images/<partition>/<generated filename>.
	r.Static("/images", a.store.Root())

	api := r.Group("/api")

	mailer := mail.New(a.cfg.Mail)
	auth.NewHandler(auth.NewService(db, mailer, a.cfg.ResetURL, log), log).RegisterRoutes(api)

	banner.NewHandler(db, a.store, log).RegisterRoutes(api, authMW)
	category.NewHandler(category.NewService(db, a.store), a.store, log).RegisterRoutes(api, authMW)
	news.NewHandler(news.NewService(db, a.store), a.store, log).RegisterRoutes(api, authMW)
	event.NewHandler(event.NewService(db), log).RegisterRoutes(api, authMW)
	testimonial.NewHandler(db, a.store, log).RegisterRoutes(api, authMW)
	cms.NewHandler(db, log).RegisterRoutes(api, authMW)
	contact.NewHandler(db, log).RegisterRoutes(api, authMW, recaptchaMW)
	newsletter.NewHandler(db, log).RegisterRoutes(api, authMW, recaptchaMW)
}
