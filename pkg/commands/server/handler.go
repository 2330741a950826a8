package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/wuxler/imgref/pkg/appinfo"
	"github.com/wuxler/imgref/pkg/commands/internal/view"
	"github.com/wuxler/imgref/pkg/errdefs"
	"github.com/wuxler/imgref/pkg/ocispec/name"
	"github.com/wuxler/imgref/pkg/xlog"
)

const serverName = "imgref"

// Parsers holds the parser used for each mode.
type Parsers struct {
	Lenient name.Parser
	Strict  name.Parser
}

func (p Parsers) choose(strict bool) name.Parser {
	if strict {
		return p.Strict
	}
	return p.Lenient
}

// NewHandler returns the http.Handler of the service. The strict query
// parameter overrides defaultStrict. Requests are logged with the logger
// carried by ctx.
func NewHandler(ctx context.Context, parsers Parsers, defaultStrict bool) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), accessLog(xlog.C(ctx)), func(c *gin.Context) {
		c.Header("Server", appinfo.UserAgent(serverName))
	})

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, appinfo.Get())
	})

	v1 := router.Group("/v1")
	v1.GET("/references/parse", func(c *gin.Context) {
		ref := c.Query("ref")
		strict := defaultStrict
		if raw, ok := c.GetQuery("strict"); ok {
			b, err := cast.ToBoolE(raw)
			if err != nil {
				err = errdefs.Newf(errdefs.ErrInvalidParameter, "strict %q is not a boolean", raw)
				c.JSON(http.StatusBadRequest, view.FromError(ref, err))
				return
			}
			strict = b
		}
		img, err := parsers.choose(strict).Parse(c.Request.Context(), ref)
		if err != nil {
			c.JSON(errdefs.HTTPStatus(err), view.FromError(ref, err))
			return
		}
		c.JSON(http.StatusOK, view.FromImage(img))
	})
	return router
}

func accessLog(logger *xlog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request served",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start).String(),
		)
	}
}
