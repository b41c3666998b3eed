// Package healthz implements the application health endpoint.
package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wiw0411-bot/tennisforum/internal/docstore"
	"github.com/wiw0411-bot/tennisforum/internal/httperror"
	"github.com/wiw0411-bot/tennisforum/internal/httputil"
)

// RegisterRoutes registers the health endpoint with the RouterGroup
// that is passed.
func RegisterRoutes(r *gin.RouterGroup, store docstore.Store) {
	r.OPTIONS("", Options)
	r.GET("", Get(store))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httperror.Error
// @Router			/healthz [get]
func Get(store docstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := store.Ping(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, httperror.New(err))
			return
		}

		c.Status(http.StatusNoContent)
	}
}
