package healthz

import (
	"net/http"

	"github.com/envelope-zero/expense-parser/internal/httputil"
	"github.com/gin-gonic/gin"
)

// Check reports an error when the service cannot process requests.
type Check func() error

// Controller serves the health endpoint.
type Controller struct {
	check Check
}

func NewController(check Check) Controller {
	return Controller{check: check}
}

func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", co.Get)
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the health of the service
//
//	@Summary		Get health
//	@Description	Returns the application health and, if not healthy, an error
//	@Tags			General
//	@Produce		json
//	@Success		204
//	@Failure		503	{object}	httputil.HTTPError
//	@Router			/healthz [get]
func (co Controller) Get(c *gin.Context) {
	if err := co.check(); err != nil {
		httputil.NewError(c, http.StatusServiceUnavailable, err)
		return
	}

	c.Status(http.StatusNoContent)
}
