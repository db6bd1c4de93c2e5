package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/DailyWish/internal/handler/http/middleware"
	"github.com/mikiasgoitom/DailyWish/internal/infrastructure/render"
	usecasecontract "github.com/mikiasgoitom/DailyWish/internal/usecase/contract"
)

const svgContentType = "image/svg+xml"

// ImageHandler renders the card image a frame points at.
type ImageHandler struct {
	logger usecasecontract.IAppLogger
	maxAge time.Duration
}

func NewImageHandler(logger usecasecontract.IAppLogger, maxAge time.Duration) *ImageHandler {
	return &ImageHandler{logger: logger, maxAge: maxAge}
}

// ServeImage draws the wish, stats and thank-you line from the query. Rendering
// failures fall back to a static card.
func (h *ImageHandler) ServeImage(c *gin.Context) {
	img, err := render.OGImage(render.OGView{
		Wish:   c.Query("wish"),
		Stats:  c.Query("stats"),
		Thanks: c.Query("thanks"),
	})
	if err != nil {
		middleware.Logger(c, h.logger).Errorf("failed to render image: %v", err)
		img = render.FallbackOGImage()
	}
	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.maxAge.Seconds())))
	c.Data(http.StatusOK, svgContentType, img)
}
