package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/DailyWish/internal/domain/entity"
	"github.com/mikiasgoitom/DailyWish/internal/handler/http/dto"
	"github.com/mikiasgoitom/DailyWish/internal/handler/http/middleware"
	"github.com/mikiasgoitom/DailyWish/internal/infrastructure/metrics"
	"github.com/mikiasgoitom/DailyWish/internal/infrastructure/render"
	usecasecontract "github.com/mikiasgoitom/DailyWish/internal/usecase/contract"
)

const (
	htmlContentType     = "text/html; charset=utf-8"
	internalServerError = "Internal server error"
	invalidVoteRequest  = "Invalid request - missing FID or button index"
)

// FrameHandlerInterface lists the frame endpoints so tests can swap implementations.
type FrameHandlerInterface interface {
	ServeFrame(*gin.Context)
	CastVote(*gin.Context)
}

var _ FrameHandlerInterface = (*FrameHandler)(nil)

// FrameHandler serves the wish frame and accepts votes from it.
type FrameHandler struct {
	wishUsecase usecasecontract.IWishUseCase
	logger      usecasecontract.IAppLogger
	metrics     *metrics.Metrics
	baseURL     string
	now         func() time.Time
}

func NewFrameHandler(wishUsecase usecasecontract.IWishUseCase, logger usecasecontract.IAppLogger, m *metrics.Metrics, baseURL string) *FrameHandler {
	return &FrameHandler{
		wishUsecase: wishUsecase,
		logger:      logger,
		metrics:     m,
		baseURL:     baseURL,
		now:         time.Now,
	}
}

// ServeFrame renders today's wish for the caller. Any body that does not carry a fid
// yields the anonymous wish.
func (h *FrameHandler) ServeFrame(c *gin.Context) {
	var fid *uint64
	if c.Request.Method == http.MethodPost {
		var req dto.FrameActionRequest
		if err := c.ShouldBindJSON(&req); err == nil && req.UntrustedData.FID > 0 {
			id := req.UntrustedData.FID
			fid = &id
		}
	}

	wish, err := h.wishUsecase.GetDailyWish(c.Request.Context(), fid, h.now())
	if err != nil {
		middleware.Logger(c, h.logger).Errorf("failed to load daily wish: %v", err)
		ErrorHandler(c, http.StatusInternalServerError, internalServerError)
		return
	}
	h.metrics.RecordWishServed(fid == nil)

	h.renderFrame(c, *wish, false)
}

// CastVote records a like or dislike and answers with the updated frame.
func (h *FrameHandler) CastVote(c *gin.Context) {
	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.RecordVote("unknown", metrics.OutcomeRejected)
		ErrorHandler(c, http.StatusBadRequest, invalidVoteRequest)
		return
	}

	choice, ok := entity.VoteChoiceFromButton(req.UntrustedData.ButtonIndex)
	if !ok {
		h.metrics.RecordVote("unknown", metrics.OutcomeRejected)
		ErrorHandler(c, http.StatusBadRequest, invalidVoteRequest)
		return
	}

	outcome, err := h.wishUsecase.CastVote(c.Request.Context(), req.UntrustedData.FID, choice, h.now())
	if err != nil {
		status := UsecaseErrorStatus(err)
		if status == http.StatusBadRequest {
			h.metrics.RecordVote(string(choice), metrics.OutcomeRejected)
			ErrorHandler(c, status, invalidVoteRequest)
			return
		}
		h.metrics.RecordVote(string(choice), metrics.OutcomeFailed)
		middleware.Logger(c, h.logger).Errorf("failed to record vote from %d: %v", req.UntrustedData.FID, err)
		ErrorHandler(c, status, internalServerError)
		return
	}

	if outcome.Recorded {
		h.metrics.RecordVote(string(choice), metrics.OutcomeRecorded)
	} else {
		h.metrics.RecordVote(string(choice), metrics.OutcomeAlreadyVoted)
	}

	h.renderFrame(c, outcome.DailyWish, outcome.Recorded)
}

func (h *FrameHandler) renderFrame(c *gin.Context, wish usecasecontract.DailyWish, thanks bool) {
	page, err := render.FrameHTML(render.FrameView{
		BaseURL:      RequestBaseURL(c, h.baseURL),
		WishText:     wish.Text,
		StatsText:    render.StatsText(wish.Tally, wish.Percentages),
		HasVoted:     wish.HasVoted,
		ShowThankYou: thanks,
	})
	if err != nil {
		middleware.Logger(c, h.logger).Errorf("failed to render frame: %v", err)
		ErrorHandler(c, http.StatusInternalServerError, internalServerError)
		return
	}
	c.Data(http.StatusOK, htmlContentType, page)
}
