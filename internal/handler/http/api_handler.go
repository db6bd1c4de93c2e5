package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/DailyWish/internal/domain/entity"
	"github.com/mikiasgoitom/DailyWish/internal/handler/http/dto"
	"github.com/mikiasgoitom/DailyWish/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/DailyWish/internal/usecase/contract"
)

// WishAPIHandler exposes the daily wish and tallies as JSON.
type WishAPIHandler struct {
	wishUsecase usecasecontract.IWishUseCase
	logger      usecasecontract.IAppLogger
	now         func() time.Time
}

func NewWishAPIHandler(wishUsecase usecasecontract.IWishUseCase, logger usecasecontract.IAppLogger) *WishAPIHandler {
	return &WishAPIHandler{
		wishUsecase: wishUsecase,
		logger:      logger,
		now:         time.Now,
	}
}

// GetToday handles GET /api/v1/wishes/today?fid=N
func (h *WishAPIHandler) GetToday(c *gin.Context) {
	var q dto.TodayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "fid must be a positive integer")
		return
	}
	var fid *uint64
	if q.FID > 0 {
		fid = &q.FID
	}

	wish, err := h.wishUsecase.GetDailyWish(c.Request.Context(), fid, h.now())
	if err != nil {
		middleware.Logger(c, h.logger).Errorf("failed to load daily wish: %v", err)
		ErrorHandler(c, http.StatusInternalServerError, internalServerError)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToDailyWishResponse(*wish))
}

// GetTally handles GET /api/v1/votes/:date/:index
func (h *WishAPIHandler) GetTally(c *gin.Context) {
	var uri dto.TallyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "date must be YYYY-MM-DD and index a non-negative integer")
		return
	}
	tally, err := h.wishUsecase.GetTally(c.Request.Context(), uri.Date, uri.Index)
	if err != nil {
		status := UsecaseErrorStatus(err)
		if status == http.StatusInternalServerError {
			middleware.Logger(c, h.logger).Errorf("failed to read tally %s/%d: %v", uri.Date, uri.Index, err)
			ErrorHandler(c, status, internalServerError)
			return
		}
		ErrorHandler(c, status, err.Error())
		return
	}

	SuccessHandler(c, http.StatusOK, dto.TallyResponse{
		Date:        tally.Date,
		Index:       tally.WishIndex,
		Likes:       tally.Likes,
		Dislikes:    tally.Dislikes,
		TotalVotes:  tally.Total(),
		Percentages: entity.CalculateVotePercentages(tally.Likes, tally.Dislikes),
	})
}
