package v1

import (
	"net/http"

	"go-refolio-backend/internal/delivery/http/response"
	"go-refolio-backend/internal/domain"
	"go-refolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	analysisUC domain.TimelineAnalysisUsecase
}

func NewAnalysisHandler(r *gin.RouterGroup, analysisUC domain.TimelineAnalysisUsecase) {
	handler := &AnalysisHandler{analysisUC: analysisUC}

	analysis := r.Group("/analysis")
	{
		analysis.POST("/gaps", handler.AnalyzeGaps)
		analysis.POST("/timeline-changed", handler.TimelineChanged)
	}
}

// AnalyzeGaps godoc
// @Summary      Detect career gaps in a timeline
// @Description  Analyzes experience and education entries for gaps above the threshold and reconciles them with previously stored gaps
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request  body  domain.GapAnalysisRequest  true  "Timeline entries and existing gaps"
// @Success      200  {object}  response.Response{data=[]domain.CareerGap}
// @Failure      400  {object}  response.Response
// @Router       /analysis/gaps [post]
func (h *AnalysisHandler) AnalyzeGaps(c *gin.Context) {
	var req domain.GapAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	gaps, err := h.analysisUC.AnalyzeTimeline(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Timeline analyzed", gaps)
}

// TimelineChanged godoc
// @Summary      Check whether a timeline changed
// @Description  Compares two timeline snapshots ignoring entry order
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request  body  domain.TimelineChangedRequest  true  "Previous and current timeline snapshots"
// @Success      200  {object}  response.Response{data=map[string]bool}
// @Failure      400  {object}  response.Response
// @Router       /analysis/timeline-changed [post]
func (h *AnalysisHandler) TimelineChanged(c *gin.Context) {
	var req domain.TimelineChangedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	changed, err := h.analysisUC.TimelineChanged(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Timeline compared", gin.H{"changed": changed})
}
