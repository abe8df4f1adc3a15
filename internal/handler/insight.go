package handler

import (
	"net/http"

	"github.com/ravindraogg/DUHACKS/internal/insight"
	"github.com/ravindraogg/DUHACKS/internal/util"

	"github.com/gin-gonic/gin"
)

// InsightHandler proxies the analysis page's AI insight requests.
type InsightHandler struct {
	Client *insight.Client
}

func NewInsightHandler(client *insight.Client) *InsightHandler {
	return &InsightHandler{Client: client}
}

type generateInsightsReq struct {
	Categories []string  `json:"categories" binding:"required"`
	Amounts    []float64 `json:"amounts" binding:"required"`
}

// Generate forwards the per-category totals to the text-generation API and
// returns whatever it says. Best effort: no retry, a failure is just a 500.
func (h *InsightHandler) Generate(c *gin.Context) {
	var req generateInsightsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, http.StatusBadRequest, "Invalid insights request")
		return
	}
	if len(req.Categories) == 0 {
		util.Fail(c, http.StatusBadRequest, "Invalid insights request")
		return
	}

	insights, err := h.Client.Generate(c.Request.Context(), req.Categories, req.Amounts)
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "Unable to generate insights at this time")
		return
	}

	util.OK(c, util.Response{"insights": insights})
}
