package controller

import (
	"mindmate_backend/internal/service"
	"mindmate_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuoteController struct {
	QuoteService *service.QuoteService
}

func NewQuoteController(quoteService *service.QuoteService) *QuoteController {
	return &QuoteController{QuoteService: quoteService}
}

// GetDailyQuote godoc
// @Summary Quote of the day
// @Tags quotes
// @Produce  json
// @Success 200 {object} util.Response{data=model.Quote}
// @Router /daily-quote [get]
func (c *QuoteController) GetDailyQuote(ctx *gin.Context) {
	quote, err := c.QuoteService.GetDailyQuote(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quote)
}
