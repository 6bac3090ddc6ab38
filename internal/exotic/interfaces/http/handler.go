// Package http 奇异期权估值服务接口
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/exoticpricing/internal/exotic/application"
	"github.com/wyfcoding/exoticpricing/internal/exotic/domain"
)

type Handler struct {
	service *application.PricingService
}

func NewHandler(service *application.PricingService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/exotic")
	{
		g.POST("/price", h.Price)
		g.POST("/sweep", h.Sweep)
		g.GET("/valuations/:symbol/latest", h.GetLatest)
		g.GET("/valuations/:symbol/history", h.GetHistory)
	}
}

type PriceReq struct {
	Symbol           string  `json:"symbol" binding:"required"`
	OptionType       string  `json:"option_type" binding:"required"`
	BarrierDirection string  `json:"barrier_direction" binding:"required"`
	StrikePrice      float64 `json:"strike_price" binding:"required,gt=0"`
	BarrierPrice     float64 `json:"barrier_price" binding:"required,gt=0"`
	InitialPrice     float64 `json:"initial_price"`
	RiskFreeRate     float64 `json:"risk_free_rate"`
	Volatility       float64 `json:"volatility"`
	Horizon          float64 `json:"horizon" binding:"required,gt=0"`
	StepSize         float64 `json:"step_size" binding:"required,gt=0"`
	PathCount        int     `json:"path_count" binding:"required,gte=1"`
	Seed             int64   `json:"seed"`
}

func (h *Handler) Price(c *gin.Context) {
	var req PriceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cmd := application.PriceExoticCommand{
		Symbol:           req.Symbol,
		OptionType:       req.OptionType,
		BarrierDirection: req.BarrierDirection,
		StrikePrice:      req.StrikePrice,
		BarrierPrice:     req.BarrierPrice,
		InitialPrice:     req.InitialPrice,
		RiskFreeRate:     req.RiskFreeRate,
		Volatility:       req.Volatility,
		Horizon:          req.Horizon,
		StepSize:         req.StepSize,
		PathCount:        req.PathCount,
		Seed:             req.Seed,
	}

	run, err := h.service.PriceExotic(c.Request.Context(), cmd)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"symbol":          run.Symbol,
		"seed":            run.Seed,
		"path_count":      run.PathCount,
		"asian_price":     run.AsianPrice.String(),
		"barrier_price":   run.BarrierOutPrice.String(),
		"elapsed_seconds": run.ElapsedSeconds,
	})
}

type SweepReq struct {
	Symbol           string  `json:"symbol" binding:"required"`
	OptionType       string  `json:"option_type" binding:"required"`
	BarrierDirection string  `json:"barrier_direction" binding:"required"`
	StrikePrice      float64 `json:"strike_price" binding:"required,gt=0"`
	BarrierPrice     float64 `json:"barrier_price" binding:"required,gt=0"`
	InitialPrice     float64 `json:"initial_price"`
	RiskFreeRate     float64 `json:"risk_free_rate"`
	Volatility       float64 `json:"volatility"`
	Horizon          float64 `json:"horizon" binding:"required,gt=0"`
	StepSize         float64 `json:"step_size" binding:"required,gt=0"`
	PathCounts       []int   `json:"path_counts" binding:"required,min=1"`
	Seed             int64   `json:"seed"`
}

func (h *Handler) Sweep(c *gin.Context) {
	var req SweepReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cmd := application.SweepCommand{
		Symbol:           req.Symbol,
		OptionType:       req.OptionType,
		BarrierDirection: req.BarrierDirection,
		StrikePrice:      req.StrikePrice,
		BarrierPrice:     req.BarrierPrice,
		InitialPrice:     req.InitialPrice,
		RiskFreeRate:     req.RiskFreeRate,
		Volatility:       req.Volatility,
		Horizon:          req.Horizon,
		StepSize:         req.StepSize,
		PathCounts:       req.PathCounts,
		Seed:             req.Seed,
	}

	records, err := h.service.RunConvergenceSweep(c.Request.Context(), cmd)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (h *Handler) GetLatest(c *gin.Context) {
	symbol := c.Param("symbol")
	dto, err := h.service.GetLatest(c.Request.Context(), symbol)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *Handler) GetHistory(c *gin.Context) {
	symbol := c.Param("symbol")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	dtos, err := h.service.GetHistory(c.Request.Context(), symbol, limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valuations": dtos})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidParameter):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrValuationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
