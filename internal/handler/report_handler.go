package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/service"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func quarterParams(c *gin.Context) (int, int, bool) {
	now := time.Now()
	year := now.Year()
	quarter := (int(now.Month())-1)/3 + 1

	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 2000 || v > 2100 {
			BadRequest(c, "year must be a four digit year")
			return 0, 0, false
		}
		year = v
	}
	if raw := c.Query("quarter"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 4 {
			BadRequest(c, "quarter must be between 1 and 4")
			return 0, 0, false
		}
		quarter = v
	}
	return year, quarter, true
}

func monthParams(c *gin.Context) (int, time.Month, bool) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 2000 || v > 2100 {
			BadRequest(c, "year must be a four digit year")
			return 0, 0, false
		}
		year = v
	}
	if raw := c.Query("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 12 {
			BadRequest(c, "month must be between 1 and 12")
			return 0, 0, false
		}
		month = time.Month(v)
	}
	return year, month, true
}

// QuarterlySales GET /reports/quarterly-sales?year=2026&quarter=2
func (h *ReportHandler) QuarterlySales(c *gin.Context) {
	year, quarter, ok := quarterParams(c)
	if !ok {
		return
	}
	report, err := h.svc.QuarterlySales(c.Request.Context(), year, quarter)
	if err != nil {
		InternalError(c, "failed to build sales report: "+err.Error())
		return
	}
	Success(c, report)
}

// TopItems GET /reports/top-items?year=2026&quarter=2&limit=10
func (h *ReportHandler) TopItems(c *gin.Context) {
	year, quarter, ok := quarterParams(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	items, err := h.svc.TopItems(c.Request.Context(), year, quarter, limit)
	if err != nil {
		InternalError(c, "failed to build top items report: "+err.Error())
		return
	}
	Success(c, gin.H{"items": items})
}

// SalesByCity GET /reports/sales-by-city
func (h *ReportHandler) SalesByCity(c *gin.Context) {
	year, quarter, ok := quarterParams(c)
	if !ok {
		return
	}
	rows, err := h.svc.SalesByCity(c.Request.Context(), year, quarter)
	if err != nil {
		InternalError(c, "failed to build city sales report: "+err.Error())
		return
	}
	Success(c, gin.H{"items": rows})
}

// SalesByRoute GET /reports/sales-by-route
func (h *ReportHandler) SalesByRoute(c *gin.Context) {
	year, quarter, ok := quarterParams(c)
	if !ok {
		return
	}
	rows, err := h.svc.SalesByRoute(c.Request.Context(), year, quarter)
	if err != nil {
		InternalError(c, "failed to build route sales report: "+err.Error())
		return
	}
	Success(c, gin.H{"items": rows})
}

// DriverHours GET /reports/driver-hours?year=2026&month=8
func (h *ReportHandler) DriverHours(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}
	rows, err := h.svc.DriverWorkHours(c.Request.Context(), year, month)
	if err != nil {
		InternalError(c, "failed to build driver hours report: "+err.Error())
		return
	}
	Success(c, gin.H{"items": rows})
}

// AssistantHours GET /reports/assistant-hours
func (h *ReportHandler) AssistantHours(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}
	rows, err := h.svc.AssistantWorkHours(c.Request.Context(), year, month)
	if err != nil {
		InternalError(c, "failed to build assistant hours report: "+err.Error())
		return
	}
	Success(c, gin.H{"items": rows})
}

// TruckUsage GET /reports/truck-usage
func (h *ReportHandler) TruckUsage(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}
	rows, err := h.svc.TruckUsage(c.Request.Context(), year, month)
	if err != nil {
		InternalError(c, "failed to build truck usage report: "+err.Error())
		return
	}
	Success(c, gin.H{"items": rows})
}

// CustomerOrders GET /reports/customer-orders
func (h *ReportHandler) CustomerOrders(c *gin.Context) {
	year, quarter, ok := quarterParams(c)
	if !ok {
		return
	}
	rows, err := h.svc.CustomerOrderReport(c.Request.Context(), year, quarter)
	if err != nil {
		InternalError(c, "failed to build customer order report: "+err.Error())
		return
	}
	Success(c, gin.H{"items": rows})
}
