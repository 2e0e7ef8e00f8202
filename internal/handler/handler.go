package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/repository"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/service"
)

// Handlers is the handler collection wired into the router.
type Handlers struct {
	Auth       *AuthHandler
	User       *UserHandler
	Customer   *CustomerHandler
	Order      *OrderHandler
	Product    *ProductHandler
	Store      *StoreHandler
	City       *CityHandler
	Route      *RouteHandler
	Train      *TrainHandler
	Truck      *TruckHandler
	Allocation *AllocationHandler
	Report     *ReportHandler
}

func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.Auth),
		User:       NewUserHandler(svc.User),
		Customer:   NewCustomerHandler(svc.Customer),
		Order:      NewOrderHandler(svc.Order, svc.Capacity),
		Product:    NewProductHandler(svc.Product),
		Store:      NewStoreHandler(svc.Store, svc.Order),
		City:       NewCityHandler(svc.City),
		Route:      NewRouteHandler(svc.Route),
		Train:      NewTrainHandler(svc.Train, svc.Capacity),
		Truck:      NewTruckHandler(svc.Truck),
		Allocation: NewAllocationHandler(svc.Allocation),
		Report:     NewReportHandler(svc.Report),
	}
}

// Response is the common response envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error writes a response whose HTTP status is the leading three digits of
// the business code.
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 40100, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, 40300, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// writeServiceError maps the well-known service errors onto the envelope.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidRefresh):
		Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrLeadTimeTooShort),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrUserNameTaken),
		errors.Is(err, service.ErrPhoneNumberTaken),
		errors.Is(err, service.ErrLicenseNumTaken),
		errors.Is(err, service.ErrInsufficientCapacity):
		BadRequest(c, err.Error())
	default:
		InternalError(c, err.Error())
	}
}

// GetUserID returns the authenticated subject id from the request context.
func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}

// GetRole returns the authenticated role from the request context.
func GetRole(c *gin.Context) string {
	role, _ := c.Get("role")
	if r, ok := role.(string); ok {
		return r
	}
	return ""
}
