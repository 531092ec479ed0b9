package handlers

import (
	"net/http"

	"washex/models"
	"washex/services/customer"
	"washex/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerHandler exposes customer CRUD.
type CustomerHandler struct {
	Service customer.CustomerService
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(svc customer.CustomerService) *CustomerHandler {
	return &CustomerHandler{Service: svc}
}

func (h *CustomerHandler) CreateCustomerHandler(c *gin.Context) {
	var payload models.Customer
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid customer payload", err.Error())
		return
	}
	created, err := h.Service.CreateCustomer(c.Request.Context(), payload)
	if err != nil {
		utils.GetLogger().Error("Customer creation failed", zap.Error(err))
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CustomerHandler) GetCustomerHandler(c *gin.Context) {
	cust, err := h.Service.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cust)
}

// GetCustomerByPhoneHandler handles GET /api/customers/phone/:phone,
// the front-desk lookup path.
func (h *CustomerHandler) GetCustomerByPhoneHandler(c *gin.Context) {
	cust, err := h.Service.GetCustomerByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *CustomerHandler) ListCustomersHandler(c *gin.Context) {
	customers, err := h.Service.ListCustomers(c.Request.Context())
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func (h *CustomerHandler) UpdateCustomerHandler(c *gin.Context) {
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload", err.Error())
		return
	}
	cust, err := h.Service.UpdateCustomer(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *CustomerHandler) DeleteCustomerHandler(c *gin.Context) {
	if err := h.Service.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
