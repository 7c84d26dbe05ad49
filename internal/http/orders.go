package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
)

const orderNotFound = "Order not found"

type createOrderReq struct {
	UserID      string            `json:"userId" binding:"required"`
	Items       []domain.LineItem `json:"items" binding:"required"`
	TotalAmount *float64          `json:"totalAmount" binding:"required"`
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// @Summary List orders
// @Tags orders
// @Produce json
// @Success 200 {object} envelope{data=[]domain.Order}
// @Router /api/orders [get]
func (s *Server) listOrders(c *gin.Context) {
	list, err := s.orders.ListOrders(c.Request.Context())
	if err != nil {
		fail(c, err, orderNotFound)
		return
	}
	respondList(c, list)
}

// @Summary Get order by id
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} envelope{data=domain.Order}
// @Failure 404 {object} envelope
// @Router /api/orders/{id} [get]
func (s *Server) getOrder(c *gin.Context) {
	o, err := s.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, orderNotFound)
		return
	}
	respond(c, http.StatusOK, o)
}

// @Summary List orders of a user
// @Tags orders
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} envelope{data=[]domain.Order}
// @Router /api/orders/user/{userId} [get]
func (s *Server) listUserOrders(c *gin.Context) {
	list, err := s.orders.ListUserOrders(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, err, orderNotFound)
		return
	}
	respondList(c, list)
}

// @Summary Create order
// @Description The order starts as pending; items and total are stored as sent.
// @Tags orders
// @Accept json
// @Produce json
// @Param input body createOrderReq true "Order"
// @Success 201 {object} envelope{data=domain.Order}
// @Failure 400 {object} envelope
// @Router /api/orders [post]
func (s *Server) createOrder(c *gin.Context) {
	var req createOrderReq
	if !bindRequired(c, &req, "Missing required fields: userId, items (array), totalAmount") {
		return
	}
	o, err := s.orders.CreateOrder(c.Request.Context(), req.UserID, req.Items, *req.TotalAmount)
	if err != nil {
		fail(c, err, orderNotFound)
		return
	}
	respond(c, http.StatusCreated, o)
}

// @Summary Update order status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param input body updateStatusReq true "New status"
// @Success 200 {object} envelope{data=domain.Order}
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /api/orders/{id}/status [patch]
func (s *Server) updateOrderStatus(c *gin.Context) {
	var req updateStatusReq
	if !bindRequired(c, &req, "Missing required field: status") {
		return
	}
	o, err := s.orders.UpdateStatus(c.Request.Context(), c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		fail(c, err, orderNotFound)
		return
	}
	respond(c, http.StatusOK, o)
}
