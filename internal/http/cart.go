package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addCartItemReq struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required"`
}

// @Summary Get cart
// @Description Unknown users get an empty cart.
// @Tags cart
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} envelope{data=domain.Cart}
// @Router /api/cart/{userId} [get]
func (s *Server) getCart(c *gin.Context) {
	cart, err := s.carts.GetCart(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, err, productNotFound)
		return
	}
	respond(c, http.StatusOK, cart)
}

// @Summary Add item to cart
// @Description Adding a product already in the cart increases its quantity.
// @Tags cart
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param input body addCartItemReq true "Item"
// @Success 200 {object} envelope{data=domain.Cart}
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /api/cart/{userId}/items [post]
func (s *Server) addCartItem(c *gin.Context) {
	var req addCartItemReq
	if !bindRequired(c, &req, "Missing required fields: productId, quantity") {
		return
	}
	cart, err := s.carts.AddItem(c.Request.Context(), c.Param("userId"), req.ProductID, req.Quantity)
	if err != nil {
		fail(c, err, productNotFound)
		return
	}
	respond(c, http.StatusOK, cart)
}

// @Summary Remove item from cart
// @Tags cart
// @Produce json
// @Param userId path string true "User ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} envelope{data=domain.Cart}
// @Router /api/cart/{userId}/items/{productId} [delete]
func (s *Server) removeCartItem(c *gin.Context) {
	cart, err := s.carts.RemoveItem(c.Request.Context(), c.Param("userId"), c.Param("productId"))
	if err != nil {
		fail(c, err, productNotFound)
		return
	}
	respond(c, http.StatusOK, cart)
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} envelope{data=domain.Cart}
// @Router /api/cart/{userId} [delete]
func (s *Server) clearCart(c *gin.Context) {
	cart, err := s.carts.ClearCart(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, err, productNotFound)
		return
	}
	respondMessage(c, http.StatusOK, cart, "Cart cleared")
}
