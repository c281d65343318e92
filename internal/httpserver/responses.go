package httpserver

import (
	"time"

	"shopfront/internal/domain"
)

// Money travels as fixed two-place decimal strings, never JSON floats.

type lineItemResponse struct {
	ProductID int64  `json:"productId"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

type pricedCartResponse struct {
	Items    []lineItemResponse `json:"items"`
	Subtotal string             `json:"subtotal"`
	Shipping string             `json:"shipping"`
	Tax      string             `json:"tax"`
	Total    string             `json:"total"`
}

func toPricedCartResponse(cart domain.PricedCart) pricedCartResponse {
	items := make([]lineItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, lineItemResponse{
			ProductID: item.Product.ID,
			Slug:      item.Product.Slug,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			LineTotal: item.LineTotal.StringFixed(2),
		})
	}
	return pricedCartResponse{
		Items:    items,
		Subtotal: cart.Subtotal.StringFixed(2),
		Shipping: cart.Shipping.StringFixed(2),
		Tax:      cart.Tax.StringFixed(2),
		Total:    cart.Total.StringFixed(2),
	}
}

type orderItemResponse struct {
	ProductID *int64 `json:"productId,omitempty"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

type orderResponse struct {
	ID         int64               `json:"id"`
	Status     string              `json:"status"`
	FullName   string              `json:"fullName"`
	Email      string              `json:"email"`
	Address    string              `json:"address"`
	City       string              `json:"city"`
	PostalCode string              `json:"postalCode"`
	Country    string              `json:"country"`
	Subtotal   string              `json:"subtotal"`
	Shipping   string              `json:"shipping"`
	Tax        string              `json:"tax"`
	Total      string              `json:"total"`
	CreatedAt  time.Time           `json:"createdAt"`
	Items      []orderItemResponse `json:"items"`
}

func toOrderResponse(order domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Quantity:  item.Quantity,
		})
	}
	return orderResponse{
		ID:         order.ID,
		Status:     order.Status,
		FullName:   order.FullName,
		Email:      order.Email,
		Address:    order.Address,
		City:       order.City,
		PostalCode: order.PostalCode,
		Country:    order.Country,
		Subtotal:   order.Subtotal.StringFixed(2),
		Shipping:   order.Shipping.StringFixed(2),
		Tax:        order.Tax.StringFixed(2),
		Total:      order.Total.StringFixed(2),
		CreatedAt:  order.CreatedAt,
		Items:      items,
	}
}
