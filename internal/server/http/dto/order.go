package dto

import "time"

// DeliveryAddress is the address payload snapshotted onto the order.
type DeliveryAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Street    string `json:"street"`
	ZipCode   string `json:"zip_code"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// PlaceOrderRequest describes the checkout payload.
type PlaceOrderRequest struct {
	CartID         int64           `json:"cart_id"`
	Delivery       DeliveryAddress `json:"delivery"`
	PaymentMethod  string          `json:"payment_method"`
	ShippingMethod string          `json:"shipping_method"`
}

// OrderStatusRequest carries a requested order status value.
type OrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse describes one order line.
type OrderItemResponse struct {
	ID            int64   `json:"id"`
	ProductID     *int64  `json:"product_id"`
	SellerID      *int64  `json:"seller_id"`
	ProductName   string  `json:"product_name"`
	UnitPrice     string  `json:"unit_price"`
	Quantity      int     `json:"quantity"`
	TotalLine     string  `json:"total_line"`
	SelectedColor *string `json:"selected_color,omitempty"`
	SelectedSize  *string `json:"selected_size,omitempty"`
}

// LotResponse describes one seller lot of an order.
type LotResponse struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	SellerID  *int64    `json:"seller_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderResponse describes an order with its items and lots.
type OrderResponse struct {
	ID             int64               `json:"id"`
	Reference      string              `json:"reference"`
	Status         string              `json:"status"`
	TotalAmount    string              `json:"total_amount"`
	Delivery       DeliveryAddress     `json:"delivery"`
	PaymentMethod  string              `json:"payment_method,omitempty"`
	ShippingMethod string              `json:"shipping_method,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	Items          []OrderItemResponse `json:"items,omitempty"`
	Lots           []LotResponse       `json:"lots,omitempty"`
}
