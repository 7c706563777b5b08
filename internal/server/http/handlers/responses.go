package handlers

import (
	"github.com/innovshop/marketplace/internal/domain/model"
	"github.com/innovshop/marketplace/internal/server/http/dto"
)

func toOrderResponse(order model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:          order.ID,
		Reference:   order.Reference,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount.StringFixed(2),
		Delivery: dto.DeliveryAddress{
			FirstName: order.Delivery.FirstName,
			LastName:  order.Delivery.LastName,
			Street:    order.Delivery.Street,
			ZipCode:   order.Delivery.ZipCode,
			City:      order.Delivery.City,
			Country:   order.Delivery.Country,
			Phone:     order.Delivery.Phone,
		},
		PaymentMethod:  order.PaymentMethod,
		ShippingMethod: order.ShippingMethod,
		CreatedAt:      order.CreatedAt,
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:            item.ID,
			ProductID:     item.ProductID,
			SellerID:      item.SellerID,
			ProductName:   item.ProductName,
			UnitPrice:     item.UnitPrice.StringFixed(2),
			Quantity:      item.Quantity,
			TotalLine:     item.TotalLine.StringFixed(2),
			SelectedColor: item.SelectedColor,
			SelectedSize:  item.SelectedSize,
		})
	}
	for _, lot := range order.Lots {
		resp.Lots = append(resp.Lots, toLotResponse(lot))
	}
	return resp
}

func toLotResponse(lot model.SellerLot) dto.LotResponse {
	return dto.LotResponse{
		ID:        lot.ID,
		OrderID:   lot.OrderID,
		SellerID:  lot.SellerID,
		Status:    string(lot.Status),
		CreatedAt: lot.CreatedAt,
		UpdatedAt: lot.UpdatedAt,
	}
}

func toReviewResponse(review *model.ProductReview) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        review.ID,
		ProductID: review.ProductID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

func toSellerResponse(seller *model.Seller) dto.SellerResponse {
	resp := dto.SellerResponse{
		ID:          seller.ID,
		ShopName:    seller.ShopName,
		Slug:        seller.Slug,
		Status:      string(seller.Status),
		RatingCount: seller.RatingCount,
	}
	if seller.RatingAverage != nil {
		avg := seller.RatingAverage.StringFixed(2)
		resp.RatingAverage = &avg
	}
	return resp
}
