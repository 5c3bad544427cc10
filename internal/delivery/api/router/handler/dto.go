package handler

import (
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
)

// Response DTOs. Entities stay free of JSON tags; these types fix the wire
// shape and keep secrets such as password hashes out of responses.

type UserResponse struct {
	ID              uuid.UUID                       `json:"id"`
	Email           string                          `json:"email"`
	Name            string                          `json:"name"`
	AvatarURL       string                          `json:"avatarUrl,omitempty"`
	Role            entity.Role                     `json:"role"`
	Locked          bool                            `json:"locked"`
	Customer        *CustomerProfileResponse        `json:"customer,omitempty"`
	Store           *StoreProfileResponse           `json:"store,omitempty"`
	DeliveryPartner *DeliveryPartnerProfileResponse `json:"deliveryPartner,omitempty"`
	CreatedAt       time.Time                       `json:"createdAt"`
	UpdatedAt       time.Time                       `json:"updatedAt"`
}

type CustomerProfileResponse struct {
	PhoneNumber string     `json:"phoneNumber"`
	Addresses   []string   `json:"addresses"`
	CartID      *uuid.UUID `json:"cartId,omitempty"`
}

type StoreProfileResponse struct {
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
}

type DeliveryPartnerProfileResponse struct {
	PhoneNumber  string `json:"phoneNumber"`
	VehiclePlate string `json:"vehiclePlate"`
}

func toUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	resp := &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
		Locked:    u.Locked,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Customer != nil {
		resp.Customer = &CustomerProfileResponse{
			PhoneNumber: u.Customer.PhoneNumber,
			Addresses:   u.Customer.Addresses,
		}
		if u.Customer.Cart != nil {
			resp.Customer.CartID = &u.Customer.Cart.ID
		}
	}
	if u.Store != nil {
		resp.Store = &StoreProfileResponse{
			Description: u.Store.Description,
			Address:     u.Store.Address,
			City:        u.Store.City,
		}
	}
	if u.DeliveryPartner != nil {
		resp.DeliveryPartner = &DeliveryPartnerProfileResponse{
			PhoneNumber:  u.DeliveryPartner.PhoneNumber,
			VehiclePlate: u.DeliveryPartner.VehiclePlate,
		}
	}

	return resp
}

type LoginResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         *UserResponse `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	StoreID     uuid.UUID       `json:"storeId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    entity.Category `json:"category"`
	Price       float64         `json:"price"`
	Quantity    int             `json:"quantity"`
	Images      []string        `json:"images"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func toProductResponse(p *entity.Product) *ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}

	return &ProductResponse{
		ID:          p.ID,
		StoreID:     p.StoreID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Images:      images,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type ProductDetailResponse struct {
	*ProductResponse
	RatingAverage float64 `json:"ratingAverage"`
	RatingCount   int64   `json:"ratingCount"`
}

func toProductDetailResponse(d *usecase.ProductDetail) *ProductDetailResponse {
	return &ProductDetailResponse{
		ProductResponse: toProductResponse(d.Product),
		RatingAverage:   d.Rating.Average,
		RatingCount:     d.Rating.Count,
	}
}

type OrderItemResponse struct {
	ProductID   *uuid.UUID `json:"productId"`
	ProductName string     `json:"productName"`
	UnitPrice   float64    `json:"unitPrice"`
	Quantity    int        `json:"quantity"`
}

type OrderResponse struct {
	ID                uuid.UUID            `json:"id"`
	OrderCode         string               `json:"orderCode"`
	Status            entity.OrderStatus   `json:"status"`
	StoreID           uuid.UUID            `json:"storeId"`
	CustomerID        uuid.UUID            `json:"customerId"`
	CustomerName      string               `json:"customerName"`
	DeliveryPartnerID *uuid.UUID           `json:"deliveryPartnerId,omitempty"`
	ShippingAddress   string               `json:"shippingAddress"`
	Items             []*OrderItemResponse `json:"items"`
	Subtotal          float64              `json:"subtotal"`
	Discount          float64              `json:"discount"`
	Total             float64              `json:"total"`
	VoucherItemID     *uuid.UUID           `json:"voucherItemId,omitempty"`
	CouponItemID      *uuid.UUID           `json:"couponItemId,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}

func toOrderResponse(o *entity.Order) *OrderResponse {
	items := make([]*OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, &OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}

	return &OrderResponse{
		ID:                o.ID,
		OrderCode:         o.Code,
		Status:            o.Status,
		StoreID:           o.StoreID,
		CustomerID:        o.CustomerID,
		CustomerName:      o.CustomerName,
		DeliveryPartnerID: o.DeliveryPartnerID,
		ShippingAddress:   o.ShippingAddress,
		Items:             items,
		Subtotal:          o.Subtotal,
		Discount:          o.Discount,
		Total:             o.Total,
		VoucherItemID:     o.VoucherItemID,
		CouponItemID:      o.CouponItemID,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

type OrderCountResponse struct {
	Total    int64                        `json:"total"`
	ByStatus map[entity.OrderStatus]int64 `json:"byStatus"`
}

type PromotionSetResponse struct {
	ID                uuid.UUID            `json:"id"`
	Kind              entity.PromotionKind `json:"kind"`
	Code              string               `json:"code"`
	Description       string               `json:"description"`
	Percent           float64              `json:"percent"`
	StoreID           *uuid.UUID           `json:"storeId,omitempty"`
	StartAt           time.Time            `json:"startAt"`
	ExpiredAt         time.Time            `json:"expiredAt"`
	QuantityAvailable int64                `json:"quantityAvailable"`
	QuantityTotal     int64                `json:"quantityTotal"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}

func toPromotionSetResponse(s *entity.PromotionSet) *PromotionSetResponse {
	if s == nil {
		return nil
	}

	return &PromotionSetResponse{
		ID:                s.ID,
		Kind:              s.Kind,
		Code:              s.Code,
		Description:       s.Description,
		Percent:           s.Percent,
		StoreID:           s.StoreID,
		StartAt:           s.StartAt,
		ExpiredAt:         s.ExpiredAt,
		QuantityAvailable: s.QuantityAvailable,
		QuantityTotal:     s.QuantityTotal,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

type PromotionItemResponse struct {
	ID         uuid.UUID  `json:"id"`
	SetID      uuid.UUID  `json:"setId"`
	CustomerID *uuid.UUID `json:"customerId"`
	Used       bool       `json:"used"`
	ClaimedAt  *time.Time `json:"claimedAt,omitempty"`
	UsedAt     *time.Time `json:"usedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func toPromotionItemResponse(i *entity.PromotionItem) *PromotionItemResponse {
	return &PromotionItemResponse{
		ID:         i.ID,
		SetID:      i.SetID,
		CustomerID: i.CustomerID,
		Used:       i.Used,
		ClaimedAt:  i.ClaimedAt,
		UsedAt:     i.UsedAt,
		CreatedAt:  i.CreatedAt,
	}
}

type ClaimedPromotionResponse struct {
	Item *PromotionItemResponse `json:"item"`
	Set  *PromotionSetResponse  `json:"set"`
}

func toClaimedPromotionResponse(cp *entity.ClaimedPromotion) *ClaimedPromotionResponse {
	return &ClaimedPromotionResponse{
		Item: toPromotionItemResponse(cp.Item),
		Set:  toPromotionSetResponse(cp.Set),
	}
}

type ReviewResponse struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"productId"`
	CustomerID   uuid.UUID `json:"customerId"`
	CustomerName string    `json:"customerName"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	Images       []string  `json:"images"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toReviewResponse(r *entity.Review) *ReviewResponse {
	images := r.Images
	if images == nil {
		images = []string{}
	}

	return &ReviewResponse{
		ID:           r.ID,
		ProductID:    r.ProductID,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Comment:      r.Comment,
		Images:       images,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type FeedbackResponse struct {
	ID         uuid.UUID   `json:"id"`
	AuthorID   uuid.UUID   `json:"authorId"`
	AuthorRole entity.Role `json:"authorRole"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	Resolved   bool        `json:"resolved"`
	ResolvedAt *time.Time  `json:"resolvedAt,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}

func toFeedbackResponse(f *entity.Feedback) *FeedbackResponse {
	return &FeedbackResponse{
		ID:         f.ID,
		AuthorID:   f.AuthorID,
		AuthorRole: f.AuthorRole,
		Title:      f.Title,
		Content:    f.Content,
		Resolved:   f.Resolved,
		ResolvedAt: f.ResolvedAt,
		CreatedAt:  f.CreatedAt,
	}
}

type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	OrderID   *uuid.UUID `json:"orderId,omitempty"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Read      bool       `json:"read"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toNotificationResponse(n *entity.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		OrderID:   n.OrderID,
		Title:     n.Title,
		Content:   n.Content,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

type DeviceResponse struct {
	ID         uuid.UUID `json:"id"`
	DeviceID   string    `json:"deviceId"`
	Platform   string    `json:"platform"`
	IsActive   bool      `json:"isActive"`
	LastSeenAt time.Time `json:"lastSeenAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toDeviceResponse(d *entity.UserDevice) *DeviceResponse {
	return &DeviceResponse{
		ID:         d.ID,
		DeviceID:   d.DeviceID,
		Platform:   string(d.Platform),
		IsActive:   d.IsActive,
		LastSeenAt: d.LastSeenAt,
		CreatedAt:  d.CreatedAt,
	}
}

type SearchHistoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Keyword   string    `json:"keyword"`
	CreatedAt time.Time `json:"createdAt"`
}

func toSearchHistoryResponse(s *entity.SearchHistory) *SearchHistoryResponse {
	return &SearchHistoryResponse{
		ID:        s.ID,
		Keyword:   s.Keyword,
		CreatedAt: s.CreatedAt,
	}
}

// mapSlice converts a slice of entities to DTOs.
func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}

	return out
}
