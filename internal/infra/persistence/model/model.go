// Package model holds the GORM persistence models of the marketplace schema.
package model

// All lists every model in dependency order for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&CustomerProfileModel{},
		&CartModel{},
		&StoreProfileModel{},
		&DeliveryPartnerProfileModel{},
		&RefreshTokenModel{},
		&DeviceModel{},
		&ProductModel{},
		&ReviewModel{},
		&FeedbackModel{},
		&OrderModel{},
		&OrderItemModel{},
		&PromotionSetModel{},
		&PromotionItemModel{},
		&NotificationModel{},
		&SearchHistoryModel{},
	}
}
