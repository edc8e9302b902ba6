// Package database - Index bổ sung (nested fields, compound) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"cashmitra/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateAdditionalIndexes tạo các index bổ sung cho các collection chính.
// Gọi một lần khi khởi động server, sau khi registry collection đã sẵn sàng.
func CreateAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// products: slug unique — tra cứu trang sản phẩm
	products := db.Collection(global.MongoDB_ColNames.Products)
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetName("product_slug_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// products: (categoryId, status) — danh sách sản phẩm theo danh mục
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "categoryId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("product_category_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// categories: slug unique
	categories := db.Collection(global.MongoDB_ColNames.Categories)
	if _, err := categories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetName("category_slug_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// questions: key unique — questionKey dùng làm khóa tham chiếu trong deductions
	questions := db.Collection(global.MongoDB_ColNames.Questions)
	if _, err := questions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetName("question_key_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// questionnaires: (category, isDefault) — tra bộ mặc định của nhóm thiết bị
	questionnaires := db.Collection(global.MongoDB_ColNames.Questionnaires)
	if _, err := questionnaires.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "category", Value: 1},
			{Key: "isDefault", Value: 1},
		},
		Options: options.Index().SetName("questionnaire_category_default"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// partners: email unique sparse
	partners := db.Collection(global.MongoDB_ColNames.Partners)
	if _, err := partners.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("partner_email_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// pickup_orders: (schedule.date, schedule.slot) — truy vấn đơn theo ngày và khung giờ
	pickups := db.Collection(global.MongoDB_ColNames.PickupOrders)
	if _, err := pickups.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "schedule.date", Value: 1},
			{Key: "schedule.slot", Value: 1},
		},
		Options: options.Index().SetName("pickup_date_slot"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// pickup_orders: orderCode unique
	if _, err := pickups.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "orderCode", Value: 1}},
		Options: options.Index().SetName("pickup_order_code_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// sell_sessions: (status, expiresAt) — worker dọn phiên hết hạn quét theo cặp này
	sessions := db.Collection(global.MongoDB_ColNames.SellSessions)
	if _, err := sessions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "expiresAt", Value: 1},
		},
		Options: options.Index().SetName("session_status_expires"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// sell_sessions: sessionKey unique
	if _, err := sessions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "sessionKey", Value: 1}},
		Options: options.Index().SetName("session_key_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// assets: publicId unique
	assets := db.Collection(global.MongoDB_ColNames.Assets)
	if _, err := assets.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "publicId", Value: 1}},
		Options: options.Index().SetName("asset_public_id_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
