package basesvc

import (
	"context"
	"fmt"
	"cashmitra/internal/common"
	"cashmitra/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RelationshipCheck dinh nghia mot quan he can kiem tra
type RelationshipCheck struct {
	CollectionName string
	FieldName      string
	ErrorMessage   string
	Optional       bool
}

// CheckRelationshipExists kiem tra co record nao trong collection khac dang tro toi record nay khong
func CheckRelationshipExists(ctx context.Context, recordID primitive.ObjectID, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Khong tim thay collection '%s' de kiem tra quan he", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		filter := bson.M{check.FieldName: recordID}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = fmt.Sprintf("Khong the xoa record vi co %d record trong collection '%s' dang tham chieu toi record nay", count, check.CollectionName)
			} else {
				errorMsg = fmt.Sprintf(check.ErrorMessage, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, nil)
		}
	}
	return nil
}

// CheckRelationshipExistsWithFilter kiem tra quan he voi filter tuy chinh
func CheckRelationshipExistsWithFilter(ctx context.Context, filter bson.M, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Khong tim thay collection '%s' de kiem tra quan he", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = fmt.Sprintf("Khong the xoa record vi co %d record trong collection '%s' dang tham chieu toi record nay", count, check.CollectionName)
			} else {
				errorMsg = fmt.Sprintf(check.ErrorMessage, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, nil)
		}
	}
	return nil
}

// GetRelationshipCount tra ve so luong record dang tham chieu toi record nay
func GetRelationshipCount(ctx context.Context, recordID primitive.ObjectID, collectionName, fieldName string) (int64, error) {
	collection, exists := global.RegistryCollections.Get(collectionName)
	if !exists {
		return 0, common.NewError(common.ErrCodeInternalServer, fmt.Sprintf("Khong tim thay collection '%s'", collectionName), common.StatusInternalServerError, nil)
	}
	filter := bson.M{fieldName: recordID}
	return collection.CountDocuments(ctx, filter)
}

// ValidateBeforeDeleteCategory kiem tra cac quan he cua Category truoc khi xoa
func ValidateBeforeDeleteCategory(ctx context.Context, categoryID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Products, FieldName: "categoryId", ErrorMessage: "Khong the xoa danh muc vi co %d san pham thuoc danh muc nay. Vui long chuyen cac san pham sang danh muc khac truoc."},
		{CollectionName: global.MongoDB_ColNames.Accessories, FieldName: "categoryId", ErrorMessage: "Khong the xoa danh muc vi co %d phu kien thuoc danh muc nay.", Optional: true},
	}
	return CheckRelationshipExists(ctx, categoryID, checks)
}

// ValidateBeforeDeleteProduct kiem tra cac quan he cua Product truoc khi xoa
func ValidateBeforeDeleteProduct(ctx context.Context, productID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.SellSessions, FieldName: "productId", ErrorMessage: "Khong the xoa san pham vi co %d phien ban may dang tham chieu toi.", Optional: true},
		{CollectionName: global.MongoDB_ColNames.PickupOrders, FieldName: "productId", ErrorMessage: "Khong the xoa san pham vi co %d don lay hang dang tham chieu toi.", Optional: true},
	}
	return CheckRelationshipExists(ctx, productID, checks)
}

// ValidateBeforeDeleteQuestion kiem tra Question co dang duoc san pham nao tham chieu qua deductions khong
func ValidateBeforeDeleteQuestion(ctx context.Context, questionKey string) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Products, FieldName: "deductions.questionKey", ErrorMessage: "Khong the xoa cau hoi vi co %d san pham dang dung cau hoi nay trong bang tru gia."},
	}
	return CheckRelationshipExistsWithFilter(ctx, bson.M{"deductions.questionKey": questionKey}, checks)
}
