// Package catalogsvc chứa service data access cho domain catalog
// (Product, Category, Accessory).
package catalogsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "cashmitra/internal/api/base/service"
	catalogmodels "cashmitra/internal/api/catalog/models"
	"cashmitra/internal/common"
	"cashmitra/internal/formstate"
	"cashmitra/internal/global"
)

// ProductService là service quản lý sản phẩm thu mua và luồng form admin
// (template / edit-form / update-field / submit / duplicate).
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Product](collection),
	}, nil
}

// Các trường hệ thống không được sửa qua dot-path từ form
var productProtectedRoots = map[string]bool{
	"id":        true,
	"_id":       true,
	"createdAt": true,
	"updatedAt": true,
	"status":    true,
}

// Template trả về skeleton mặc định của form sản phẩm (màn hình Thêm mới)
func (s *ProductService) Template() formstate.State {
	return formstate.ProductTemplate()
}

// EditForm trả về bản ghi sản phẩm đã reconcile lên template chuẩn:
// mọi nhóm lồng nhau đều tồn tại, các trường danh sách là mảng thật
// và mỗi phần tử mang ID ổn định để form sửa theo ID thay vì theo index.
func (s *ProductService) EditForm(ctx context.Context, id primitive.ObjectID) (formstate.State, error) {
	product, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	raw, err := productToState(product)
	if err != nil {
		return nil, common.ErrInvalidFormat.WithDetail(err.Error())
	}

	merged := formstate.Merge(formstate.ProductTemplate(), raw)
	// Bản ghi lưu images dạng object 3 slot; trải về danh sách theo vị trí
	// trước khi ép mảng, nếu không CoerceList sẽ bỏ hết key không phải số
	merged, err = formstate.FlattenImages(merged)
	if err != nil {
		return nil, err
	}
	merged, err = formstate.CoerceLists(merged, formstate.ProductListPaths()...)
	if err != nil {
		return nil, err
	}
	for _, path := range formstate.ProductListPaths() {
		merged, err = formstate.EnsureElemIDs(merged, path)
		if err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// UpdateField cập nhật một trường của sản phẩm theo dot-path.
// Path được kiểm tra bằng cách áp lên bản ghi hiện tại trước khi ghi $set,
// để path sai cấu trúc (segment rỗng, index âm) bị chặn sớm.
func (s *ProductService) UpdateField(ctx context.Context, id primitive.ObjectID, path string, value interface{}) (catalogmodels.Product, error) {
	var zero catalogmodels.Product

	root := path
	if i := strings.Index(path, "."); i >= 0 {
		root = path[:i]
	}
	if productProtectedRoots[root] {
		return zero, common.ErrInvalidPath.WithMessage("Không thể sửa trường hệ thống %q qua form", root)
	}

	product, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	state, err := productToState(product)
	if err != nil {
		return zero, common.ErrInvalidFormat.WithDetail(err.Error())
	}
	if _, err := formstate.Set(state, path, value); err != nil {
		return zero, err
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{path: value},
	})
}

// Submit nhận cây form đã chỉnh sửa, normalize về wire shape và lưu.
// Form có trường id → update (kèm kiểm tra chuyển trạng thái), không có → insert mới.
func (s *ProductService) Submit(ctx context.Context, form formstate.State) (catalogmodels.Product, error) {
	var zero catalogmodels.Product

	normalized, err := formstate.NormalizeProduct(form)
	if err != nil {
		return zero, err
	}

	name, _ := normalized["name"].(string)
	if strings.TrimSpace(name) == "" {
		return zero, common.ErrRequiredField.WithMessage("Tên sản phẩm không được để trống")
	}

	idHex, _ := normalized["id"].(string)
	delete(normalized, "id")
	delete(normalized, "createdAt")
	delete(normalized, "updatedAt")

	// Update sản phẩm đã có
	if idHex != "" {
		id, err := primitive.ObjectIDFromHex(idHex)
		if err != nil {
			return zero, common.ErrInvalidInput.WithMessage("ID sản phẩm không hợp lệ: %s", idHex)
		}
		existing, err := s.FindOneById(ctx, id)
		if err != nil {
			return zero, err
		}
		if next, ok := normalized["status"].(string); ok && next != "" {
			if err := ValidateProductStatusTransition(existing.Status, next); err != nil {
				return zero, err
			}
		}
		return s.UpdateById(ctx, id, normalized)
	}

	// Insert sản phẩm mới
	if slug, _ := normalized["slug"].(string); strings.TrimSpace(slug) == "" {
		normalized["slug"] = Slugify(name)
	}
	if status, _ := normalized["status"].(string); status == "" {
		normalized["status"] = catalogmodels.ProductStatusDraft
	}

	var product catalogmodels.Product
	if err := stateToStruct(normalized, &product); err != nil {
		return zero, common.ErrInvalidFormat.WithDetail(err.Error())
	}
	return s.InsertOne(ctx, product)
}

// Duplicate nhân bản một sản phẩm: tên thêm " (Copy)", slug thêm "-copy",
// trạng thái về draft. Slug trùng (nhân bản hai lần) trả về lỗi duplicate
// từ unique index.
func (s *ProductService) Duplicate(ctx context.Context, id primitive.ObjectID) (catalogmodels.Product, error) {
	var zero catalogmodels.Product

	product, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	product.ID = primitive.NewObjectID()
	product.Name = product.Name + " (Copy)"
	product.Slug = product.Slug + "-copy"
	product.Status = catalogmodels.ProductStatusDraft
	product.CreatedAt = 0
	product.UpdatedAt = 0

	return s.InsertOne(ctx, product)
}

// UpdateStatus đổi trạng thái vòng đời của sản phẩm theo các cạnh cho phép
func (s *ProductService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (catalogmodels.Product, error) {
	var zero catalogmodels.Product

	existing, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	if err := ValidateProductStatusTransition(existing.Status, status); err != nil {
		return zero, err
	}
	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": status},
	})
}

// ValidateProductStatusTransition kiểm tra cạnh chuyển trạng thái:
// draft→active, active→archived, archived→active (bán lại). Giữ nguyên
// trạng thái hiện tại luôn hợp lệ. archived không bao giờ quay về draft.
func ValidateProductStatusTransition(current, next string) error {
	if current == next {
		return nil
	}
	allowed := map[string]map[string]bool{
		catalogmodels.ProductStatusDraft:    {catalogmodels.ProductStatusActive: true},
		catalogmodels.ProductStatusActive:   {catalogmodels.ProductStatusArchived: true},
		catalogmodels.ProductStatusArchived: {catalogmodels.ProductStatusActive: true},
	}
	if !allowed[current][next] {
		return common.ErrInvalidState.WithMessage("Không thể chuyển trạng thái sản phẩm từ %q sang %q", current, next)
	}
	return nil
}

// Slugify sinh slug từ tên sản phẩm: chữ thường, khoảng trắng thành "-",
// bỏ ký tự ngoài [a-z0-9-]
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

// productToState chuyển model sang cây form qua JSON round-trip
// (giữ key theo json tag, ObjectID thành hex string)
func productToState(product catalogmodels.Product) (formstate.State, error) {
	raw, err := json.Marshal(product)
	if err != nil {
		return nil, err
	}
	var state formstate.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return state, nil
}

// stateToStruct chuyển cây form đã normalize về struct model
func stateToStruct(state formstate.State, target interface{}) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, target)
}
