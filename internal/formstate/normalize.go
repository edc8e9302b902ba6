package formstate

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Các trường dạng danh sách của Product cần đảm bảo là mảng trước khi lưu
var productListPaths = []string{
	"images",
	"conditionOptions",
	"variants",
	"addOns",
	"offers",
	"topSpecs",
	"relatedProducts",
	"paymentOptions.emiPlans",
	"paymentOptions.methods",
}

// Các trường số của Product (dot-path). Giá trị dạng chuỗi được parse,
// parse lỗi hoặc chuỗi rỗng → 0 (không bao giờ để NaN lọt xuống DB).
var productNumericPaths = []string{
	"pricing.originalPrice",
	"pricing.discountedPrice",
	"pricing.discount.value",
	"pricing.emi.startingFrom",
	"pricing.emi.tenure",
	"availability.quantity",
	"sortOrder",
}

// Các trường boolean của Product cần coerce (checkbox có thể gửi "true"/"false" dạng chuỗi)
var productBoolPaths = []string{
	"isActive",
	"availability.inStock",
	"pricing.emi.available",
	"paymentOptions.cod",
	"paymentOptions.online",
	"paymentOptions.emi",
	"paymentOptions.exchange",
}

// ToNumber coerce một giá trị bất kỳ về số.
// Chuỗi rỗng, parse lỗi, nil hay kiểu không phải số đều trả về 0 —
// không bao giờ trả NaN.
func ToNumber(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// ToBool coerce một giá trị bất kỳ về bool.
// Chuỗi dùng strconv.ParseBool ("true"/"1"/...), số khác 0 là true,
// các trường hợp còn lại là false.
func ToBool(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false
		}
		return b
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return false
		}
		return f != 0
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	default:
		return false
	}
}

// NormalizeProduct chuyển trạng thái form sản phẩm về shape lưu xuống DB:
//   - Trường số dạng chuỗi được parse, lỗi/rỗng → 0.
//   - Trường boolean được coerce.
//   - Trường danh sách được ép về mảng thực sự và lọc phần tử rỗng.
//   - ID ổn định của phần tử danh sách (uid) bị loại bỏ — đó là khóa
//     phía editor, không thuộc wire shape.
//   - Danh sách images (theo thứ tự) được map sang object cố định
//     {main, gallery, thumbnail} theo vị trí 0/1/2; ảnh từ vị trí 3 trở đi
//     bị loại bỏ theo contract hiện tại của backend.
//
// Trạng thái đầu vào không bị sửa đổi.
func NormalizeProduct(state State) (State, error) {
	// images có thể còn ở dạng object 3 slot (submit lại bản ghi đã lưu):
	// trải về danh sách trước để CoerceList không làm mất ảnh
	result, err := FlattenImages(state)
	if err != nil {
		return nil, err
	}

	result, err = CoerceLists(result, productListPaths...)
	if err != nil {
		return nil, err
	}

	// Coerce trường số
	for _, p := range productNumericPaths {
		if value, ok := Get(result, p); ok {
			result, err = Set(result, p, ToNumber(value))
			if err != nil {
				return nil, err
			}
		}
	}

	// Coerce trường boolean
	for _, p := range productBoolPaths {
		if value, ok := Get(result, p); ok {
			result, err = Set(result, p, ToBool(value))
			if err != nil {
				return nil, err
			}
		}
	}

	// Lọc phần tử rỗng và loại bỏ uid khỏi các danh sách.
	// images không lọc: vị trí trong danh sách là slot (0→main, 1→gallery,
	// 2→thumbnail), bỏ phần tử rỗng ở giữa sẽ làm ảnh trôi slot.
	for _, p := range productListPaths {
		if p == "images" {
			continue
		}
		value, _ := Get(result, p)
		list, ok := value.([]interface{})
		if !ok {
			continue
		}
		cleaned := make([]interface{}, 0, len(list))
		for _, item := range list {
			if isEmptyElem(item) {
				continue
			}
			if elem, ok := item.(State); ok {
				cleaned = append(cleaned, stripElemID(elem))
			} else {
				cleaned = append(cleaned, item)
			}
		}
		result, err = Set(result, p, cleaned)
		if err != nil {
			return nil, err
		}
	}

	// Coerce trường số bên trong từng phần tử danh sách
	result, err = normalizeListNumerics(result, "conditionOptions", "price")
	if err != nil {
		return nil, err
	}
	result, err = normalizeListNumerics(result, "variants", "price")
	if err != nil {
		return nil, err
	}
	result, err = normalizeListNumerics(result, "addOns", "cost")
	if err != nil {
		return nil, err
	}
	result, err = normalizeListNumerics(result, "offers", "discount")
	if err != nil {
		return nil, err
	}

	// images: danh sách URL theo thứ tự → object {main, gallery, thumbnail}
	imagesVal, _ := Get(result, "images")
	if images, ok := imagesVal.([]interface{}); ok {
		result, err = Set(result, "images", reshapeImages(images))
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// reshapeImages map danh sách URL theo vị trí sang object 3 slot cố định.
// Vị trí 0 → main, 1 → gallery, 2 → thumbnail; từ vị trí 3 trở đi bị loại bỏ.
func reshapeImages(images []interface{}) State {
	reshaped := State{
		"main":      "",
		"gallery":   "",
		"thumbnail": "",
	}
	slots := []string{"main", "gallery", "thumbnail"}
	for i, slot := range slots {
		if i >= len(images) {
			break
		}
		if url, ok := images[i].(string); ok {
			reshaped[slot] = url
		}
	}
	return reshaped
}

// FlattenImages chuyển object ảnh 3 slot {main, gallery, thumbnail} tại
// trường "images" về danh sách URL theo vị trí slot — nghịch đảo của
// reshapeImages, dùng khi mở form sửa từ bản ghi đã lưu. Slot rỗng ở giữa
// giữ chỗ bằng chuỗi rỗng để ảnh phía sau không trôi slot; slot rỗng ở
// cuối bị cắt. Giá trị tại "images" không phải object thì giữ nguyên.
func FlattenImages(state State) (State, error) {
	value, ok := Get(state, "images")
	if !ok {
		return state, nil
	}
	obj, ok := value.(State)
	if !ok {
		return state, nil
	}

	slots := []string{"main", "gallery", "thumbnail"}
	list := make([]interface{}, 0, len(slots))
	for _, slot := range slots {
		url, _ := obj[slot].(string)
		list = append(list, url)
	}
	for len(list) > 0 {
		last, _ := list[len(list)-1].(string)
		if last != "" {
			break
		}
		list = list[:len(list)-1]
	}
	return Set(state, "images", list)
}

// normalizeListNumerics coerce trường số fieldKey trong từng phần tử của danh sách tại path
func normalizeListNumerics(state State, path string, fieldKey string) (State, error) {
	value, _ := Get(state, path)
	list, ok := value.([]interface{})
	if !ok {
		return state, nil
	}

	changed := false
	newList := make([]interface{}, len(list))
	for i, item := range list {
		elem, ok := item.(State)
		if !ok {
			newList[i] = item
			continue
		}
		raw, has := elem[fieldKey]
		if !has {
			newList[i] = item
			continue
		}
		coerced := ToNumber(raw)
		if f, isNum := raw.(float64); isNum && f == coerced {
			newList[i] = item
			continue
		}
		updated := make(State, len(elem))
		for k, v := range elem {
			updated[k] = v
		}
		updated[fieldKey] = coerced
		newList[i] = updated
		changed = true
	}

	if !changed {
		return state, nil
	}
	return Set(state, path, newList)
}

// stripElemID trả về bản sao phần tử không chứa key uid
func stripElemID(elem State) State {
	if _, has := elem[ElemIDKey]; !has {
		return elem
	}
	stripped := make(State, len(elem)-1)
	for k, v := range elem {
		if k == ElemIDKey {
			continue
		}
		stripped[k] = v
	}
	return stripped
}

// isEmptyElem kiểm tra phần tử danh sách có phải placeholder rỗng không:
// chuỗi rỗng, nil, hoặc object mà mọi giá trị (ngoài uid) đều rỗng/0/nil.
// Dòng vừa thêm từ form còn nguyên giá trị mặc định (chuỗi rỗng, số 0,
// flag mặc định) phải bị coi là placeholder và không được lưu xuống DB.
func isEmptyElem(item interface{}) bool {
	switch v := item.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case State:
		for k, val := range v {
			if k == ElemIDKey {
				continue
			}
			switch inner := val.(type) {
			case nil:
				continue
			case string:
				if strings.TrimSpace(inner) != "" {
					return false
				}
			case bool:
				// Flag mặc định (ví dụ variant.stock=true) không làm phần tử "không rỗng"
				continue
			case float64:
				if inner != 0 {
					return false
				}
			case int:
				if inner != 0 {
					return false
				}
			case int64:
				if inner != 0 {
					return false
				}
			case json.Number:
				if ToNumber(inner) != 0 {
					return false
				}
			default:
				return false
			}
		}
		return true
	default:
		return false
	}
}
