package formstate

import (
	"sort"
	"strconv"
)

// Merge deep-merge record từ backend (source) vào template chuẩn và trả về
// object mới có đầy đủ cấu trúc key của template ở mọi cấp.
//
// Quy tắc:
//   - Key có trong source ghi đè giá trị của template.
//   - Hai giá trị cùng là object → merge đệ quy.
//   - Giá trị mảng và scalar trong source thay thế nguyên khối (mảng không
//     bao giờ merge từng phần tử).
//   - null trong source được coi là giá trị ghi đè, không phải "vắng mặt".
//
// Merge có tính idempotent: Merge(T, Merge(T, S)) == Merge(T, S).
// Template và source đều không bị sửa đổi.
//
// Parameters:
// - template: Template chuẩn định nghĩa cấu trúc đầy đủ
// - source: Record từ backend (có thể thiếu nhóm, có thể nil)
//
// Returns:
// - State: Object mới đã merge
func Merge(template State, source State) State {
	result := make(State, len(template))
	for k, v := range template {
		result[k] = v
	}

	for key, srcVal := range source {
		tmplVal, inTemplate := result[key]
		if !inTemplate {
			result[key] = srcVal
			continue
		}

		srcMap, srcIsMap := srcVal.(State)
		tmplMap, tmplIsMap := tmplVal.(State)
		if srcIsMap && tmplIsMap {
			result[key] = Merge(tmplMap, srcMap)
			continue
		}

		// Mảng, scalar và null đều ghi đè nguyên khối
		result[key] = srcVal
	}

	return result
}

// CoerceList ép giá trị tại dot-path về mảng thực sự.
// Backend đôi khi trả về object {} (hoặc object với key dạng số "0","1",...)
// thay cho mảng; hàm này chuyển các dạng đó về []interface{} theo thứ tự
// key số tăng dần, loại bỏ phần tử nil. Giá trị đã là mảng thì giữ nguyên
// (chỉ lọc nil). Giá trị kiểu khác (scalar, nil) trở thành mảng rỗng.
//
// Parameters:
// - state: Trạng thái form
// - path: Dot-path tới trường dạng danh sách
//
// Returns:
// - State: Trạng thái mới với trường tại path đảm bảo là mảng
func CoerceList(state State, path string) (State, error) {
	value, _ := Get(state, path)
	return Set(state, path, toList(value))
}

// CoerceLists áp dụng CoerceList cho nhiều trường. Path không hợp lệ bị bỏ qua
// (trường chưa có trong state sẽ được tạo với mảng rỗng).
func CoerceLists(state State, paths ...string) (State, error) {
	var err error
	for _, p := range paths {
		state, err = CoerceList(state, p)
		if err != nil {
			return nil, err
		}
	}
	return state, nil
}

// toList chuyển một giá trị bất kỳ về []interface{}
func toList(value interface{}) []interface{} {
	switch v := value.(type) {
	case []interface{}:
		result := make([]interface{}, 0, len(v))
		for _, item := range v {
			if item != nil {
				result = append(result, item)
			}
		}
		return result
	case State:
		// Object degraded từ mảng: lấy value theo thứ tự key số tăng dần
		type entry struct {
			order int
			val   interface{}
		}
		entries := make([]entry, 0, len(v))
		for key, item := range v {
			if item == nil {
				continue
			}
			order, err := strconv.Atoi(key)
			if err != nil {
				// Key không phải số → không xác định được thứ tự, bỏ qua
				continue
			}
			entries = append(entries, entry{order: order, val: item})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].order < entries[j].order })
		result := make([]interface{}, 0, len(entries))
		for _, e := range entries {
			result = append(result, e.val)
		}
		return result
	default:
		return []interface{}{}
	}
}
