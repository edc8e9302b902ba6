// Package formstate cung cấp engine thao tác trạng thái form sản phẩm dạng cây:
// mutator theo dot-path, deep-merge record từ backend vào template chuẩn,
// editor cho các trường dạng danh sách và normalizer trước khi lưu.
//
// Trạng thái form là map[string]interface{} lồng nhau (decode từ JSON).
// Mọi thao tác đều copy-on-write: node trên đường đi được shallow-clone,
// các subtree không liên quan giữ nguyên reference với trạng thái cũ.
package formstate

import (
	"strconv"
	"strings"

	"cashmitra/internal/common"
)

// State là trạng thái form dạng cây (object lồng nhau decode từ JSON)
type State = map[string]interface{}

// splitPath tách dot-path thành các segment và validate.
// Path rỗng hoặc có segment rỗng ("a..b", ".a", "a.") là không hợp lệ.
func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, common.ErrInvalidPath.WithMessage("đường dẫn trường không được rỗng")
	}
	segments := strings.Split(path, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, common.ErrInvalidPath.WithMessage("đường dẫn '%s' chứa segment rỗng", path)
		}
	}
	return segments, nil
}

// Set gán giá trị cho leaf tại dot-path và trả về trạng thái mới.
// Các object trung gian trên đường đi được shallow-clone; object chưa tồn tại
// được tự tạo (không báo lỗi cho path chưa có). Subtree không liên quan
// giữ nguyên reference với trạng thái cũ.
//
// Segment dạng số ("variants.0.price") được hiểu là index mảng khi node
// hiện tại là mảng; index vượt quá độ dài mảng nới rộng mảng bằng nil
// tới index đó.
//
// Parameters:
// - state: Trạng thái hiện tại (không bị sửa đổi)
// - path: Dot-path tới leaf (ví dụ "productDetails.battery.charging.wired")
// - value: Giá trị mới cho leaf
//
// Returns:
// - State: Trạng thái mới sau khi gán
// - error: Lỗi nếu path không hợp lệ
func Set(state State, path string, value interface{}) (State, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	cloned, err := setSegments(state, segments, value)
	if err != nil {
		return nil, err
	}
	result, ok := cloned.(State)
	if !ok {
		// setSegments với node gốc là map luôn trả về map
		return nil, common.ErrInvalidPath.WithMessage("trạng thái gốc không phải object")
	}
	return result, nil
}

// setSegments đệ quy clone node hiện tại và gán giá trị theo các segment còn lại
func setSegments(node interface{}, segments []string, value interface{}) (interface{}, error) {
	seg := segments[0]
	last := len(segments) == 1

	// Node là mảng và segment là index số
	if arr, ok := node.([]interface{}); ok {
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 {
			return nil, common.ErrInvalidPath.WithMessage("segment '%s' không phải index mảng hợp lệ", seg)
		}
		// Index vượt độ dài: mảng được nới rộng bằng nil tới index
		length := len(arr)
		if idx >= length {
			length = idx + 1
		}
		clonedArr := make([]interface{}, length)
		copy(clonedArr, arr)
		if last {
			clonedArr[idx] = value
			return clonedArr, nil
		}
		child, err := setSegments(clonedArr[idx], segments[1:], value)
		if err != nil {
			return nil, err
		}
		clonedArr[idx] = child
		return clonedArr, nil
	}

	// Node là object (hoặc nil/scalar → thay bằng object mới, tự tạo đường đi)
	var obj State
	if m, ok := node.(State); ok {
		obj = m
	}

	cloned := make(State, len(obj)+1)
	for k, v := range obj {
		cloned[k] = v
	}

	if last {
		cloned[seg] = value
		return cloned, nil
	}

	child, err := setSegments(cloned[seg], segments[1:], value)
	if err != nil {
		return nil, err
	}
	cloned[seg] = child
	return cloned, nil
}

// Get đọc giá trị tại dot-path. Trả về (nil, false) nếu path không tồn tại
// hoặc node trung gian không phải object/mảng.
//
// Parameters:
// - state: Trạng thái form
// - path: Dot-path tới leaf
//
// Returns:
// - interface{}: Giá trị tại path
// - bool: true nếu path tồn tại
func Get(state State, path string) (interface{}, bool) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, false
	}

	var node interface{} = state
	for _, seg := range segments {
		switch current := node.(type) {
		case State:
			child, ok := current[seg]
			if !ok {
				return nil, false
			}
			node = child
		case []interface{}:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(current) {
				return nil, false
			}
			node = current[idx]
		default:
			return nil, false
		}
	}
	return node, true
}
