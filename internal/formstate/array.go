package formstate

import (
	"github.com/google/uuid"

	"cashmitra/internal/common"
)

// ElemIDKey là key chứa ID ổn định của phần tử trong các trường dạng danh sách.
// ID được sinh khi thêm phần tử và không đổi khi danh sách bị reorder/xóa,
// nên luôn dùng ID này (không dùng index) làm khóa khi sửa/xóa phần tử.
const ElemIDKey = "uid"

// AppendElem thêm phần tử mới vào cuối danh sách tại dot-path và trả về
// trạng thái mới cùng ID được sinh cho phần tử. Trường tại path được ép về
// mảng trước khi thêm (phòng object degraded từ backend). Nếu phần tử đã
// mang ID (duplicate giữ nguyên dữ liệu) thì ID đó được giữ lại.
//
// Parameters:
// - state: Trạng thái form
// - path: Dot-path tới trường danh sách (ví dụ "variants")
// - elem: Phần tử mới (object với các giá trị mặc định của loại danh sách)
//
// Returns:
// - State: Trạng thái mới
// - string: ID của phần tử vừa thêm
// - error: Lỗi nếu path không hợp lệ
func AppendElem(state State, path string, elem State) (State, string, error) {
	value, _ := Get(state, path)
	list := toList(value)

	withID := make(State, len(elem)+1)
	for k, v := range elem {
		withID[k] = v
	}
	id, _ := withID[ElemIDKey].(string)
	if id == "" {
		id = uuid.NewString()
		withID[ElemIDKey] = id
	}

	newList := make([]interface{}, len(list)+1)
	copy(newList, list)
	newList[len(list)] = withID

	newState, err := Set(state, path, newList)
	if err != nil {
		return nil, "", err
	}
	return newState, id, nil
}

// UpdateElem cập nhật phần tử theo ID trong danh sách tại dot-path.
// patch được merge nông vào phần tử (key có trong patch ghi đè, key khác giữ
// nguyên); các phần tử anh em giữ nguyên reference. Không tìm thấy ID → ErrNotFound.
//
// Parameters:
// - state: Trạng thái form
// - path: Dot-path tới trường danh sách
// - id: ID ổn định của phần tử cần sửa
// - patch: Các trường cần ghi đè (partial)
//
// Returns:
// - State: Trạng thái mới
// - error: Lỗi nếu path không hợp lệ hoặc không tìm thấy phần tử
func UpdateElem(state State, path string, id string, patch State) (State, error) {
	value, _ := Get(state, path)
	list, ok := value.([]interface{})
	if !ok {
		return nil, common.ErrNotFound.WithMessage("trường '%s' không phải danh sách", path)
	}

	idx := indexOfElem(list, id)
	if idx < 0 {
		return nil, common.ErrNotFound.WithMessage("không tìm thấy phần tử '%s' trong '%s'", id, path)
	}

	elem, _ := list[idx].(State)
	updated := make(State, len(elem)+len(patch))
	for k, v := range elem {
		updated[k] = v
	}
	for k, v := range patch {
		if k == ElemIDKey {
			// ID ổn định không cho phép ghi đè qua patch
			continue
		}
		updated[k] = v
	}

	newList := make([]interface{}, len(list))
	copy(newList, list)
	newList[idx] = updated

	return Set(state, path, newList)
}

// RemoveElem xóa phần tử theo ID khỏi danh sách tại dot-path.
// Các phần tử còn lại giữ nguyên reference và thứ tự.
//
// Parameters:
// - state: Trạng thái form
// - path: Dot-path tới trường danh sách
// - id: ID ổn định của phần tử cần xóa
//
// Returns:
// - State: Trạng thái mới
// - error: Lỗi nếu path không hợp lệ hoặc không tìm thấy phần tử
func RemoveElem(state State, path string, id string) (State, error) {
	value, _ := Get(state, path)
	list, ok := value.([]interface{})
	if !ok {
		return nil, common.ErrNotFound.WithMessage("trường '%s' không phải danh sách", path)
	}

	idx := indexOfElem(list, id)
	if idx < 0 {
		return nil, common.ErrNotFound.WithMessage("không tìm thấy phần tử '%s' trong '%s'", id, path)
	}

	newList := make([]interface{}, 0, len(list)-1)
	newList = append(newList, list[:idx]...)
	newList = append(newList, list[idx+1:]...)

	return Set(state, path, newList)
}

// MoveElem di chuyển phần tử theo ID tới vị trí mới trong danh sách.
// newIndex được kẹp vào [0, len-1].
//
// Parameters:
// - state: Trạng thái form
// - path: Dot-path tới trường danh sách
// - id: ID ổn định của phần tử cần di chuyển
// - newIndex: Vị trí đích
//
// Returns:
// - State: Trạng thái mới
// - error: Lỗi nếu path không hợp lệ hoặc không tìm thấy phần tử
func MoveElem(state State, path string, id string, newIndex int) (State, error) {
	value, _ := Get(state, path)
	list, ok := value.([]interface{})
	if !ok {
		return nil, common.ErrNotFound.WithMessage("trường '%s' không phải danh sách", path)
	}

	idx := indexOfElem(list, id)
	if idx < 0 {
		return nil, common.ErrNotFound.WithMessage("không tìm thấy phần tử '%s' trong '%s'", id, path)
	}

	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(list)-1 {
		newIndex = len(list) - 1
	}
	if newIndex == idx {
		return state, nil
	}

	elem := list[idx]
	without := make([]interface{}, 0, len(list)-1)
	without = append(without, list[:idx]...)
	without = append(without, list[idx+1:]...)

	newList := make([]interface{}, 0, len(list))
	newList = append(newList, without[:newIndex]...)
	newList = append(newList, elem)
	newList = append(newList, without[newIndex:]...)

	return Set(state, path, newList)
}

// EnsureElemIDs gán ID ổn định cho các phần tử chưa có trong danh sách tại path.
// Dùng sau khi reconcile record từ backend (dữ liệu cũ không mang ID).
func EnsureElemIDs(state State, path string) (State, error) {
	value, _ := Get(state, path)
	list := toList(value)

	changed := false
	newList := make([]interface{}, len(list))
	for i, item := range list {
		elem, ok := item.(State)
		if !ok {
			// Phần tử scalar (ví dụ topSpecs là chuỗi) không cần ID
			newList[i] = item
			continue
		}
		if id, _ := elem[ElemIDKey].(string); id != "" {
			newList[i] = item
			continue
		}
		withID := make(State, len(elem)+1)
		for k, v := range elem {
			withID[k] = v
		}
		withID[ElemIDKey] = uuid.NewString()
		newList[i] = withID
		changed = true
	}

	if !changed && len(list) == len(newList) {
		if _, isList := value.([]interface{}); isList {
			return state, nil
		}
	}
	return Set(state, path, newList)
}

// indexOfElem tìm vị trí phần tử có ID trong danh sách, -1 nếu không có
func indexOfElem(list []interface{}, id string) int {
	for i, item := range list {
		elem, ok := item.(State)
		if !ok {
			continue
		}
		if elemID, _ := elem[ElemIDKey].(string); elemID == id {
			return i
		}
	}
	return -1
}
