// Package formstate - Test array editor: thêm/sửa/xóa/di chuyển phần tử theo ID ổn định.
package formstate

import (
	"testing"
)

func TestAppendElem_SinhID(t *testing.T) {
	state := State{"variants": []interface{}{}}

	newState, id, err := AppendElem(state, "variants", NewVariantElem())
	if err != nil {
		t.Fatalf("AppendElem trả về lỗi: %v", err)
	}
	if id == "" {
		t.Fatal("AppendElem phải sinh ID cho phần tử mới")
	}

	list, _ := Get(newState, "variants")
	variants := list.([]interface{})
	if len(variants) != 1 {
		t.Fatalf("danh sách phải có 1 phần tử, có %d", len(variants))
	}
	elem := variants[0].(State)
	if elem[ElemIDKey] != id {
		t.Errorf("ID trong phần tử (%v) khác ID trả về (%s)", elem[ElemIDKey], id)
	}
	// Giá trị mặc định của variant: stock=true
	if elem["stock"] != true {
		t.Errorf("variant mới phải có stock=true, được %v", elem["stock"])
	}
}

func TestAppendRoiXoa_TraVeDanhSachCu(t *testing.T) {
	state := State{
		"offers": []interface{}{
			State{ElemIDKey: "keep", "title": "Giảm 10%"},
		},
	}

	afterAdd, id, err := AppendElem(state, "offers", NewOfferElem())
	if err != nil {
		t.Fatalf("AppendElem trả về lỗi: %v", err)
	}
	afterRemove, err := RemoveElem(afterAdd, "offers", id)
	if err != nil {
		t.Fatalf("RemoveElem trả về lỗi: %v", err)
	}

	list, _ := Get(afterRemove, "offers")
	offers := list.([]interface{})
	if len(offers) != 1 {
		t.Fatalf("sau add+remove danh sách phải như cũ, có %d phần tử", len(offers))
	}
	if offers[0].(State)["title"] != "Giảm 10%" {
		t.Errorf("phần tử cũ bị thay đổi: %v", offers[0])
	}
}

func TestUpdateElem_PatchTheoID(t *testing.T) {
	state := State{
		"variants": []interface{}{
			State{ElemIDKey: "v1", "storage": "64GB", "price": float64(100)},
			State{ElemIDKey: "v2", "storage": "128GB", "price": float64(200)},
		},
	}

	newState, err := UpdateElem(state, "variants", "v2", State{"price": float64(250)})
	if err != nil {
		t.Fatalf("UpdateElem trả về lỗi: %v", err)
	}

	list, _ := Get(newState, "variants")
	variants := list.([]interface{})
	if len(variants) != 2 {
		t.Fatalf("độ dài danh sách phải giữ nguyên, có %d", len(variants))
	}

	updated := variants[1].(State)
	if updated["price"] != float64(250) {
		t.Errorf("price = %v, muốn 250", updated["price"])
	}
	// Patch là partial: trường không có trong patch giữ nguyên
	if updated["storage"] != "128GB" {
		t.Errorf("storage bị mất sau patch: %v", updated["storage"])
	}
	// Phần tử anh em không đổi
	if variants[0].(State)["price"] != float64(100) {
		t.Errorf("phần tử v1 bị thay đổi: %v", variants[0])
	}
}

func TestUpdateElem_KhongGhiDeID(t *testing.T) {
	state := State{
		"variants": []interface{}{State{ElemIDKey: "v1", "storage": "64GB"}},
	}

	newState, err := UpdateElem(state, "variants", "v1", State{ElemIDKey: "hacked", "storage": "128GB"})
	if err != nil {
		t.Fatalf("UpdateElem trả về lỗi: %v", err)
	}

	list, _ := Get(newState, "variants")
	elem := list.([]interface{})[0].(State)
	if elem[ElemIDKey] != "v1" {
		t.Errorf("ID ổn định không được ghi đè qua patch, được %v", elem[ElemIDKey])
	}
}

func TestUpdateElem_IDKhongTonTai(t *testing.T) {
	state := State{"variants": []interface{}{State{ElemIDKey: "v1"}}}

	if _, err := UpdateElem(state, "variants", "missing", State{"price": float64(1)}); err == nil {
		t.Error("UpdateElem với ID không tồn tại phải trả về lỗi")
	}
}

func TestRemoveElem_XoaGiuaDanhSach(t *testing.T) {
	state := State{
		"conditionOptions": []interface{}{
			State{ElemIDKey: "a", "label": "Như mới"},
			State{ElemIDKey: "b", "label": "Trầy nhẹ"},
			State{ElemIDKey: "c", "label": "Hỏng màn"},
		},
	}

	newState, err := RemoveElem(state, "conditionOptions", "b")
	if err != nil {
		t.Fatalf("RemoveElem trả về lỗi: %v", err)
	}

	list, _ := Get(newState, "conditionOptions")
	options := list.([]interface{})
	if len(options) != 2 {
		t.Fatalf("còn %d phần tử, muốn 2", len(options))
	}
	// ID các phần tử còn lại không đổi dù index thay đổi
	if options[0].(State)[ElemIDKey] != "a" || options[1].(State)[ElemIDKey] != "c" {
		t.Errorf("ID phần tử còn lại phải giữ nguyên: %v", options)
	}
}

func TestMoveElem_DoiViTri(t *testing.T) {
	state := State{
		"topDeals": []interface{}{
			State{ElemIDKey: "a"},
			State{ElemIDKey: "b"},
			State{ElemIDKey: "c"},
		},
	}

	newState, err := MoveElem(state, "topDeals", "c", 0)
	if err != nil {
		t.Fatalf("MoveElem trả về lỗi: %v", err)
	}

	list, _ := Get(newState, "topDeals")
	deals := list.([]interface{})
	order := []string{
		deals[0].(State)[ElemIDKey].(string),
		deals[1].(State)[ElemIDKey].(string),
		deals[2].(State)[ElemIDKey].(string),
	}
	if order[0] != "c" || order[1] != "a" || order[2] != "b" {
		t.Errorf("thứ tự sau move = %v, muốn [c a b]", order)
	}
}

func TestMoveElem_IndexNgoaiKhoang(t *testing.T) {
	state := State{
		"topDeals": []interface{}{
			State{ElemIDKey: "a"},
			State{ElemIDKey: "b"},
		},
	}

	// Index vượt khoảng được kẹp về cuối danh sách
	newState, err := MoveElem(state, "topDeals", "a", 99)
	if err != nil {
		t.Fatalf("MoveElem trả về lỗi: %v", err)
	}
	list, _ := Get(newState, "topDeals")
	deals := list.([]interface{})
	if deals[1].(State)[ElemIDKey] != "a" {
		t.Errorf("phần tử phải được kẹp về cuối, được %v", deals)
	}
}

func TestEnsureElemIDs(t *testing.T) {
	// Record cũ từ backend: phần tử không mang ID; topSpecs là chuỗi thuần
	state := State{
		"variants": []interface{}{
			State{"storage": "64GB"},
			State{ElemIDKey: "co-san", "storage": "128GB"},
		},
		"topSpecs": []interface{}{"5G", "OLED"},
	}

	newState, err := EnsureElemIDs(state, "variants")
	if err != nil {
		t.Fatalf("EnsureElemIDs trả về lỗi: %v", err)
	}
	newState, err = EnsureElemIDs(newState, "topSpecs")
	if err != nil {
		t.Fatalf("EnsureElemIDs topSpecs trả về lỗi: %v", err)
	}

	list, _ := Get(newState, "variants")
	variants := list.([]interface{})
	first := variants[0].(State)
	if id, _ := first[ElemIDKey].(string); id == "" {
		t.Error("phần tử chưa có ID phải được gán ID")
	}
	second := variants[1].(State)
	if second[ElemIDKey] != "co-san" {
		t.Errorf("phần tử đã có ID phải giữ nguyên, được %v", second[ElemIDKey])
	}

	specs, _ := Get(newState, "topSpecs")
	if specs.([]interface{})[0] != "5G" {
		t.Errorf("phần tử chuỗi thuần giữ nguyên, được %v", specs)
	}
}
