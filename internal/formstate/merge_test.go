// Package formstate - Test deep-merge reconciler: idempotent, đầy đủ cấu trúc template,
// null ghi đè, mảng thay thế nguyên khối, ép object degraded về mảng.
package formstate

import (
	"reflect"
	"testing"
)

func TestMerge_TemplateDinhHinhCauTruc(t *testing.T) {
	template := ProductTemplate()
	// Record từ backend thiếu hẳn nhóm productDetails.memory
	source := State{
		"name": "iPhone 13",
		"productDetails": State{
			"display": "6.1 inch OLED",
		},
	}

	merged := Merge(template, source)

	// Mọi key của template phải có mặt, kể cả nhóm backend không trả về
	ram, ok := Get(merged, "productDetails.memory.ram")
	if !ok {
		t.Fatal("productDetails.memory.ram phải tồn tại sau merge")
	}
	if ram != "" {
		t.Errorf("productDetails.memory.ram = %v, muốn chuỗi rỗng từ template", ram)
	}

	// Giá trị backend trả về phải thắng template
	display, _ := Get(merged, "productDetails.display")
	if display != "6.1 inch OLED" {
		t.Errorf("productDetails.display = %v, muốn giá trị từ source", display)
	}
	if merged["name"] != "iPhone 13" {
		t.Errorf("name = %v, muốn iPhone 13", merged["name"])
	}
}

func TestMerge_Idempotent(t *testing.T) {
	template := ProductTemplate()
	source := State{
		"name":    "Galaxy S21",
		"pricing": State{"originalPrice": float64(50000)},
		"images":  []interface{}{"a.jpg", "b.jpg"},
		"extra":   nil,
	}

	once := Merge(template, source)
	twice := Merge(template, once)

	if !reflect.DeepEqual(once, twice) {
		t.Error("Merge(T, Merge(T, S)) phải bằng Merge(T, S)")
	}
}

func TestMerge_NullGhiDe(t *testing.T) {
	template := State{"description": "mặc định"}
	source := State{"description": nil}

	merged := Merge(template, source)

	value, ok := merged["description"]
	if !ok {
		t.Fatal("description phải có mặt")
	}
	if value != nil {
		t.Errorf("null trong source phải ghi đè template, được %v", value)
	}
}

func TestMerge_MangThayTheNguyenKhoi(t *testing.T) {
	template := State{"images": []interface{}{"t1.jpg", "t2.jpg", "t3.jpg"}}
	source := State{"images": []interface{}{"s1.jpg"}}

	merged := Merge(template, source)

	images, ok := merged["images"].([]interface{})
	if !ok {
		t.Fatal("images không phải mảng")
	}
	if len(images) != 1 || images[0] != "s1.jpg" {
		t.Errorf("mảng phải thay thế nguyên khối, được %v", images)
	}
}

func TestMerge_KeyLaTrongSource(t *testing.T) {
	template := State{"name": ""}
	source := State{"name": "X", "unknownField": float64(7)}

	merged := Merge(template, source)

	if merged["unknownField"] != float64(7) {
		t.Errorf("key lạ trong source phải được giữ lại, được %v", merged["unknownField"])
	}
}

func TestCoerceList_ObjectDegraded(t *testing.T) {
	// Backend trả {} hoặc {"0": ..., "1": ...} thay cho mảng
	state := State{
		"images": State{
			"1": "b.jpg",
			"0": "a.jpg",
		},
		"variants": State{},
	}

	result, err := CoerceLists(state, "images", "variants")
	if err != nil {
		t.Fatalf("CoerceLists trả về lỗi: %v", err)
	}

	images, ok := result["images"].([]interface{})
	if !ok {
		t.Fatal("images không được ép về mảng")
	}
	if len(images) != 2 || images[0] != "a.jpg" || images[1] != "b.jpg" {
		t.Errorf("thứ tự phần tử theo key số tăng dần, được %v", images)
	}

	variants, ok := result["variants"].([]interface{})
	if !ok || len(variants) != 0 {
		t.Errorf("object rỗng phải thành mảng rỗng, được %v", result["variants"])
	}
}

func TestCoerceList_LocPhanTuNil(t *testing.T) {
	state := State{"images": []interface{}{"a.jpg", nil, "b.jpg"}}

	result, err := CoerceList(state, "images")
	if err != nil {
		t.Fatalf("CoerceList trả về lỗi: %v", err)
	}

	images := result["images"].([]interface{})
	if len(images) != 2 {
		t.Errorf("phần tử nil phải bị lọc, được %v", images)
	}
}

func TestCoerceList_TruongChuaCo(t *testing.T) {
	state := State{}

	result, err := CoerceList(state, "offers")
	if err != nil {
		t.Fatalf("CoerceList trả về lỗi: %v", err)
	}

	offers, ok := result["offers"].([]interface{})
	if !ok || len(offers) != 0 {
		t.Errorf("trường chưa có phải được tạo với mảng rỗng, được %v", result["offers"])
	}
}
