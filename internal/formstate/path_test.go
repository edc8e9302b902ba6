// Package formstate - Test mutator dot-path: set/get, copy-on-write, auto-tạo đường đi.
package formstate

import (
	"testing"
)

func TestSet_ReadBack(t *testing.T) {
	state := State{}

	newState, err := Set(state, "productDetails.battery.charging.wired", "65W")
	if err != nil {
		t.Fatalf("Set trả về lỗi: %v", err)
	}

	value, ok := Get(newState, "productDetails.battery.charging.wired")
	if !ok {
		t.Fatal("Get không tìm thấy path vừa set")
	}
	if value != "65W" {
		t.Errorf("đọc lại path được %v, muốn 65W", value)
	}
}

func TestSet_AutoTaoDuongDi(t *testing.T) {
	// State rỗng hoàn toàn: mọi object trung gian phải được tự tạo
	state := State{"name": "iPhone 13"}

	newState, err := Set(state, "pricing.discount.value", float64(10))
	if err != nil {
		t.Fatalf("Set trả về lỗi: %v", err)
	}

	value, ok := Get(newState, "pricing.discount.value")
	if !ok || value != float64(10) {
		t.Errorf("pricing.discount.value = %v, muốn 10", value)
	}
	// Trường cũ không liên quan giữ nguyên
	if name, _ := Get(newState, "name"); name != "iPhone 13" {
		t.Errorf("name bị thay đổi: %v", name)
	}
}

func TestSet_KhongSuaTrangThaiCu(t *testing.T) {
	state := State{
		"pricing": State{"originalPrice": float64(100)},
	}

	newState, err := Set(state, "pricing.originalPrice", float64(200))
	if err != nil {
		t.Fatalf("Set trả về lỗi: %v", err)
	}

	oldValue, _ := Get(state, "pricing.originalPrice")
	if oldValue != float64(100) {
		t.Errorf("trạng thái cũ bị mutate: pricing.originalPrice = %v", oldValue)
	}
	newValue, _ := Get(newState, "pricing.originalPrice")
	if newValue != float64(200) {
		t.Errorf("trạng thái mới sai: pricing.originalPrice = %v", newValue)
	}
}

func TestSet_SiblingGiuNguyenReference(t *testing.T) {
	availability := State{"inStock": true}
	state := State{
		"pricing":      State{"originalPrice": float64(100)},
		"availability": availability,
	}

	newState, err := Set(state, "pricing.originalPrice", float64(200))
	if err != nil {
		t.Fatalf("Set trả về lỗi: %v", err)
	}

	// Subtree không nằm trên đường đi phải giữ nguyên reference
	got, ok := newState["availability"].(State)
	if !ok {
		t.Fatal("availability không phải map")
	}
	// So sánh reference qua mutate bản gốc
	availability["probe"] = true
	if _, has := got["probe"]; !has {
		t.Error("availability bị clone dù không nằm trên đường đi của Set")
	}
}

func TestSet_IndexMang(t *testing.T) {
	state := State{
		"variants": []interface{}{
			State{"storage": "64GB"},
			State{"storage": "128GB"},
		},
	}

	newState, err := Set(state, "variants.1.storage", "256GB")
	if err != nil {
		t.Fatalf("Set trả về lỗi: %v", err)
	}

	value, _ := Get(newState, "variants.1.storage")
	if value != "256GB" {
		t.Errorf("variants.1.storage = %v, muốn 256GB", value)
	}
	// Phần tử 0 giữ nguyên
	other, _ := Get(newState, "variants.0.storage")
	if other != "64GB" {
		t.Errorf("variants.0.storage bị thay đổi: %v", other)
	}
}

func TestSet_IndexVuotMang_NoiRongBangNil(t *testing.T) {
	state := State{"variants": []interface{}{State{"storage": "64GB"}}}

	newState, err := Set(state, "variants.3.storage", "256GB")
	if err != nil {
		t.Fatalf("Set với index vượt mảng trả về lỗi: %v", err)
	}

	value, _ := Get(newState, "variants")
	variants := value.([]interface{})
	if len(variants) != 4 {
		t.Fatalf("mảng phải được nới rộng tới 4 phần tử, có %d", len(variants))
	}
	for i := 1; i < 3; i++ {
		if variants[i] != nil {
			t.Errorf("variants.%d phải là nil (phần tử đệm), được %v", i, variants[i])
		}
	}
	if storage, _ := Get(newState, "variants.3.storage"); storage != "256GB" {
		t.Errorf("variants.3.storage = %v, muốn 256GB", storage)
	}
	// Trạng thái cũ không bị sửa
	old, _ := Get(state, "variants")
	if len(old.([]interface{})) != 1 {
		t.Error("mảng của trạng thái cũ bị thay đổi độ dài")
	}
}

func TestSet_PathKhongHopLe(t *testing.T) {
	state := State{}
	for _, path := range []string{"", "a..b", ".a", "a."} {
		if _, err := Set(state, path, 1); err == nil {
			t.Errorf("Set với path %q phải trả về lỗi", path)
		}
	}
}

func TestGet_PathKhongTonTai(t *testing.T) {
	state := State{"pricing": State{"originalPrice": float64(100)}}

	if _, ok := Get(state, "pricing.discount.value"); ok {
		t.Error("Get path không tồn tại phải trả về ok=false")
	}
	if _, ok := Get(state, "name"); ok {
		t.Error("Get key không tồn tại phải trả về ok=false")
	}
	// Node trung gian là scalar
	if _, ok := Get(state, "pricing.originalPrice.x"); ok {
		t.Error("Get qua scalar phải trả về ok=false")
	}
}
