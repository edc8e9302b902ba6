// Package formstate - Test normalizer trước khi lưu: coerce số an toàn,
// reshape images về 3 slot, lọc phần tử placeholder.
package formstate

import (
	"encoding/json"
	"testing"
)

func TestToNumber(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  float64
	}{
		{"chuỗi số thập phân", "999.50", 999.5},
		{"chuỗi rỗng", "", 0},
		{"chuỗi không phải số", "abc", 0},
		{"chuỗi có khoảng trắng", "  42 ", 42},
		{"float64", float64(7), 7},
		{"int", 3, 3},
		{"json.Number", json.Number("15000"), 15000},
		{"json.Number lỗi", json.Number("xx"), 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToNumber(tc.input); got != tc.want {
				t.Errorf("ToNumber(%v) = %v, muốn %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestToBool(t *testing.T) {
	cases := []struct {
		input interface{}
		want  bool
	}{
		{true, true},
		{false, false},
		{"true", true},
		{"false", false},
		{"1", true},
		{"xyz", false},
		{json.Number("1"), true},
		{json.Number("0"), false},
		{float64(2), true},
		{nil, false},
	}
	for _, tc := range cases {
		if got := ToBool(tc.input); got != tc.want {
			t.Errorf("ToBool(%v) = %v, muốn %v", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeProduct_SoAnToan(t *testing.T) {
	state := State{
		"pricing": State{
			"originalPrice": "",
			"discount":      State{"value": "abc"},
		},
	}

	result, err := NormalizeProduct(state)
	if err != nil {
		t.Fatalf("NormalizeProduct trả về lỗi: %v", err)
	}

	price, _ := Get(result, "pricing.originalPrice")
	if price != float64(0) {
		t.Errorf("originalPrice = %v, muốn 0", price)
	}
	discount, _ := Get(result, "pricing.discount.value")
	if discount != float64(0) {
		t.Errorf("discount.value = %v, muốn 0 (không bao giờ NaN)", discount)
	}
}

func TestNormalizeProduct_ChuoiSoThanhSo(t *testing.T) {
	state := State{
		"pricing":      State{"originalPrice": "999.50"},
		"availability": State{"quantity": "12"},
		"sortOrder":    "3",
	}

	result, err := NormalizeProduct(state)
	if err != nil {
		t.Fatalf("NormalizeProduct trả về lỗi: %v", err)
	}

	price, _ := Get(result, "pricing.originalPrice")
	if price != float64(999.5) {
		t.Errorf("pricing.originalPrice = %v, muốn 999.5 (số)", price)
	}
	quantity, _ := Get(result, "availability.quantity")
	if quantity != float64(12) {
		t.Errorf("availability.quantity = %v, muốn 12", quantity)
	}
	if result["sortOrder"] != float64(3) {
		t.Errorf("sortOrder = %v, muốn 3", result["sortOrder"])
	}
}

func TestNormalizeProduct_ReshapeImages(t *testing.T) {
	state := State{
		"images": []interface{}{"a.jpg", "b.jpg", "c.jpg", "d.jpg"},
	}

	result, err := NormalizeProduct(state)
	if err != nil {
		t.Fatalf("NormalizeProduct trả về lỗi: %v", err)
	}

	images, ok := result["images"].(State)
	if !ok {
		t.Fatalf("images phải là object 3 slot, được %T", result["images"])
	}
	if images["main"] != "a.jpg" || images["gallery"] != "b.jpg" || images["thumbnail"] != "c.jpg" {
		t.Errorf("mapping theo vị trí sai: %v", images)
	}
	// Ảnh thứ 4 trở đi bị loại theo contract hiện tại của backend
	if len(images) != 3 {
		t.Errorf("chỉ giữ 3 slot cố định, được %d key", len(images))
	}
}

func TestNormalizeProduct_ReshapeImagesThieu(t *testing.T) {
	state := State{"images": []interface{}{"only.jpg"}}

	result, err := NormalizeProduct(state)
	if err != nil {
		t.Fatalf("NormalizeProduct trả về lỗi: %v", err)
	}

	images := result["images"].(State)
	if images["main"] != "only.jpg" {
		t.Errorf("main = %v, muốn only.jpg", images["main"])
	}
	if images["gallery"] != "" || images["thumbnail"] != "" {
		t.Errorf("slot thiếu phải là chuỗi rỗng: %v", images)
	}
}

func TestNormalizeProduct_ObjectDegradedThanhMang(t *testing.T) {
	// variants bị degraded thành object sau một lần merge payload lỗi
	state := State{
		"variants": State{
			"0": State{"storage": "64GB", "price": "100"},
		},
	}

	result, err := NormalizeProduct(state)
	if err != nil {
		t.Fatalf("NormalizeProduct trả về lỗi: %v", err)
	}

	variants, ok := result["variants"].([]interface{})
	if !ok {
		t.Fatalf("variants phải được ép về mảng, được %T", result["variants"])
	}
	if len(variants) != 1 {
		t.Fatalf("variants có %d phần tử, muốn 1", len(variants))
	}
	if variants[0].(State)["price"] != float64(100) {
		t.Errorf("price trong variant phải được coerce sang số: %v", variants[0])
	}
}

func TestNormalizeProduct_LocPlaceholderVaUID(t *testing.T) {
	state := State{
		"topSpecs": []interface{}{"5G", "", "  "},
		"offers": []interface{}{
			State{ElemIDKey: "o1", "title": "Giảm giá", "discount": float64(10), "validUntil": "", "description": ""},
			State{ElemIDKey: "o2", "title": "", "discount": nil, "validUntil": "", "description": ""},
		},
	}

	result, err := NormalizeProduct(state)
	if err != nil {
		t.Fatalf("NormalizeProduct trả về lỗi: %v", err)
	}

	specs := result["topSpecs"].([]interface{})
	if len(specs) != 1 || specs[0] != "5G" {
		t.Errorf("chuỗi rỗng phải bị lọc: %v", specs)
	}

	offers := result["offers"].([]interface{})
	if len(offers) != 1 {
		t.Fatalf("offer placeholder phải bị lọc, còn %d", len(offers))
	}
	kept := offers[0].(State)
	if _, has := kept[ElemIDKey]; has {
		t.Error("uid phải bị loại khỏi wire shape")
	}
	if kept["title"] != "Giảm giá" {
		t.Errorf("offer hợp lệ phải được giữ: %v", kept)
	}
}

func TestFlattenImages_NghichDaoReshape(t *testing.T) {
	state := State{
		"images": State{"main": "a.jpg", "gallery": "b.jpg", "thumbnail": "c.jpg"},
	}

	flattened, err := FlattenImages(state)
	if err != nil {
		t.Fatalf("FlattenImages trả về lỗi: %v", err)
	}
	images, ok := flattened["images"].([]interface{})
	if !ok {
		t.Fatalf("images phải là danh sách, được %T", flattened["images"])
	}
	want := []interface{}{"a.jpg", "b.jpg", "c.jpg"}
	if len(images) != 3 || images[0] != want[0] || images[1] != want[1] || images[2] != want[2] {
		t.Errorf("images = %v, muốn %v", images, want)
	}
}

func TestFlattenImages_SlotGiuaRongGiuCho(t *testing.T) {
	state := State{
		"images": State{"main": "a.jpg", "gallery": "", "thumbnail": "c.jpg"},
	}

	flattened, err := FlattenImages(state)
	if err != nil {
		t.Fatalf("FlattenImages trả về lỗi: %v", err)
	}
	images := flattened["images"].([]interface{})
	if len(images) != 3 || images[1] != "" {
		t.Errorf("slot gallery rỗng phải giữ chỗ bằng chuỗi rỗng: %v", images)
	}

	// Slot rỗng ở cuối bị cắt
	state = State{
		"images": State{"main": "a.jpg", "gallery": "", "thumbnail": ""},
	}
	flattened, err = FlattenImages(state)
	if err != nil {
		t.Fatalf("FlattenImages trả về lỗi: %v", err)
	}
	images = flattened["images"].([]interface{})
	if len(images) != 1 || images[0] != "a.jpg" {
		t.Errorf("slot rỗng ở cuối phải bị cắt: %v", images)
	}
}

func TestEditFormImages_RoundTrip(t *testing.T) {
	// Bản ghi đã lưu → merge lên template → trải ảnh → ép mảng (luồng edit-form)
	// → submit lại qua NormalizeProduct: ảnh phải quay về đúng 3 slot ban đầu
	stored := State{
		"name":   "iPhone 13",
		"images": State{"main": "a.jpg", "gallery": "b.jpg", "thumbnail": "c.jpg"},
	}

	merged := Merge(ProductTemplate(), stored)
	merged, err := FlattenImages(merged)
	if err != nil {
		t.Fatalf("FlattenImages trả về lỗi: %v", err)
	}
	merged, err = CoerceLists(merged, ProductListPaths()...)
	if err != nil {
		t.Fatalf("CoerceLists trả về lỗi: %v", err)
	}

	editImages, ok := merged["images"].([]interface{})
	if !ok || len(editImages) != 3 {
		t.Fatalf("form sửa phải render đủ 3 ảnh, được %v", merged["images"])
	}

	normalized, err := NormalizeProduct(merged)
	if err != nil {
		t.Fatalf("NormalizeProduct trả về lỗi: %v", err)
	}
	images := normalized["images"].(State)
	if images["main"] != "a.jpg" || images["gallery"] != "b.jpg" || images["thumbnail"] != "c.jpg" {
		t.Errorf("round-trip làm mất ảnh: %v", images)
	}
}

func TestNormalizeProduct_ImagesObjectKhongMat(t *testing.T) {
	// Submit thẳng bản ghi đã lưu (images còn dạng object): không được xóa ảnh
	state := State{
		"images": State{"main": "a.jpg", "gallery": "", "thumbnail": "c.jpg"},
	}

	result, err := NormalizeProduct(state)
	if err != nil {
		t.Fatalf("NormalizeProduct trả về lỗi: %v", err)
	}
	images := result["images"].(State)
	if images["main"] != "a.jpg" || images["thumbnail"] != "c.jpg" {
		t.Errorf("ảnh bị mất khi submit object 3 slot: %v", images)
	}
	if images["gallery"] != "" {
		t.Errorf("slot gallery phải giữ rỗng, được %v", images["gallery"])
	}
}

func TestNormalizeProduct_DongMacDinhBiLoc(t *testing.T) {
	// Dòng vừa thêm còn nguyên giá trị mặc định (chuỗi rỗng, số 0, stock=true)
	// là placeholder và không được lưu
	state := ProductTemplate()
	state, _, err := AppendElem(state, "variants", NewVariantElem())
	if err != nil {
		t.Fatalf("AppendElem trả về lỗi: %v", err)
	}
	state, _, err = AppendElem(state, "offers", NewOfferElem())
	if err != nil {
		t.Fatalf("AppendElem trả về lỗi: %v", err)
	}
	state, _, err = AppendElem(state, "variants", State{"storage": "128GB", "price": float64(500)})
	if err != nil {
		t.Fatalf("AppendElem trả về lỗi: %v", err)
	}

	result, err := NormalizeProduct(state)
	if err != nil {
		t.Fatalf("NormalizeProduct trả về lỗi: %v", err)
	}

	variants := result["variants"].([]interface{})
	if len(variants) != 1 {
		t.Fatalf("dòng variant mặc định phải bị lọc, còn %d phần tử", len(variants))
	}
	if variants[0].(State)["storage"] != "128GB" {
		t.Errorf("variant có dữ liệu phải được giữ: %v", variants[0])
	}

	offers := result["offers"].([]interface{})
	if len(offers) != 0 {
		t.Errorf("dòng offer mặc định phải bị lọc: %v", offers)
	}
}

func TestNormalizeProduct_BoolCoerce(t *testing.T) {
	state := State{
		"isActive":     "true",
		"availability": State{"inStock": "false", "quantity": float64(5)},
	}

	result, err := NormalizeProduct(state)
	if err != nil {
		t.Fatalf("NormalizeProduct trả về lỗi: %v", err)
	}

	if result["isActive"] != true {
		t.Errorf("isActive = %v, muốn true", result["isActive"])
	}
	inStock, _ := Get(result, "availability.inStock")
	if inStock != false {
		t.Errorf("availability.inStock = %v, muốn false", inStock)
	}
}
