// Package catalogsvc - Test máy trạng thái sản phẩm và sinh slug.
package catalogsvc

import (
	"testing"

	catalogmodels "cashmitra/internal/api/catalog/models"
)

func TestValidateProductStatusTransition_CacCanhHopLe(t *testing.T) {
	allowed := [][2]string{
		{catalogmodels.ProductStatusDraft, catalogmodels.ProductStatusActive},
		{catalogmodels.ProductStatusActive, catalogmodels.ProductStatusArchived},
		{catalogmodels.ProductStatusArchived, catalogmodels.ProductStatusActive},
	}
	for _, edge := range allowed {
		if err := ValidateProductStatusTransition(edge[0], edge[1]); err != nil {
			t.Errorf("%s -> %s trả về lỗi %v, muốn nil", edge[0], edge[1], err)
		}
	}
}

func TestValidateProductStatusTransition_GiuNguyenTrangThai(t *testing.T) {
	for _, status := range []string{catalogmodels.ProductStatusDraft, catalogmodels.ProductStatusActive, catalogmodels.ProductStatusArchived} {
		if err := ValidateProductStatusTransition(status, status); err != nil {
			t.Errorf("giữ nguyên %s phải hợp lệ, nhận lỗi %v", status, err)
		}
	}
}

func TestValidateProductStatusTransition_CanhBiChan(t *testing.T) {
	blocked := [][2]string{
		{catalogmodels.ProductStatusArchived, catalogmodels.ProductStatusDraft},
		{catalogmodels.ProductStatusActive, catalogmodels.ProductStatusDraft},
		{catalogmodels.ProductStatusDraft, catalogmodels.ProductStatusArchived},
	}
	for _, edge := range blocked {
		if err := ValidateProductStatusTransition(edge[0], edge[1]); err == nil {
			t.Errorf("%s -> %s phải bị chặn", edge[0], edge[1])
		}
	}
	if err := ValidateProductStatusTransition("unknown", catalogmodels.ProductStatusActive); err == nil {
		t.Error("trạng thái nguồn lạ phải bị chặn")
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"iPhone 13 Pro Max", "iphone-13-pro-max"},
		{"  Galaxy S23  ", "galaxy-s23"},
		{"MacBook_Air M2", "macbook-air-m2"},
		{"Pixel 8 (128GB)", "pixel-8-128gb"},
		{"---", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, muốn %q", tc.in, got, tc.want)
		}
	}
}
