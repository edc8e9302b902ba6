// Package utility - Test format kích thước file hiển thị trong thông báo lỗi upload.
package utility

import (
	"testing"
)

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		bytes uint64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{10 * 1024 * 1024, "10.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
	}
	for _, tc := range cases {
		if got := FormatBytes(tc.bytes); got != tc.want {
			t.Errorf("FormatBytes(%d) = %q, muốn %q", tc.bytes, got, tc.want)
		}
	}
}

func TestString2ObjectID(t *testing.T) {
	hex := "65f1c2d3e4a5b6c7d8e9f0a1"
	if String2ObjectID(hex).Hex() != hex {
		t.Errorf("String2ObjectID(%q) không round-trip", hex)
	}
	if !String2ObjectID("khong-hop-le").IsZero() {
		t.Error("chuỗi không hợp lệ phải trả về NilObjectID")
	}
}
