// Package mediasvc - Test kiểm tra file upload: kích thước và loại MIME.
package mediasvc

import (
	"mime/multipart"
	"net/textproto"
	"testing"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: name,
		Header:   header,
		Size:     size,
	}
}

func TestValidate_MimeDuocHoTro(t *testing.T) {
	service := &MediaService{maxBytes: 10 * 1024 * 1024}

	cases := []struct {
		contentType string
		wantExt     string
	}{
		{"image/jpeg", ".jpg"},
		{"image/png", ".png"},
		{"image/webp", ".webp"},
		{"application/pdf", ".pdf"},
		{"image/jpeg; charset=binary", ".jpg"}, // MIME có tham số phụ vẫn nhận
	}
	for _, tc := range cases {
		ext, err := service.validate(fileHeader("a", tc.contentType, 1024))
		if err != nil {
			t.Errorf("validate(%q) trả về lỗi: %v", tc.contentType, err)
			continue
		}
		if ext != tc.wantExt {
			t.Errorf("validate(%q) = %q, muốn %q", tc.contentType, ext, tc.wantExt)
		}
	}
}

func TestValidate_MimeBiTuChoi(t *testing.T) {
	service := &MediaService{maxBytes: 10 * 1024 * 1024}

	for _, contentType := range []string{"image/gif", "text/html", "application/octet-stream", ""} {
		if _, err := service.validate(fileHeader("a", contentType, 1024)); err == nil {
			t.Errorf("loại MIME %q phải bị từ chối", contentType)
		}
	}
}

func TestValidate_KichThuoc(t *testing.T) {
	service := &MediaService{maxBytes: 1024}

	if _, err := service.validate(fileHeader("empty.jpg", "image/jpeg", 0)); err == nil {
		t.Error("file rỗng phải bị từ chối")
	}
	if _, err := service.validate(fileHeader("big.jpg", "image/jpeg", 2048)); err == nil {
		t.Error("file vượt kích thước tối đa phải bị từ chối")
	}
	if _, err := service.validate(fileHeader("ok.jpg", "image/jpeg", 1024)); err != nil {
		t.Errorf("file đúng giới hạn bị từ chối: %v", err)
	}
}
