package partnermodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái hồ sơ đối tác (KYC)
const (
	PartnerStatusPending   = "pending"
	PartnerStatusSubmitted = "submitted"
	PartnerStatusApproved  = "approved"
	PartnerStatusRejected  = "rejected"
)

// Các trạng thái xác minh hiển thị cho đối tác
const (
	VerificationUnverified = "unverified"
	VerificationVerified   = "verified"
	VerificationRejected   = "rejected"
)

// PartnerDocument là một giấy tờ KYC đã upload.
// Slot cố định: "pan", "gst", "aadhaar"; giấy tờ bổ sung dùng slot "other".
type PartnerDocument struct {
	Slot string `json:"slot" bson:"slot"` // Loại giấy tờ
	Name string `json:"name" bson:"name"` // Tên file hiển thị
	URL  string `json:"url" bson:"url"`   // URL file đã upload
}

// PartnerKYC là khối thông tin định danh doanh nghiệp của đối tác
type PartnerKYC struct {
	PanNumber     string            `json:"panNumber" bson:"panNumber"`         // Mã số thuế cá nhân (PAN)
	GstNumber     string            `json:"gstNumber" bson:"gstNumber"`         // Mã số GST
	AadhaarNumber string            `json:"aadhaarNumber" bson:"aadhaarNumber"` // Số định danh Aadhaar
	Documents     []PartnerDocument `json:"documents" bson:"documents"`         // Giấy tờ đã nộp
}

// PartnerReview ghi nhận lần duyệt hồ sơ gần nhất
type PartnerReview struct {
	ReviewedBy string `json:"reviewedBy" bson:"reviewedBy"` // ID admin duyệt
	ReviewedAt int64  `json:"reviewedAt" bson:"reviewedAt"` // Thời điểm duyệt (ms)
	Note       string `json:"note" bson:"note"`             // Ghi chú; bắt buộc khi từ chối
}

// PartnerWallet là ví thanh toán của đối tác
type PartnerWallet struct {
	Balance  float64 `json:"balance" bson:"balance"`                   // Số dư hiện tại
	Currency string  `json:"currency" bson:"currency" default:"INR"`   // Loại tiền
}

// WalletEntry là một giao dịch ví (credit/debit)
type WalletEntry struct {
	ID     string  `json:"id" bson:"id"`         // UUID giao dịch
	Type   string  `json:"type" bson:"type"`     // credit | debit
	Amount float64 `json:"amount" bson:"amount"` // Số tiền (> 0)
	Reason string  `json:"reason" bson:"reason"` // Lý do giao dịch
	At     int64   `json:"at" bson:"at"`         // Thời điểm (ms)
}

// Partner là hồ sơ đối tác thu mua: thông tin doanh nghiệp, KYC,
// trạng thái duyệt và ví thanh toán.
type Partner struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`                                  // ID của đối tác
	Name         string             `json:"name" bson:"name" index:"text"`                            // Tên người đại diện
	Email        string             `json:"email" bson:"email" index:"unique"`                        // Email liên hệ, duy nhất
	Phone        string             `json:"phone" bson:"phone"`                                       // Số điện thoại
	BusinessName string             `json:"businessName" bson:"businessName"`                         // Tên cửa hàng/doanh nghiệp
	Address      string             `json:"address" bson:"address"`                                   // Địa chỉ cửa hàng
	Pincode      string             `json:"pincode" bson:"pincode"`                                   // Mã bưu chính

	KYC                PartnerKYC    `json:"kyc" bson:"kyc"`                                                   // Hồ sơ KYC
	Status             string        `json:"status" bson:"status" default:"pending"`                           // pending | submitted | approved | rejected
	VerificationStatus string        `json:"verificationStatus" bson:"verificationStatus" default:"unverified"` // unverified | verified | rejected
	Review             PartnerReview `json:"review" bson:"review"`                                             // Lần duyệt gần nhất
	Wallet             PartnerWallet `json:"wallet" bson:"wallet"`                                             // Ví thanh toán
	WalletHistory      []WalletEntry `json:"walletHistory" bson:"walletHistory"`                               // Lịch sử giao dịch ví
	UserActive         bool          `json:"userActive" bson:"userActive" default:"true"`                      // Tài khoản đăng nhập đang mở

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// CanTransition kiểm tra cạnh chuyển trạng thái hồ sơ có hợp lệ không.
// Chỉ bốn cạnh được phép: pending|submitted → approved|rejected.
// approved và rejected là trạng thái kết thúc, không có cạnh đi ra.
func CanTransition(current, next string) bool {
	switch current {
	case PartnerStatusPending, PartnerStatusSubmitted:
		return next == PartnerStatusApproved || next == PartnerStatusRejected
	default:
		return false
	}
}
