package partnerdto

// PartnerCreateInput dữ liệu đầu vào khi tạo hồ sơ đối tác
type PartnerCreateInput struct {
	Name         string `json:"name" validate:"required,max=200"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,max=20"`
	BusinessName string `json:"businessName" validate:"max=300"`
	Address      string `json:"address" validate:"max=500"`
	Pincode      string `json:"pincode" validate:"max=10"`
}

// PartnerUpdateInput dữ liệu đầu vào khi cập nhật hồ sơ đối tác
type PartnerUpdateInput struct {
	Name         string `json:"name" validate:"omitempty,max=200"`
	Phone        string `json:"phone" validate:"omitempty,max=20"`
	BusinessName string `json:"businessName" validate:"max=300"`
	Address      string `json:"address" validate:"max=500"`
	Pincode      string `json:"pincode" validate:"max=10"`
}

// PartnerVerifyInput kết luận duyệt hồ sơ KYC.
// Note bắt buộc khi verdict là rejected.
type PartnerVerifyInput struct {
	Verdict string `json:"verdict" validate:"required,oneof=approved rejected"`
	Note    string `json:"note" validate:"max=1000"`
}

// PartnerWalletInput giao dịch ví (credit/debit)
type PartnerWalletInput struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Reason string  `json:"reason" validate:"required,max=300"`
}
