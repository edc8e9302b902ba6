// Package partnermodels - Test ma trận chuyển trạng thái duyệt hồ sơ đối tác.
package partnermodels

import (
	"testing"
)

func TestCanTransition_CacCanhHopLe(t *testing.T) {
	allowed := [][2]string{
		{PartnerStatusPending, PartnerStatusApproved},
		{PartnerStatusPending, PartnerStatusRejected},
		{PartnerStatusSubmitted, PartnerStatusApproved},
		{PartnerStatusSubmitted, PartnerStatusRejected},
	}
	for _, edge := range allowed {
		if !CanTransition(edge[0], edge[1]) {
			t.Errorf("CanTransition(%s, %s) = false, muốn true", edge[0], edge[1])
		}
	}
}

func TestCanTransition_TrangThaiCuoiKhongCoCanhRa(t *testing.T) {
	all := []string{PartnerStatusPending, PartnerStatusSubmitted, PartnerStatusApproved, PartnerStatusRejected}
	for _, next := range all {
		if CanTransition(PartnerStatusApproved, next) {
			t.Errorf("approved -> %s phải bị chặn (trạng thái cuối)", next)
		}
		if CanTransition(PartnerStatusRejected, next) {
			t.Errorf("rejected -> %s phải bị chặn (trạng thái cuối)", next)
		}
	}
}

func TestCanTransition_TuChuyenVaoChinhMinh(t *testing.T) {
	// Không cho chuyển vào chính trạng thái hiện tại, kể cả pending -> pending
	all := []string{PartnerStatusPending, PartnerStatusSubmitted, PartnerStatusApproved, PartnerStatusRejected}
	for _, status := range all {
		if CanTransition(status, status) {
			t.Errorf("CanTransition(%s, %s) = true, muốn false", status, status)
		}
	}
}

func TestCanTransition_KhongQuayLuiVeDauVao(t *testing.T) {
	if CanTransition(PartnerStatusPending, PartnerStatusSubmitted) {
		t.Error("pending -> submitted không nằm trong ma trận duyệt của admin console")
	}
	if CanTransition(PartnerStatusSubmitted, PartnerStatusPending) {
		t.Error("submitted -> pending phải bị chặn")
	}
}

func TestCanTransition_TrangThaiLa(t *testing.T) {
	if CanTransition("unknown", PartnerStatusApproved) {
		t.Error("trạng thái nguồn lạ phải bị chặn")
	}
	if CanTransition(PartnerStatusPending, "unknown") {
		t.Error("trạng thái đích lạ phải bị chặn")
	}
}
