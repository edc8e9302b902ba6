// Package pickupmodels - Test bảng khung giờ hai chiều và chuỗi trạng thái đơn.
package pickupmodels

import (
	"testing"
)

func TestSlotLabel_HaiChieu(t *testing.T) {
	// Mọi mã trong bảng phải tra xuôi ra nhãn rồi tra ngược về đúng mã đó
	for _, slot := range AllSlots() {
		label, err := SlotLabel(slot)
		if err != nil {
			t.Fatalf("SlotLabel(%s) trả về lỗi: %v", slot, err)
		}
		back, err := SlotFromLabel(label)
		if err != nil {
			t.Fatalf("SlotFromLabel(%q) trả về lỗi: %v", label, err)
		}
		if back != slot {
			t.Errorf("tra ngược nhãn %q được %s, muốn %s", label, back, slot)
		}
	}
}

func TestSlotLabel_GiaTriNgoaiBang(t *testing.T) {
	if _, err := SlotLabel("midnight"); err == nil {
		t.Error("mã khung giờ ngoài bảng phải bị từ chối, không fallback")
	}
	if _, err := SlotFromLabel("10:00 PM - 11:00 PM"); err == nil {
		t.Error("nhãn ngoài bảng phải bị từ chối, không fallback")
	}
	if ValidSlot("") {
		t.Error("ValidSlot(\"\") phải là false")
	}
}

func TestAllSlots_ThuTuTrongNgay(t *testing.T) {
	want := []string{SlotMorning, SlotAfternoon, SlotEvening, SlotNight}
	got := AllSlots()
	if len(got) != len(want) {
		t.Fatalf("AllSlots trả về %d slot, muốn %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllSlots[%d] = %s, muốn %s", i, got[i], want[i])
		}
	}
}

func TestCanTransitionStatus_TienMotBuoc(t *testing.T) {
	chain := []string{
		PickupStatusPending,
		PickupStatusConfirmed,
		PickupStatusAssigned,
		PickupStatusInTransit,
		PickupStatusReached,
		PickupStatusPickedUp,
		PickupStatusCompleted,
	}
	for i := 0; i < len(chain)-1; i++ {
		if !CanTransitionStatus(chain[i], chain[i+1]) {
			t.Errorf("%s -> %s phải được phép", chain[i], chain[i+1])
		}
	}
	// Nhảy cóc hai bước bị chặn
	if CanTransitionStatus(PickupStatusPending, PickupStatusAssigned) {
		t.Error("pending -> assigned nhảy cóc phải bị chặn")
	}
	if CanTransitionStatus(PickupStatusInTransit, PickupStatusPickedUp) {
		t.Error("in_transit -> picked_up nhảy cóc phải bị chặn")
	}
	// Đi lùi bị chặn
	if CanTransitionStatus(PickupStatusInTransit, PickupStatusAssigned) {
		t.Error("in_transit -> assigned đi lùi phải bị chặn")
	}
}

func TestCanTransitionStatus_Rescheduled(t *testing.T) {
	// Dời hẹn chỉ trước khi nhân viên xuất phát
	for _, current := range []string{PickupStatusPending, PickupStatusConfirmed, PickupStatusAssigned} {
		if !CanTransitionStatus(current, PickupStatusRescheduled) {
			t.Errorf("%s -> rescheduled phải được phép", current)
		}
	}
	for _, current := range []string{PickupStatusInTransit, PickupStatusReached, PickupStatusPickedUp, PickupStatusCompleted} {
		if CanTransitionStatus(current, PickupStatusRescheduled) {
			t.Errorf("%s -> rescheduled phải bị chặn", current)
		}
	}

	// Từ rescheduled chỉ quay lại chuỗi tại assigned (hoặc hủy)
	if !CanTransitionStatus(PickupStatusRescheduled, PickupStatusAssigned) {
		t.Error("rescheduled -> assigned phải được phép")
	}
	if !CanTransitionStatus(PickupStatusRescheduled, PickupStatusCancelled) {
		t.Error("rescheduled -> cancelled phải được phép")
	}
	for _, next := range []string{PickupStatusPending, PickupStatusInTransit, PickupStatusCompleted, PickupStatusRescheduled} {
		if CanTransitionStatus(PickupStatusRescheduled, next) {
			t.Errorf("rescheduled -> %s phải bị chặn", next)
		}
	}
}

func TestCanBeRescheduled(t *testing.T) {
	for _, current := range []string{PickupStatusPending, PickupStatusConfirmed, PickupStatusAssigned, PickupStatusRescheduled} {
		if !CanBeRescheduled(current) {
			t.Errorf("đơn %s phải còn dời hẹn được", current)
		}
	}
	for _, current := range []string{PickupStatusInTransit, PickupStatusReached, PickupStatusPickedUp, PickupStatusCompleted, PickupStatusCancelled} {
		if CanBeRescheduled(current) {
			t.Errorf("đơn %s không được dời hẹn nữa", current)
		}
	}
}

func TestCanTransitionStatus_Cancel(t *testing.T) {
	for _, current := range []string{PickupStatusPending, PickupStatusAssigned, PickupStatusInTransit} {
		if !CanTransitionStatus(current, PickupStatusCancelled) {
			t.Errorf("%s -> cancelled phải được phép", current)
		}
	}
	// Trạng thái kết thúc không có cạnh ra
	if CanTransitionStatus(PickupStatusCompleted, PickupStatusCancelled) {
		t.Error("completed -> cancelled phải bị chặn")
	}
	if CanTransitionStatus(PickupStatusCancelled, PickupStatusPending) {
		t.Error("cancelled -> pending phải bị chặn")
	}
}
