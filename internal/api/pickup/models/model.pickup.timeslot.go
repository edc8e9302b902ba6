package pickupmodels

import (
	"cashmitra/internal/common"
)

// Các khung giờ lấy hàng cố định
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
	SlotNight     = "night"
)

// Bảng ánh xạ hai chiều giữa mã khung giờ và nhãn hiển thị.
// Mã/nhãn ngoài bảng bị từ chối, không có fallback ngầm.
var slotLabels = map[string]string{
	SlotMorning:   "9:00 AM - 12:00 PM",
	SlotAfternoon: "12:00 PM - 3:00 PM",
	SlotEvening:   "3:00 PM - 6:00 PM",
	SlotNight:     "6:00 PM - 9:00 PM",
}

var labelSlots = func() map[string]string {
	m := make(map[string]string, len(slotLabels))
	for slot, label := range slotLabels {
		m[label] = slot
	}
	return m
}()

// AllSlots trả về danh sách mã khung giờ theo thứ tự trong ngày
func AllSlots() []string {
	return []string{SlotMorning, SlotAfternoon, SlotEvening, SlotNight}
}

// SlotLabel trả về nhãn hiển thị của một mã khung giờ
func SlotLabel(slot string) (string, error) {
	label, ok := slotLabels[slot]
	if !ok {
		return "", common.ErrInvalidTimeSlot.WithMessage("Khung giờ không hợp lệ: %q", slot)
	}
	return label, nil
}

// SlotFromLabel trả về mã khung giờ từ nhãn hiển thị
func SlotFromLabel(label string) (string, error) {
	slot, ok := labelSlots[label]
	if !ok {
		return "", common.ErrInvalidTimeSlot.WithMessage("Nhãn khung giờ không hợp lệ: %q", label)
	}
	return slot, nil
}

// ValidSlot kiểm tra một mã khung giờ có thuộc bảng không
func ValidSlot(slot string) bool {
	_, ok := slotLabels[slot]
	return ok
}
