package sessionmodels

import (
	"testing"
)

func TestIsOpen(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{SessionStatusActive, true},
		{SessionStatusExtended, true},
		{SessionStatusCompleted, false},
		{SessionStatusExpired, false},
		{SessionStatusAbandoned, false},
		{"", false},
	}
	for _, tc := range cases {
		session := SellSession{Status: tc.status}
		if got := session.IsOpen(); got != tc.want {
			t.Errorf("IsOpen với status %q = %v, muốn %v", tc.status, got, tc.want)
		}
	}
}
