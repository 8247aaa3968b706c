package terminal

import "testing"

func TestGetSize_Positive(t *testing.T) {
	w, h := GetSize()
	if w <= 0 || h <= 0 {
		t.Errorf("GetSize() = %d, %d; want positive", w, h)
	}
	if !IsTerminal() && (w != DefaultWidth || h != DefaultHeight) {
		t.Errorf("GetSize() without a terminal = %d, %d; want defaults %d, %d", w, h, DefaultWidth, DefaultHeight)
	}
}
