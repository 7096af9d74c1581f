package utils

import (
	"testing"
	"time"
)

func TestFormatTanggalIndonesia(t *testing.T) {
	// 2025-01-06 is a Monday.
	ts := time.Date(2025, time.January, 6, 14, 30, 0, 0, time.Local)

	got := FormatTanggalIndonesia(ts)
	want := "Senin 06 Januari 2025 14:30"
	if got != want {
		t.Fatalf("FormatTanggalIndonesia = %q, want %q", got, want)
	}
}
