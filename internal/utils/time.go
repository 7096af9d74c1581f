package utils

import (
	"fmt"
	"time"
)

const layoutDateTime = "2006-01-02 15:04:05"

var hariIndonesia = []string{
	"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
}

var bulanIndonesia = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}

// FormatTanggalIndonesia renders a timestamp the way the mobile app shows
// it: "Senin 06 Januari 2025 14:30".
func FormatTanggalIndonesia(t time.Time) string {
	t = t.In(time.Local)
	return fmt.Sprintf("%s %02d %s %d %02d:%02d",
		hariIndonesia[int(t.Weekday())],
		t.Day(),
		bulanIndonesia[int(t.Month())-1],
		t.Year(),
		t.Hour(),
		t.Minute(),
	)
}
