package cli

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := map[int64]string{
		0:         "0",
		999:       "999",
		1000:      "1,000",
		1234567:   "1,234,567",
		-4200:     "-4,200",
		100000000: "100,000,000",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount("$", 1500); got != "$1,500" {
		t.Errorf("FormatAmount = %q, want $1,500", got)
	}
	if got := FormatAmount("€", -20); got != "-€20" {
		t.Errorf("FormatAmount = %q, want -€20", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(Share(150, 1750)); got != "8.6%" {
		t.Errorf("FormatPercent = %q, want 8.6%%", got)
	}
	if got := Share(10, 0); got != 0 {
		t.Errorf("Share with zero total = %v, want 0", got)
	}
}
