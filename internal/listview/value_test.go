package listview

import "testing"

func TestTimestampParsesRFC3339(t *testing.T) {
	value := Timestamp("2024-03-05T10:30:00Z")
	if value.Kind() != KindTime {
		t.Fatalf("Kind = %v, want KindTime", value.Kind())
	}
	if got := value.Display(); got != "2024-03-05 10:30" {
		t.Fatalf("Display = %q, want %q", got, "2024-03-05 10:30")
	}
}

func TestTimestampParsesDateOnly(t *testing.T) {
	value := Timestamp("2024-01-02")
	if value.Kind() != KindTime {
		t.Fatalf("Kind = %v, want KindTime", value.Kind())
	}
}

func TestTimestampEmptyIsNull(t *testing.T) {
	if !Timestamp("  ").IsNull() {
		t.Fatal("expected empty timestamp to be null")
	}
}

func TestTimestampUnparsableDegradesToString(t *testing.T) {
	value := Timestamp("next tuesday")
	if value.Kind() != KindString {
		t.Fatalf("Kind = %v, want KindString", value.Kind())
	}
	if got := value.Display(); got != "next tuesday" {
		t.Fatalf("Display = %q, want %q", got, "next tuesday")
	}
}

func TestStringPtrNil(t *testing.T) {
	if !StringPtr(nil).IsNull() {
		t.Fatal("expected nil string pointer to be null")
	}
}

func TestIntPtrNil(t *testing.T) {
	if !IntPtr(nil).IsNull() {
		t.Fatal("expected nil int pointer to be null")
	}
}

func TestNumberDisplayDropsTrailingZeros(t *testing.T) {
	if got := Number(42).Display(); got != "42" {
		t.Fatalf("Display = %q, want %q", got, "42")
	}
	if got := Number(3.5).Display(); got != "3.5" {
		t.Fatalf("Display = %q, want %q", got, "3.5")
	}
}

func TestBoolDisplay(t *testing.T) {
	if got := Bool(true).Display(); got != "yes" {
		t.Fatalf("Display = %q, want %q", got, "yes")
	}
	if got := Bool(false).Display(); got != "no" {
		t.Fatalf("Display = %q, want %q", got, "no")
	}
}

func TestNullDisplayIsEmpty(t *testing.T) {
	if got := Null().Display(); got != "" {
		t.Fatalf("Display = %q, want empty", got)
	}
}
