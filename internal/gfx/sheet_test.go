package gfx

import "testing"

func TestParseSheet(t *testing.T) {
	sheet, err := ParseSheet(`
		0123
		4567
		89ab
	`)
	if err != nil {
		t.Fatalf("ParseSheet failed: %v", err)
	}

	if sheet.Width() != 4 || sheet.Height() != 3 {
		t.Fatalf("Sheet should be 4x3, got %dx%d", sheet.Width(), sheet.Height())
	}

	if sheet.At(0, 0) != ColorBlack {
		t.Errorf("At(0,0) = %d, expected 0", sheet.At(0, 0))
	}
	if sheet.At(3, 0) != ColorDarkGreen {
		t.Errorf("At(3,0) = %d, expected 3", sheet.At(3, 0))
	}
	if sheet.At(3, 2) != ColorGreen {
		t.Errorf("At(3,2) = %d, expected 11", sheet.At(3, 2))
	}
}

func TestParseSheetRejectsRaggedRows(t *testing.T) {
	if _, err := ParseSheet("012\n01"); err == nil {
		t.Error("ParseSheet should reject rows of different widths")
	}
}

func TestParseSheetRejectsBadDigits(t *testing.T) {
	if _, err := ParseSheet("01x3"); err == nil {
		t.Error("ParseSheet should reject non-hex pixels")
	}
	if _, err := ParseSheet("01F3"); err == nil {
		t.Error("ParseSheet should reject uppercase hex pixels")
	}
}

func TestParseSheetRejectsEmpty(t *testing.T) {
	if _, err := ParseSheet("\n  \n"); err == nil {
		t.Error("ParseSheet should reject an empty sheet")
	}
}

func TestSheetAtOutOfBounds(t *testing.T) {
	sheet := MustParseSheet("88\n88")

	if sheet.At(-1, 0) != ColorBlack {
		t.Error("Out of bounds At should return black")
	}
	if sheet.At(0, 5) != ColorBlack {
		t.Error("Out of bounds At should return black")
	}
}

func TestMustParseSheetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseSheet should panic on malformed art")
		}
	}()
	MustParseSheet("zz")
}
