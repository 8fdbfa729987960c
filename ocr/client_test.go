//go:build ocr

package ocr

import "testing"

func TestClientRecognizeBlankPage(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer client.Close()

	if err := client.SetLanguage("eng"); err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}

	data := createTestPNG(t, 400, 300)
	lines, dims, err := client.RecognizeLines(data, 0)
	if err != nil {
		t.Skipf("Recognition unavailable: %v", err)
	}

	if dims.Width != 400 || dims.Height != 300 {
		t.Errorf("Dimensions = %+v, want 400x300", dims)
	}
	// A blank page yields no text lines.
	for _, line := range lines {
		if line.Text != "" {
			t.Errorf("Unexpected text on blank page: %q", line.Text)
		}
	}
}
