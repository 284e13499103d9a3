package platform

import "testing"

func TestParseExternalURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"https://www.example.com/recipe/1", false},
		{"  http://example.com  ", false},
		{"HTTPS://EXAMPLE.COM", false},
		{"", true},
		{"javascript:alert(1)", true},
		{"file:///etc/passwd", true},
		{"/relative/path", true},
		{"https://", true},
	}

	for _, tt := range tests {
		_, err := ParseExternalURL(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseExternalURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestDisplayHost(t *testing.T) {
	u, err := ParseExternalURL("https://www.foodista.com/recipe/ABC")
	if err != nil {
		t.Fatal(err)
	}
	if got := DisplayHost(u); got != "foodista.com" {
		t.Errorf("expected 'foodista.com', got %q", got)
	}
	if got := DisplayHost(nil); got != "" {
		t.Errorf("expected empty host for nil URL, got %q", got)
	}
}
