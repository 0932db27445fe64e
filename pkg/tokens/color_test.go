package tokens

import (
	"encoding/json"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{"with hash", "#1b3a5c", RGB{R: 0x1b, G: 0x3a, B: 0x5c}, false},
		{"without hash", "1b3a5c", RGB{R: 0x1b, G: 0x3a, B: 0x5c}, false},
		{"uppercase", "#F0F0F0", RGB{R: 0xf0, G: 0xf0, B: 0xf0}, false},
		{"white", "#ffffff", RGB{R: 255, G: 255, B: 255}, false},
		{"black", "#000000", RGB{}, false},
		{"surrounding space", "  #d4af37  ", RGB{R: 0xd4, G: 0xaf, B: 0x37}, false},

		{"empty", "", RGB{}, true},
		{"short form", "#fff", RGB{}, true},
		{"too long", "#ff00ff00", RGB{}, true},
		{"non-hex digit", "#12345g", RGB{}, true},
		{"named color", "white", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want string
	}{
		{"navy", RGB{R: 0x1b, G: 0x3a, B: 0x5c}, "#1b3a5c"},
		{"black", RGB{}, "#000000"},
		{"white", RGB{R: 255, G: 255, B: 255}, "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Hex(); got != tt.want {
				t.Errorf("Hex() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRGBTextRoundTrip(t *testing.T) {
	orig := RGB{R: 0x9c, G: 0x6b, B: 0x4a}

	text, err := orig.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}

	var back RGB
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q) error = %v", text, err)
	}

	if back != orig {
		t.Errorf("round trip = %v, want %v", back, orig)
	}
}

func TestRGBJSON(t *testing.T) {
	data, err := json.Marshal(RGB{R: 0x1b, G: 0x3a, B: 0x5c})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"#1b3a5c"` {
		t.Errorf("Marshal() = %s, want %q", data, `"#1b3a5c"`)
	}

	var c RGB
	if err := json.Unmarshal([]byte(`"#d4af37"`), &c); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if want := (RGB{R: 0xd4, G: 0xaf, B: 0x37}); c != want {
		t.Errorf("Unmarshal() = %v, want %v", c, want)
	}

	if err := json.Unmarshal([]byte(`"not-a-color"`), &c); err == nil {
		t.Error("Unmarshal(invalid) error = nil, want error")
	}
}
