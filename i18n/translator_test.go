package i18n

import "testing"

func TestTranslator_DefaultAndFrench(t *testing.T) {
	data := map[string]string{"type": "Product", "field": "name"}
	if msg := Default().Message("required", data); msg != `Product: missing required field "name"` {
		t.Fatalf("unexpected english message %q", msg)
	}
	if msg := New("fr").Message("required", data); msg != `Product: champ obligatoire manquant « name »` {
		t.Fatalf("unexpected french message %q", msg)
	}
	if msg := New("xx").Message("required", data); msg != Default().Message("required", data) {
		t.Fatalf("unknown language must fall back to english, got %q", msg)
	}
}

func TestTranslator_KindsAndFormats(t *testing.T) {
	msg := Default().Message("invalid_type", map[string]string{"type": "Product", "field": "image", "expected": "array"})
	if msg != `Product: "image" must be an array` {
		t.Fatalf("unexpected message %q", msg)
	}
	msg = New("fr").Message("invalid_format", map[string]string{"field": "url", "format": "url", "got": "x"})
	if msg != `« url » n'est pas un(e) URL absolue valide : x` {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestTranslator_UnknownCodeAndNoTypePrefix(t *testing.T) {
	if msg := Default().Message("parse_error", map[string]string{"detail": "boom"}); msg != "Invalid JSON: boom" {
		t.Fatalf("unexpected message %q", msg)
	}
	if msg := Default().Message("mystery", nil); msg != "mystery" {
		t.Fatalf("unknown codes render as the code, got %q", msg)
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	if len(langs) != 2 || langs[0] != "en" || langs[1] != "fr" {
		t.Fatalf("unexpected languages %v", langs)
	}
}
