package i18n

import "testing"

func TestGetCatalogFallback(t *testing.T) {
	base := GetCatalog("en-US")
	if base == nil {
		t.Fatal("expected base catalog")
	}
	if fallback := GetCatalog("missing-locale"); fallback != base {
		t.Fatal("expected fallback to en-US catalog")
	}
	if empty := GetCatalog(""); empty != base {
		t.Fatal("expected blank locale to resolve to en-US catalog")
	}
}

func TestEmbeddedMessages(t *testing.T) {
	tests := []struct {
		locale   string
		code     Code
		metadata map[string]string
		want     string
	}{
		{
			locale:   "en-US",
			code:     "MALFORMED_INPUT",
			metadata: map[string]string{"Field": "growth", "Value": "rol", "Suggestion": "roll"},
			want:     "Invalid value for growth: rol (did you mean roll?)",
		},
		{
			locale:   "en-US",
			code:     "MALFORMED_INPUT",
			metadata: map[string]string{"Field": "dexterity"},
			want:     "Invalid value for dexterity",
		},
		{
			locale:   "pt-BR",
			code:     "DEGENERATE_AVERAGE",
			metadata: map[string]string{"Average": "0"},
			want:     "A média dos atributos é 0, então nenhuma razão pode ser calculada",
		},
	}
	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.code, func(t *testing.T) {
			if got := GetCatalog(tt.locale).Format(tt.code, tt.metadata); got != tt.want {
				t.Fatalf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "hello {{.Name}}",
	})

	if cat.Format("unknown", nil) != "unknown" {
		t.Fatal("expected code fallback when template missing")
	}
	if got := cat.Format("code", nil); got != "hello " {
		t.Fatalf("missing metadata rendered %q, want %q", got, "hello ")
	}
	if got := cat.Format("code", map[string]string{"Other": "x"}); got != "hello " {
		t.Fatalf("absent key rendered %q, want %q", got, "hello ")
	}
	if cat.Format("code", map[string]string{"Name": "Aura"}) != "hello Aura" {
		t.Fatal("expected cached template to render metadata")
	}
}

func TestFormatTemplateErrorFallback(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "{{ if .Name }}",
	})
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ if .Name }}" {
		t.Fatal("expected template fallback on parse error")
	}
}

func TestFormatTemplateExecutionErrorFallback(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "{{ call .Name }}",
	})
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ call .Name }}" {
		t.Fatal("expected template fallback on execute error")
	}
}

func TestRegisterCatalog(t *testing.T) {
	custom := NewCatalog("custom", map[Code]string{"code": "ok"})
	RegisterCatalog("custom", custom)
	if got := GetCatalog("custom"); got != custom {
		t.Fatal("expected registered catalog")
	}
}
