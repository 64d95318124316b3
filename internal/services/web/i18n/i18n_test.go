package i18n

import (
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagDefault(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	tag, persist := ResolveTag(r)
	if tag != language.English {
		t.Fatalf("tag = %v, want English", tag)
	}
	if persist {
		t.Fatal("default resolution should not persist a cookie")
	}
}

func TestResolveTagFromQueryParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/?lang=pt-BR", nil)
	tag, persist := ResolveTag(r)
	if tag.String() != "pt-BR" {
		t.Fatalf("tag = %v, want pt-BR", tag)
	}
	if !persist {
		t.Fatal("query-selected language should persist")
	}
}

func TestResolveTagFromCookie(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Cookie", LangCookieName+"=pt-BR")
	tag, persist := ResolveTag(r)
	if tag.String() != "pt-BR" {
		t.Fatalf("tag = %v, want pt-BR", tag)
	}
	if persist {
		t.Fatal("cookie-resolved language should not re-persist")
	}
}

func TestResolveTagRejectsUnsupported(t *testing.T) {
	r := httptest.NewRequest("GET", "/?lang=fr", nil)
	tag, _ := ResolveTag(r)
	if tag != language.English {
		t.Fatalf("tag = %v, want English fallback for unsupported language", tag)
	}
}

func TestResolveTagFromAcceptLanguage(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en;q=0.8")
	tag, _ := ResolveTag(r)
	if tag.String() != "pt-BR" {
		t.Fatalf("tag = %v, want pt-BR", tag)
	}
}

func TestPrinterUsesCatalog(t *testing.T) {
	loc := Printer(language.English)
	if got := loc.Sprintf("title.contacts"); got != "Contacts" {
		t.Fatalf("Sprintf(title.contacts) = %q, want %q", got, "Contacts")
	}

	loc = Printer(language.MustParse("pt-BR"))
	if got := loc.Sprintf("title.contacts"); got != "Contatos" {
		t.Fatalf("Sprintf(title.contacts) = %q, want %q", got, "Contatos")
	}
}

func TestCatalogCoversBothLanguages(t *testing.T) {
	en := translations["en"]
	ptBR := translations["pt-BR"]
	for key := range en {
		if _, ok := ptBR[key]; !ok {
			t.Errorf("missing pt-BR translation for %q", key)
		}
	}
	for key := range ptBR {
		if _, ok := en[key]; !ok {
			t.Errorf("missing en translation for %q", key)
		}
	}
}
