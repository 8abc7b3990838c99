package content

import (
	"reflect"
	"testing"
)

func TestParseBusinessType(t *testing.T) {
	tests := []struct {
		raw  string
		want BusinessType
	}{
		{"restaurant", Restaurant},
		{"  Law Firm ", LawFirm},
		{"GYM", GymFitness},
		{"gym/fitness", GymFitness},
		{"Spaceport", BusinessType("spaceport")},
		{"", BusinessType("")},
	}
	for _, tt := range tests {
		if got := ParseBusinessType(tt.raw); got != tt.want {
			t.Errorf("ParseBusinessType(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestTagline(t *testing.T) {
	if got := Tagline(Bakery); got != "Freshly baked with love every day" {
		t.Errorf("unexpected bakery tagline: %q", got)
	}
	if got := Tagline(GymFitness); got != "Transform your body, transform your life" {
		t.Errorf("unexpected gym tagline: %q", got)
	}

	// Other has no dedicated tagline, so it shares the fallback with unknown keys.
	for _, key := range []BusinessType{Other, "", "spaceport", "Restaurant"} {
		if got := Tagline(key); got != FallbackTagline {
			t.Errorf("Tagline(%q) = %q, want fallback %q", key, got, FallbackTagline)
		}
	}
}

func TestTaglineCoversEverySelectableType(t *testing.T) {
	for _, opt := range BusinessTypes() {
		if opt.Value == Other {
			continue
		}
		if Tagline(opt.Value) == FallbackTagline {
			t.Errorf("business type %q resolved to the fallback tagline", opt.Value)
		}
	}
}

func TestServices(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		typ  BusinessType
		want []string
	}{
		{"trimmed and ordered", "Cakes, Pastries", Bakery, []string{"Cakes", "Pastries"}},
		{"restaurant defaults", "", Restaurant, []string{"Fine Dining", "Catering", "Private Events", "Takeout"}},
		{"input wins over defaults", "Brunch", Restaurant, []string{"Brunch"}},
		{"empty segments dropped", " a ,, b ,", Other, []string{"a", "b"}},
		{"blank input uses defaults", " , ", LawFirm, []string{"Corporate Law", "Real Estate", "Family Law", "Litigation"}},
		{"generic placeholders", "", TechStartup, []string{"Service 1", "Service 2", "Service 3", "Service 4"}},
		{"unknown type placeholders", "", "spaceport", []string{"Service 1", "Service 2", "Service 3", "Service 4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Services(tt.raw, tt.typ)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Services(%q, %q) = %v, want %v", tt.raw, tt.typ, got, tt.want)
			}
		})
	}
}

func TestDefaultServicesAreIndependentCopies(t *testing.T) {
	first := DefaultServices(Restaurant)
	first[0] = "mutated"
	if DefaultServices(Restaurant)[0] != "Fine Dining" {
		t.Error("mutating a returned default list leaked into later lookups")
	}
}

func TestBrandName(t *testing.T) {
	if got := BrandName("Sunshine Bakery", Bakery); got != "Sunshine Bakery" {
		t.Errorf("expected explicit name to win, got %q", got)
	}
	if got := BrandName("", LawFirm); got != "Law firm Pro" {
		t.Errorf("expected generated brand, got %q", got)
	}
	if got := BrandName("   ", Bakery); got != "Bakery Pro" {
		t.Errorf("expected whitespace name to fall back, got %q", got)
	}
}

func TestDisplayType(t *testing.T) {
	if got := DisplayType(LawFirm); got != "Law Firm" {
		t.Errorf("DisplayType(LawFirm) = %q", got)
	}
	if got := DisplayType(Restaurant); got != "Restaurant" {
		t.Errorf("DisplayType(Restaurant) = %q", got)
	}
}

func TestAboutText(t *testing.T) {
	if got := AboutText("We bake.", "Crumbs", Bakery); got != "We bake." {
		t.Errorf("expected description to win, got %q", got)
	}
	want := "At Crumbs, we are committed to providing exceptional bakery services. With years of experience and a passion for excellence, we deliver results that exceed expectations."
	if got := AboutText("", "Crumbs", Bakery); got != want {
		t.Errorf("AboutText fallback = %q", got)
	}
}

func TestContactEmail(t *testing.T) {
	if got := ContactEmail("Sunshine  Bakery\tCo"); got != "info@sunshinebakeryco.com" {
		t.Errorf("ContactEmail = %q", got)
	}
}

func TestServiceBlurb(t *testing.T) {
	if got := ServiceBlurb("Wedding Cakes"); got != "Professional wedding cakes services tailored to your needs." {
		t.Errorf("ServiceBlurb = %q", got)
	}
}
