package content

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BusinessType is the normalized key of a business category as submitted by the builder form.
type BusinessType string

const (
	Restaurant      BusinessType = "restaurant"
	Bakery          BusinessType = "bakery"
	GymFitness      BusinessType = "gym/fitness"
	LawFirm         BusinessType = "law firm"
	MedicalPractice BusinessType = "medical practice"
	Consulting      BusinessType = "consulting"
	Photography     BusinessType = "photography"
	ECommerce       BusinessType = "e-commerce"
	TechStartup     BusinessType = "tech startup"
	RealEstate      BusinessType = "real estate"
	BeautySalon     BusinessType = "beauty salon"
	Construction    BusinessType = "construction"
	Education       BusinessType = "education"
	NonProfit       BusinessType = "non-profit"
	Other           BusinessType = "other"
)

// legacyGym is the key older forms used for the fitness category.
const legacyGym = "gym"

// BusinessTypeOption is a single entry of the business type selector.
type BusinessTypeOption struct {
	Value BusinessType `json:"value"`
	Label string       `json:"label"`
}

var businessTypeOptions = []BusinessTypeOption{
	{Restaurant, "Restaurant"},
	{Bakery, "Bakery"},
	{GymFitness, "Gym/Fitness"},
	{LawFirm, "Law Firm"},
	{MedicalPractice, "Medical Practice"},
	{Consulting, "Consulting"},
	{Photography, "Photography"},
	{ECommerce, "E-commerce"},
	{TechStartup, "Tech Startup"},
	{RealEstate, "Real Estate"},
	{BeautySalon, "Beauty Salon"},
	{Construction, "Construction"},
	{Education, "Education"},
	{NonProfit, "Non-profit"},
	{Other, "Other"},
}

// BusinessTypes returns the selectable business types in display order.
// The returned slice is a copy and may be modified by the caller.
func BusinessTypes() []BusinessTypeOption {
	out := make([]BusinessTypeOption, len(businessTypeOptions))
	copy(out, businessTypeOptions)
	return out
}

// ParseBusinessType normalizes a raw form value into a BusinessType. Matching is
// case-insensitive and ignores surrounding whitespace. Unknown values are kept
// (normalized) rather than rejected, since every lookup has a fallback.
func ParseBusinessType(raw string) BusinessType {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == legacyGym {
		return GymFitness
	}
	return BusinessType(key)
}

// Known reports whether t is one of the selectable business types.
func (t BusinessType) Known() bool {
	for _, opt := range businessTypeOptions {
		if opt.Value == t {
			return true
		}
	}
	return false
}

// Tagline returns the hero tagline for a business type.
func Tagline(t BusinessType) string {
	switch t {
	case Restaurant:
		return "Exceptional dining experiences await"
	case Bakery:
		return "Freshly baked with love every day"
	case GymFitness:
		return "Transform your body, transform your life"
	case LawFirm:
		return "Justice, integrity, and expert legal counsel"
	case MedicalPractice:
		return "Your health is our priority"
	case Consulting:
		return "Strategic solutions for business success"
	case Photography:
		return "Capturing life's most precious moments"
	case ECommerce:
		return "Quality products, exceptional service"
	case TechStartup:
		return "Innovation that shapes the future"
	case RealEstate:
		return "Finding your perfect home"
	case BeautySalon:
		return "Where beauty meets excellence"
	case Construction:
		return "Building dreams with precision"
	case Education:
		return "Empowering minds for tomorrow"
	case NonProfit:
		return "Making a difference in our community"
	default:
		return FallbackTagline
	}
}

// FallbackTagline is used for business types without a dedicated tagline.
const FallbackTagline = "Excellence in everything we do"

// DefaultServices returns the service list shown when the user did not enter any.
func DefaultServices(t BusinessType) []string {
	switch t {
	case Restaurant:
		return []string{"Fine Dining", "Catering", "Private Events", "Takeout"}
	case Bakery:
		return []string{"Custom Cakes", "Wedding Cakes", "Daily Pastries", "Catering"}
	case GymFitness:
		return []string{"Personal Training", "Group Classes", "Nutrition Coaching", "Wellness Programs"}
	case LawFirm:
		return []string{"Corporate Law", "Real Estate", "Family Law", "Litigation"}
	case MedicalPractice:
		return []string{"General Medicine", "Preventive Care", "Specialist Referrals", "Health Screenings"}
	case Consulting:
		return []string{"Strategy Consulting", "Process Improvement", "Digital Transformation", "Training"}
	case Photography:
		return []string{"Wedding Photography", "Portrait Sessions", "Event Photography", "Commercial Shoots"}
	case ECommerce:
		return []string{"Online Shopping", "Fast Shipping", "Customer Support", "Returns & Exchanges"}
	default:
		return []string{"Service 1", "Service 2", "Service 3", "Service 4"}
	}
}

// Services resolves the ordered service list for a site. A non-empty
// comma-separated input is split and trimmed with empty segments dropped;
// otherwise the business type's defaults are used.
func Services(raw string, t BusinessType) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return DefaultServices(t)
	}
	return out
}

// BrandName returns the business name, or "<Type> Pro" when no name was given.
func BrandName(name string, t BusinessType) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return upperFirst(string(t)) + " Pro"
}

// DisplayType formats a business type for display, capitalizing every word.
func DisplayType(t BusinessType) string {
	return cases.Title(language.English).String(string(t))
}

// AboutText returns the about-section body: the user's description, or a
// generated sentence built from the brand and business type.
func AboutText(description, brand string, t BusinessType) string {
	if d := strings.TrimSpace(description); d != "" {
		return d
	}
	return "At " + brand + ", we are committed to providing exceptional " + string(t) +
		" services. With years of experience and a passion for excellence, we deliver results that exceed expectations."
}

// ContactEmail derives the placeholder contact address for a brand.
func ContactEmail(brand string) string {
	var b strings.Builder
	b.WriteString("info@")
	for _, r := range strings.ToLower(brand) {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	b.WriteString(".com")
	return b.String()
}

// ServiceBlurb returns the one-line description printed under a service card.
func ServiceBlurb(service string) string {
	return "Professional " + strings.ToLower(service) + " services tailored to your needs."
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
