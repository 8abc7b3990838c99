package preview

import (
	"strconv"

	"github.com/CTAG07/Sitewright/pkg/content"
	"github.com/CTAG07/Sitewright/pkg/wizard"
)

// MaxServiceCards is the number of services shown in the services grid.
const MaxServiceCards = 4

// Section identifies a block of the generated page.
type Section string

const (
	SectionHeader   Section = "header"
	SectionHero     Section = "hero"
	SectionServices Section = "services"
	SectionAbout    Section = "about"
	SectionContact  Section = "contact"
	SectionFooter   Section = "footer"
)

var sectionOrder = []Section{SectionHeader, SectionHero, SectionServices, SectionAbout, SectionContact, SectionFooter}

// Sections returns the page sections in render order.
func Sections() []Section {
	return append([]Section(nil), sectionOrder...)
}

// Link is a navigation or footer anchor.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// ServiceCard is one tile of the services grid.
type ServiceCard struct {
	Title string `json:"title"`
	Blurb string `json:"blurb"`
}

type Hero struct {
	Heading      string `json:"heading"`
	Tagline      string `json:"tagline"`
	PrimaryCTA   string `json:"primary_cta"`
	SecondaryCTA string `json:"secondary_cta"`
	NavCTA       string `json:"nav_cta"`
}

type About struct {
	Heading    string   `json:"heading"`
	Body       string   `json:"body"`
	Highlights []string `json:"highlights"`
	ImageLabel string   `json:"image_label"`
}

type Contact struct {
	Heading string `json:"heading"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type Footer struct {
	Brand     string `json:"brand"`
	Tagline   string `json:"tagline"`
	Links     []Link `json:"links"`
	Copyright string `json:"copyright"`
}

// Document is the fully resolved content of a generated site.
type Document struct {
	Brand    string             `json:"brand"`
	Tagline  string             `json:"tagline"`
	Palette  content.Palette    `json:"palette"`
	Nav      []Link             `json:"nav"`
	Hero     Hero               `json:"hero"`
	Services []ServiceCard      `json:"services"`
	About    About              `json:"about"`
	Contact  Contact            `json:"contact"`
	Footer   Footer             `json:"footer"`
	Source   wizard.WebsiteData `json:"source"`
}

const (
	placeholderPhone   = "(555) 123-4567"
	placeholderAddress = "123 Business St, City, State 12345"
)

// Build resolves a frozen record into a Document. It never fails: every lookup
// has a fallback.
func Build(data wizard.WebsiteData) Document {
	brand := content.BrandName(data.BusinessName, data.BusinessType)
	tagline := content.Tagline(data.BusinessType)

	services := content.Services(data.Services, data.BusinessType)
	if len(services) > MaxServiceCards {
		services = services[:MaxServiceCards]
	}
	cards := make([]ServiceCard, len(services))
	for i, s := range services {
		cards[i] = ServiceCard{Title: s, Blurb: content.ServiceBlurb(s)}
	}

	return Document{
		Brand:   brand,
		Tagline: tagline,
		Palette: content.PaletteFor(data.ColorScheme),
		Nav: []Link{
			{"Home", "#"},
			{"About", "#about"},
			{"Services", "#services"},
			{"Contact", "#contact"},
		},
		Hero: Hero{
			Heading:      brand,
			Tagline:      tagline,
			PrimaryCTA:   "Learn More",
			SecondaryCTA: "Contact Us",
			NavCTA:       "Get Started",
		},
		Services: cards,
		About: About{
			Heading:    "About " + brand,
			Body:       content.AboutText(data.Description, brand, data.BusinessType),
			Highlights: []string{"Professional Excellence", "Customer Satisfaction", "Trusted by Many"},
			ImageLabel: "About Image",
		},
		Contact: Contact{
			Heading: "Get In Touch",
			Phone:   placeholderPhone,
			Email:   content.ContactEmail(brand),
			Address: placeholderAddress,
		},
		Footer: Footer{
			Brand:   brand,
			Tagline: tagline,
			Links: []Link{
				{"Privacy Policy", "#"},
				{"Terms of Service", "#"},
				{"Contact", "#"},
			},
			Copyright: copyright(data, brand),
		},
		Source: data,
	}
}

// copyright dates the footer with the generation year.
func copyright(data wizard.WebsiteData, brand string) string {
	if !data.Generated() {
		return "© " + brand + ". All rights reserved."
	}
	return "© " + strconv.Itoa(data.GeneratedAt.Year()) + " " + brand + ". All rights reserved."
}
