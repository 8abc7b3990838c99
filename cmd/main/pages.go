package main

import (
	"net/url"
	"strings"
	"time"

	"github.com/CTAG07/Sitewright/pkg/content"
	"github.com/CTAG07/Sitewright/pkg/preview"
	"github.com/CTAG07/Sitewright/pkg/wizard"
)

const notSpecified = "Not specified"

// page carries the fields every full page template reads through the layout.
type page struct {
	Title   string
	Flashes []Flash
	// Refresh, when non-zero, makes the page reload itself after that many seconds.
	Refresh int
}

type landingHero struct {
	Eyebrow    string
	Heading    string
	Subheading string
	CTA        string
	Badges     []string
}

type landingCard struct {
	Number      string
	Title       string
	Description string
}

type landingCTA struct {
	Heading string
	Body    string
	Button  string
	Badges  []string
}

type landingPage struct {
	page
	Hero               landingHero
	FeaturesHeading    string
	FeaturesSubheading string
	Features           []landingCard
	StepsHeading       string
	StepsSubheading    string
	Steps              []landingCard
	StepsCTA           string
	CTA                landingCTA
}

func newLandingPage(flashes []Flash) landingPage {
	return landingPage{
		page: page{Title: "Sitewright - Build Beautiful Websites in Minutes", Flashes: flashes},
		Hero: landingHero{
			Eyebrow:    "AI-Powered Website Creation",
			Heading:    "Build Beautiful Websites in Minutes",
			Subheading: "Transform your ideas into professional, responsive websites with our AI-powered builder. No coding required, just answer a few questions and watch the magic happen.",
			CTA:        "Start Building Now",
			Badges:     []string{"No Credit Card Required", "Ready in 3 Minutes"},
		},
		FeaturesHeading:    "Everything You Need to Succeed Online",
		FeaturesSubheading: "Our AI-powered platform combines cutting-edge technology with beautiful design to create websites that convert.",
		Features: []landingCard{
			{Title: "AI-Powered Generation", Description: "Advanced AI analyzes your business needs and creates a custom website in minutes, not hours."},
			{Title: "Mobile-First Design", Description: "Every website is built responsive-first, ensuring perfect functionality across all devices."},
			{Title: "Beautiful Templates", Description: "Choose from professionally designed templates that match your industry and brand."},
			{Title: "SEO Optimized", Description: "Built-in SEO best practices ensure your website ranks well in search results."},
			{Title: "Lightning Fast", Description: "Optimized code and modern hosting deliver blazing-fast loading speeds."},
			{Title: "Export & Customize", Description: "Get clean, readable code that you can customize or host anywhere you want."},
		},
		StepsHeading:    "How It Works",
		StepsSubheading: "Creating your perfect website is as easy as 1-2-3. Our AI handles the technical complexity while you focus on your business.",
		Steps: []landingCard{
			{Number: "01", Title: "Answer Simple Questions", Description: "Tell us about your business, services, and preferences. Our smart questionnaire guides you through the process."},
			{Number: "02", Title: "AI Generates Your Site", Description: "Our advanced AI analyzes your inputs and creates a beautiful, professional website tailored to your needs."},
			{Number: "03", Title: "Launch & Customize", Description: "Preview your site, make adjustments, and launch. Export the code or host with us - your choice!"},
		},
		StepsCTA: "Start Your Free Website",
		CTA: landingCTA{
			Heading: "Ready to Build Your Dream Website?",
			Body:    "Join thousands of businesses who have transformed their online presence with our AI-powered website builder.",
			Button:  "Get Started Free",
			Badges:  []string{"Free Forever Plan", "No Setup Fees", "Export Code Anytime"},
		},
	}
}

type builderPage struct {
	page
	Step          int
	TotalSteps    int
	Progress      int
	Busy          bool
	Data          wizard.WebsiteData
	BusinessTypes []content.BusinessTypeOption
	ColorSchemes  []content.ColorSchemeOption

	DisplayType        string
	SchemeLabel        string
	ServicesDisplay    string
	DescriptionDisplay string
}

func newBuilderPage(state wizard.State, flashes []Flash, refresh int) builderPage {
	p := builderPage{
		page:          page{Title: "Create Your Perfect Website - Sitewright", Flashes: flashes},
		Step:          int(state.Step),
		TotalSteps:    2,
		Busy:          state.Busy,
		Data:          state.Data,
		BusinessTypes: content.BusinessTypes(),
		ColorSchemes:  content.ColorSchemes(),
		DisplayType:   content.DisplayType(state.Data.BusinessType),
		SchemeLabel:   state.Data.ColorScheme.Label(),
	}
	if p.SchemeLabel == "" {
		// Unknown schemes render with the default palette.
		p.SchemeLabel = content.DefaultColorScheme.Label()
	}
	p.Progress = p.Step * 100 / p.TotalSteps
	if state.Busy {
		p.Refresh = refresh
	}
	p.ServicesDisplay = orNotSpecified(state.Data.Services)
	p.DescriptionDisplay = orNotSpecified(state.Data.Description)
	return p
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSpecified
	}
	return s
}

// tab is a link in one of the preview toolbars.
type tab struct {
	Label  string
	Href   string
	Active bool
}

type previewPage struct {
	page
	Doc       preview.Document
	Badges    []string
	Viewport  preview.Viewport
	Frame     preview.Frame
	Pane      preview.Pane
	Panes     []tab
	Viewports []tab
	Snippet   string
}

func newPreviewPage(data wizard.WebsiteData, view preview.Viewport, pane preview.Pane, flashes []Flash, now time.Time) previewPage {
	doc := preview.Build(data)
	p := previewPage{
		page:     page{Title: doc.Brand + " - Preview", Flashes: flashes},
		Doc:      doc,
		Badges:   preview.Badges(doc, now),
		Viewport: view,
		Frame:    view.Frame(),
		Pane:     pane,
		Snippet:  preview.Snippet(doc),
	}
	p.Panes = []tab{
		{Label: "Preview", Href: previewHref(view, preview.PanePreview), Active: pane == preview.PanePreview},
		{Label: "Code", Href: previewHref(view, preview.PaneCode), Active: pane == preview.PaneCode},
	}
	for _, v := range preview.Viewports {
		p.Viewports = append(p.Viewports, tab{Label: v.Label(), Href: previewHref(v, pane), Active: v == view})
	}
	return p
}

func previewHref(view preview.Viewport, pane preview.Pane) string {
	q := url.Values{}
	q.Set("view", string(view))
	q.Set("pane", string(pane))
	return "/build/preview?" + q.Encode()
}
