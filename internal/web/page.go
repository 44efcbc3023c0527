package web

import (
	"slices"
	"time"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/reveal"
	"github.com/Zachkp/portfolio/internal/scroll"
	"github.com/Zachkp/portfolio/internal/theme"
)

// Page is everything the home page template reads.
type Page struct {
	Site          config.SiteConfig
	Theme         theme.Theme
	ThemeResolved bool
	Nav           []scroll.NavItem
	NavOffset     int
	ActiveSection string

	Personal        content.PersonalInfo
	Socials         []content.SocialLink
	ContactMethods  []content.ContactMethod
	CurrentRole     *content.Experience
	YearsExperience int
	Experiences     []content.Experience
	Technologies    []string
	Projects        []content.Project
	Skills          []string
	SkillGroups     []content.SkillGroup

	Reveal      RevealGroups
	ContactForm ContactForm
	Year        int
}

// RevealGroups holds one staggered entrance group per animated section.
type RevealGroups struct {
	Hero       *reveal.Group
	About      *reveal.Group
	Experience *reveal.Group
	Projects   *reveal.Group
	CTA        *reveal.Group
	Contact    *reveal.Group
}

// ThemeView is the data for the theme toggle fragment.
type ThemeView struct {
	Theme    theme.Theme
	Resolved bool
	// Swap is set when the fragment replaces a toggle already on the page and
	// must also update the document class.
	Swap bool
}

func (v ThemeView) Next() theme.Theme { return v.Theme.Toggle() }

func (p Page) ThemeView() ThemeView {
	return ThemeView{Theme: p.Theme, Resolved: p.ThemeResolved}
}

// ContactForm is the data for the contact form fragments.
type ContactForm struct {
	Form   contact.Payload
	Error  string
	Fields []string
}

// Invalid reports whether field failed validation.
func (f ContactForm) Invalid(field string) bool { return slices.Contains(f.Fields, field) }

func newContactForm(p contact.Payload, errMsg string, invalid []string) ContactForm {
	return ContactForm{Form: p, Error: errMsg, Fields: invalid}
}

// BuildPage assembles the home page from the registry and the resolved theme
// store. A nil store renders the placeholder theme.
func BuildPage(reg *content.Registry, site config.SiteConfig, store *theme.Store, now time.Time) Page {
	p := Page{
		Site:            site,
		Theme:           theme.Placeholder,
		Nav:             scroll.DefaultNav,
		NavOffset:       scroll.DefaultOffset,
		Personal:        reg.Personal(),
		Socials:         reg.SocialLinks(),
		ContactMethods:  reg.ContactMethods(),
		YearsExperience: reg.TotalYearsExperience(),
		Experiences:     reg.Experiences(),
		Technologies:    reg.AllTechnologies(),
		Projects:        reg.Projects(),
		Skills:          reg.Skills(),
		SkillGroups:     reg.SkillGroups(),
		ContactForm:     newContactForm(contact.Payload{}, "", nil),
		Year:            now.Year(),
	}
	if store != nil {
		p.Theme = store.Theme()
		p.ThemeResolved = store.Resolved()
	}
	if role, ok := reg.CurrentRole(); ok {
		p.CurrentRole = &role
	}
	p.Reveal = newRevealGroups(p)
	return p
}

func newRevealGroups(p Page) RevealGroups {
	return RevealGroups{
		// greeting, name, title, tagline, links
		Hero:       reveal.NewGroup("hero", reveal.Hero, 5),
		About:      reveal.NewGroup("about", reveal.About, len(p.Personal.Bio)+1),
		Experience: reveal.NewGroup("experience", reveal.Experience, len(p.Experiences)),
		Projects:   reveal.NewGroup("projects", reveal.Projects, len(p.Projects)),
		CTA:        reveal.NewGroup("cta", reveal.CTA, 2),
		Contact:    reveal.NewGroup("contact", reveal.Contact, 2),
	}
}
