package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Contact submission outcomes.
const (
	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"
	OutcomeInvalid   = "invalid"
)

// Metrics holds the site's Prometheus collectors on a private registry.
type Metrics struct {
	PageViews            prometheus.Counter
	ThemeChanges         *prometheus.CounterVec
	ContactSubmissions   *prometheus.CounterVec
	ActiveSectionLookups prometheus.Counter

	registry *prometheus.Registry
}

// New creates and registers all collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		PageViews: factory.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_page_views_total",
			Help: "Total number of full page renders",
		}),
		ThemeChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_theme_changes_total",
			Help: "Theme preference changes by resulting theme",
		}, []string{"theme"}),
		ContactSubmissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_contact_submissions_total",
			Help: "Contact form submissions by outcome",
		}, []string{"outcome"}),
		ActiveSectionLookups: factory.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_active_section_lookups_total",
			Help: "Active navigation section computations served",
		}),
		registry: reg,
	}
}

func (m *Metrics) IncPageViews() { m.PageViews.Inc() }

func (m *Metrics) ObserveThemeChange(theme string) { m.ThemeChanges.WithLabelValues(theme).Inc() }

func (m *Metrics) ObserveContact(outcome string) { m.ContactSubmissions.WithLabelValues(outcome).Inc() }

func (m *Metrics) IncActiveSectionLookups() { m.ActiveSectionLookups.Inc() }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
