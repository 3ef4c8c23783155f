package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultOK       = "ok"
	ResultError    = "error"
	ResultNotFound = "not_found"
)

// Mail audience label values.
const (
	AudienceClient   = "client"
	AudienceInternal = "internal"
)

var (
	Submissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "onboarding_submissions_total",
		Help: "Intake requests by outcome",
	}, []string{"result"})

	BrandingUpdates = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "onboarding_branding_updates_total",
		Help: "Branding update requests by outcome",
	}, []string{"result"})

	EmailsSent = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "onboarding_emails_sent_total",
		Help: "Mail dispatch attempts by audience and outcome",
	}, []string{"audience", "result"})
)

// Register registers the collectors on reg (or the default registerer if nil).
// Already-registered collectors are ignored so tests can call it repeatedly.
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{Submissions, BrandingUpdates, EmailsSent} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return err
			}
		}
	}
	return nil
}
