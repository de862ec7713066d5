package registry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registrations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mexdb_registrations_total",
	Help: "Number of ids allocated by Register",
}, []string{"registry"})

var registrationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mexdb_registration_failures_total",
	Help: "Number of Register calls that failed, typically because the id space is exhausted",
}, []string{"registry"})

var encryptions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mexdb_encryptions_total",
	Help: "Number of Encrypt calls",
}, []string{"registry"})

var seeded = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mexdb_seeded_total",
	Help: "Number of ids added directly through Seed",
}, []string{"registry"})

var resident = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "mexdb_ids",
	Help: "Number of ids currently held",
}, []string{"registry"})
