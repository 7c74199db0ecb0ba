// Package metrics define los contadores Prometheus del core de autorización.
// Viven en un package propio para evitar ciclos de import entre authz y los
// adapters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// AuthzRequests cuenta requests de autorización validados, por flujo.
	AuthzRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "authz_requests_total",
		Help: "Requests de autorización que pasaron validación, por flujo",
	}, []string{"flow"})

	// AuthzRejections cuenta requests rechazados en validación, por motivo.
	AuthzRejections = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "authz_rejections_total",
		Help: "Requests de autorización rechazados, por motivo",
	}, []string{"reason"})

	// AuthCodesIssued cuenta códigos de autorización emitidos.
	AuthCodesIssued = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auth_codes_issued_total",
		Help: "Códigos de autorización emitidos",
	})
)

// RegisterAuthz registra los contadores de autorización en el registry dado
// (o el default si es nil). Tolera doble registro.
func RegisterAuthz(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{AuthzRequests, AuthzRejections, AuthCodesIssued} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}
