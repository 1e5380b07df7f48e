package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var imageListings = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "image_listings_total",
		Help: "Image folder listings by endpoint kind and outcome.",
	},
	[]string{"kind", "outcome"},
)
