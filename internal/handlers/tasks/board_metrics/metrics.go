package board_metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BoardUsersTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "board_users_total",
			Help: "Total number of registered users",
		},
	)

	BoardLoadsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "board_loads_total",
			Help: "Total number of posted loads",
		},
	)

	BoardOpenLoads = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "board_open_loads",
			Help: "Number of loads currently open for bidding",
		},
	)

	BoardBidsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "board_bids_total",
			Help: "Total number of placed bids",
		},
	)

	BoardPendingBids = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "board_pending_bids",
			Help: "Number of bids currently pending",
		},
	)
)
