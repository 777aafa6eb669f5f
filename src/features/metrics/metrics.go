// Package metrics exposes Prometheus counters for the adapter's primary
// data paths and the background poll loop.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "soundbridge",
		Name:      "searches_total",
		Help:      "Search requests handled for the host media manager.",
	})

	PlaysTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "soundbridge",
		Name:      "plays_total",
		Help:      "Playback resolution requests handled.",
	})

	PlaylistFetchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "soundbridge",
		Name:      "playlist_fetches_total",
		Help:      "Playlist list and single-playlist fetches.",
	})

	PollTicksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "soundbridge",
		Name:      "poll_ticks_total",
		Help:      "Background playlist refresh ticks executed.",
	})

	ExternalErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "soundbridge",
		Name:      "external_errors_total",
		Help:      "Errors returned by the SoundCloud API.",
	})

	AuthorizationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "soundbridge",
		Name:      "authorizations_total",
		Help:      "OAuth callback outcomes by result.",
	}, []string{"result"})
)
