package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	FeedRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "instaclone_feed_requests_total",
		Help: "Total feed page queries",
	})
	SearchRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "instaclone_search_requests_total",
		Help: "Total account search queries",
	})
	LikeToggles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "instaclone_like_toggles_total",
		Help: "Total like/unlike operations",
	}, []string{"action"})
	StoreWrites = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "instaclone_store_writes_total",
		Help: "Total document store writes",
	})
)

func init() {
	prometheus.MustRegister(FeedRequests, SearchRequests, LikeToggles, StoreWrites)
}

// IncLikeToggle 记录一次点赞或取消点赞
func IncLikeToggle(action string) { LikeToggles.WithLabelValues(action).Inc() }
