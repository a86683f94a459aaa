package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	UsersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "users_created_total",
		Help: "Total users successfully signed up",
	})

	UsersDestroyed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "users_destroyed_total",
		Help: "Total users destroyed together with their dependents",
	})

	Authentications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "authentication_total",
		Help: "Total authentication attempts",
	}, []string{"result"})

	RelationshipsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "relationships_created_total",
		Help: "Total follow edges created",
	})

	RelationshipsDestroyed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "relationships_destroyed_total",
		Help: "Total follow edges removed by unfollow",
	})

	MicropostsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "microposts_created_total",
		Help: "Total microposts successfully posted",
	})
)

func init() {
	prometheus.MustRegister(UsersCreated)
	prometheus.MustRegister(UsersDestroyed)
	prometheus.MustRegister(Authentications)
	prometheus.MustRegister(RelationshipsCreated)
	prometheus.MustRegister(RelationshipsDestroyed)
	prometheus.MustRegister(MicropostsCreated)
}
