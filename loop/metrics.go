package loop

import "github.com/prometheus/client_golang/prometheus"

var (
	frames = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "loop",
		Name:      "frames_total",
		Help:      "Frames run by the game loop.",
	})
	ticks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "loop",
		Name:      "ticks_total",
		Help:      "Ticks that moved the snake.",
	})
	foodEaten = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "loop",
		Name:      "food_eaten_total",
		Help:      "Food eaten across all games.",
	})
	gamesOver = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "loop",
		Name:      "games_over_total",
		Help:      "Games that ended in a collision.",
	})
)

func init() {
	prometheus.MustRegister(frames, ticks, foodEaten, gamesOver)
}
