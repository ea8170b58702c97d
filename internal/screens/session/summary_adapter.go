package session

import (
	"github.com/abhisek/composition/internal/screen"
	"github.com/abhisek/composition/internal/screens/summary"
	sess "github.com/abhisek/composition/internal/session"
)

// newSummaryScreenAdapter builds the finished screen. Retry starts a fresh
// session at the same level.
func newSummaryScreenAdapter(deps Deps, res sess.Result) screen.Screen {
	return summary.New(res, func() screen.Screen {
		return New(deps, res.Level)
	})
}
