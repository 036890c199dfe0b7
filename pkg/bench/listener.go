package bench

import "github.com/IlikeChooros/go-minimax/pkg/minimax"

type ListenerLike[M minimax.MoveLike] interface {
	OnStart()
	OnFinishedGame(info VersusGameInfo[M])
	Summary(info VersusSummaryInfo)
}

// DefaultListener ignores every event.
type DefaultListener[M minimax.MoveLike] struct{}

func (DefaultListener[M]) OnStart()                         {}
func (DefaultListener[M]) OnFinishedGame(VersusGameInfo[M]) {}
func (DefaultListener[M]) Summary(VersusSummaryInfo)        {}
