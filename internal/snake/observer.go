package snake

// Observer receives the game's lifecycle notifications. Win and death are
// not pushed; hosts read them from StepResult or Snapshot.
type Observer interface {
	GameStarted()
	GameStopped()
}

// NopObserver ignores all notifications.
type NopObserver struct{}

func (NopObserver) GameStarted() {}
func (NopObserver) GameStopped() {}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnStart func()
	OnStop  func()
}

func (o ObserverFuncs) GameStarted() {
	if o.OnStart != nil {
		o.OnStart()
	}
}

func (o ObserverFuncs) GameStopped() {
	if o.OnStop != nil {
		o.OnStop()
	}
}
