package session

import "go.uber.org/fx"

// Module wires the draft scratch area and session manager.
var Module = fx.Options(
	fx.Provide(func() Scratch { return NewMemoryScratch() }),
	fx.Provide(NewManager),
)
