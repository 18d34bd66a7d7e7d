// Package keyup wires an ordered set of key bindings to a shared input
// source for the lifetime of an owning scope.
//
// A caller registers bindings against a Source (usually a *Window fed by the
// terminal adapter). Each key-release event runs the action of the first
// binding whose key identifier equals the event key. Releasing the
// registration, directly or through the owning Scope, detaches the listener.
//
//	life := keyup.NewLifetime()
//	defer life.Close()
//
//	_, err := keyup.Use(life, window, []keyup.Binding{
//		{Key: "esc", Fn: closeModal},
//		{Key: "enter", Fn: submit},
//	})
package keyup
