// Package loader registers and loads the HTTP features of the service.
//
// Each feature implements Feature. The Manager keeps them in registration
// order and LoadAll mounts the enabled ones on the fiber router:
//
//	mgr := loader.NewManager(log)
//	mgr.Register(inventory.NewFeature(...))
//	mgr.Register(history.NewFeature(...))
//	if err := mgr.LoadAll(app); err != nil { ... }
package loader
