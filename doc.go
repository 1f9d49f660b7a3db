// Package sapling is a small retained-mode GUI core for low-resolution,
// slow-flush displays: a 320x240 panel on an SPI bus, a scaled-up desktop
// window, or a terminal.
//
// Sapling provides the scene graph, dirty-rectangle invalidation, focus and
// tap routing, and a set of leaf views (labels, buttons, menus, toggles, text
// input, and a rich-text page view with history). Pixels are the host's
// business: the scene only talks to a [DrawingContext].
//
// # Quick start
//
//	scene := sapling.NewScene(sapling.NewRect(0, 0, 320, 240))
//	scene.AddView(sapling.NewPageView("page", scene.Screen(), page))
//	scene.AddView(sapling.NewMenu("main", []string{"Browser", "Settings", "close"}).Hide())
//	scene.SetFocused("page")
//
//	// once per frame
//	scene.Update(handle)           // scripted / injected input
//	scene.HandleEvent(ev, handle)  // real input, one event of each kind
//	scene.Render(ctx, theme)       // layout if due, draw if dirty
//
// The ebitenhost and termhost packages implement this loop for a desktop
// window and a terminal.
//
// # Views
//
// Every element is a [View]: one flat struct with a name, bounds, a
// visibility flag, an optional state payload, and three optional behavior
// slots (Layout, Draw, Input). The [Scene] owns all views by name. Parent and
// child relations, focus and draw order are all name lookups, never pointers
// between views. Read a view's state with [GetViewState].
//
// # Invalidation
//
// Any change that can alter pixels unions the affected bounds into the
// scene's single dirty rectangle. [DrawScene] only calls the Draw closures of
// visible views whose bounds touch that rectangle, and hosts flush only that
// region to the display.
//
// # Input
//
// Taps go to the topmost visible view under the pointer that has an Input
// closure, regardless of focus. Keys, scroll deltas and hardware clicks go to
// the focused view only. Input closures may return an [Action]; the scene
// tags it with the view's name and hands it to the host's [ActionHandler].
// The core never interprets actions.
//
// # Testing
//
// [LoadTestScript] reads a YAML (or JSON) script of taps, keys, scrolls and
// screenshots which [Scene.Update] replays one event per frame.
// [RecordingContext] records draw calls for assertions.
package sapling
