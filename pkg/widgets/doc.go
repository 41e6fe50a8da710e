// Package widgets provides the descriptor types for every widget category.
//
// Descriptors are built with XxxOf constructors and refined with WithX
// methods. WithX methods return copies; they never mutate the receiver, so a
// descriptor can be reused as a template:
//
//	base := widgets.ButtonOf("Save", core.Emit(Save)).With(widgets.Fixed(40))
//	row := widgets.RowOf(
//	    base,
//	    base.With(widgets.Label("Save as")).WithTrigger(core.Emit(SaveAs)),
//	)
//
// Properties shared by every category (label, geometry, colors, fonts,
// alignment, visibility) are passed to With as [Prop] values. Category
// properties have their own WithX methods.
//
// # Categories
//
//   - [Box]: a plain labelled box, or any custom native class via [CustomOf]
//   - [Button]: push, toggle, check, radio, light, round and repeat buttons
//   - [Input]: single and multi line text entry with two-way binding
//   - [Output]: read-only text
//   - [Valuator]: dials, sliders, counters, rollers and scrollbars
//   - [Menu]: menu bars and choices; items are rebuilt when they change
//   - [Tree]: a tree of labelled items
//   - [Browser]: a line browser with columns and selection
//   - [Group]: containers (group, flex, pack, scroll, tabs, tile)
//
// # Reconciliation
//
// Each descriptor's Update applies only the properties that differ from the
// live widget. Containers reconcile their children by position: a child of
// the same category is patched in place, anything else is replaced. Item
// lists (menu, tree, browser) are cleared and rebuilt whenever their content
// changes.
//
// Triggers are read when the native callback fires, so a new closure in
// every view does not touch the native widget.
package widgets
