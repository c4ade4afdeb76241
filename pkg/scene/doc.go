// Package scene holds a read-only snapshot of an isometric diagram.
//
// A [Scene] lists the nodes, groups and connectors placed on the tile grid.
// The geometry packages never depend on it; scenes exist so the command line,
// the HTTP API and tests have concrete diagrams to feed into [diagram] and
// [connector].
//
// # Files
//
// [ReadFile] loads a scene from TOML or JSON, chosen by extension:
//
//	name = "network"
//
//	[view]
//	zoom = 1.0
//
//	[[nodes]]
//	id = "router"
//	label = "Router"
//	position = { x = 0, y = 0 }
//
// Nodes, groups and connectors without an id are given a random UUID.
// [Scene.Validate] rejects duplicate ids and anchors that reference missing
// nodes.
//
// # Tiled Maps
//
// [ImportTiled] converts an isometric TMX map made with the Tiled editor into
// a scene: every non-empty cell becomes a node and every object group becomes
// a group of the tiles its objects sit on.
package scene
