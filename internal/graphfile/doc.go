// Package graphfile loads graphstore fixtures from HCL files.
//
// A graph file declares nodes, directed weighted edges and an optional
// default route:
//
//	node "a" { payload = "first" }
//	node "b" {}
//
//	edge "a" "b" {
//	  weight = 314
//	}
//
//	route {
//	  from = "a"
//	  to   = "b"
//	}
//
// Node ids follow declaration order. The payload attribute is optional and
// defaults to the node label; any primitive value is converted to a string.
// Edge weight defaults to 1.
package graphfile
