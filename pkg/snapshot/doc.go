// Package snapshot provides the JSON form of a solved layout.
//
// A [Snapshot] lists every element of a tree in pre-order with its parent
// and solved frame, followed by every constraint hosted inside the tree.
// It is what the CLI prints with --format json and what tests compare
// against when a layout should stay stable.
//
// # Format
//
//	{
//	  "root": "3f2a...",
//	  "elements": [
//	    {"id": "3f2a...", "name": "root", "frame": {"x": 0, "y": 0, "width": 320, "height": 200}},
//	    {"id": "9b1c...", "name": "card", "parent": "3f2a...", "frame": {...}}
//	  ],
//	  "constraints": [
//	    {"host": "3f2a...", "item": "9b1c...", "attr": "top", "relation": "==",
//	     "to_item": "3f2a...", "to_attr": "top", "multiplier": 1, "constant": 16, "priority": 1000}
//	  ]
//	}
//
// Elements that carry a UUID (tree nodes) use it as their ID; other
// elements are numbered in walk order.
package snapshot
