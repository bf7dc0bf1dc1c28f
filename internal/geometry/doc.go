// Package geometry defines the hole geometry data model consumed by the
// recognition tools, and loads geometry documents from disk.
//
// The types mirror what the upstream geometry engine delivers: each machined
// hole is an ordered sequence of wall segments (cone, cylinder, or flat)
// running from the entry face toward the bottom, plus through/threaded flags
// and a total axial length. Structurally identical holes arrive pre-clustered
// into groups; downstream classification examines a single representative per
// group and attaches the group size as an occurrence count.
//
// # Interchange format
//
// Documents are JSON files of the form:
//
//	{
//	  "units": "cm",
//	  "groups": [
//	    {
//	      "holes": [
//	        {
//	          "totalLength": 1.2,
//	          "isThrough": true,
//	          "isThreaded": false,
//	          "segments": [
//	            {"kind": "cylinder", "topDiameter": 0.6, "height": 1.2, "halfAngle": 0}
//	          ]
//	        }
//	      ]
//	    }
//	  ]
//	}
//
// All length values are in the document's declared internal unit ("cm" when
// absent); angles are radians. Conversion to user-facing units happens after
// classification, not here.
//
// # Immutability
//
// Segments, holes, and groups are read-only snapshots produced per invocation
// by the geometry engine. Nothing in this package mutates them after parsing,
// and callers must treat cached documents as immutable.
//
// # Thread safety
//
// DocumentCache is safe for concurrent use. The data types carry no internal
// synchronization and rely on the immutability convention above.
package geometry
