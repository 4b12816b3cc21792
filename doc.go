/*
Package downsize rearranges the fields of JSON documents so that they
compress better with general-purpose byte-stream compressors such as gzip.

Every record's fields are regrouped by value type: numbers first, then
booleans, then nulls, then nested lists and records, then strings. Sibling
records in a document share field names, and putting fields of the same type
next to each other gives the compressor longer repeated runs to work with.
Only field order changes; values, nesting and list order are untouched, so
the optimized document has the same content as the original.

1. Optimizing

OptimizeJSON accepts JSON text or any Go value and returns optimized JSON
text:

	out, err := downsize.OptimizeJSON(`{"name": "widget", "id": 7, "active": true}`)
	if err != nil {
		// handle error
	}
	// out is {"id":7,"active":true,"name":"widget"}

Optimize does the same but hands the result back in the form the input had,
and Reorder works directly on the value.Value model.

2. Rebuilding

Rebuild parses optimized text back into Go values. Records are produced
either as map[string]any (MapShape) or as insertion-ordered maps
(RecordShape); lists always become []any:

	v, err := downsize.Rebuild(out, downsize.MapShape)

Individual fields can keep a different shape with PinShape, and numbers can
be kept as exact value.Number literals with UseNumber.

All operations guard against pathologically nested input; see MaxDepth.
*/
package downsize
