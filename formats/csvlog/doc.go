// SPDX-License-Identifier: EPL-2.0

// Package csvlog records a keying element stream as CSV.
//
// Each element becomes one row of two fields: the tone flag and the
// duration in whole milliseconds. Durations are rounded only at this
// boundary; the element stream itself keeps floating precision.
//
//	w := csvlog.NewWriter(file)
//	w.WriteHeader()
//	for each element {
//	    w.WriteElement(elem)
//	}
//	w.Flush()
//
// The output matches the historical cwgen CSV export:
//
//	On,Duration
//	true,100
//	false,300
package csvlog
