// SPDX-License-Identifier: MIT

// Package reduce simplifies a Morse complex by cancelling saddle/extremum
// pairs in order of increasing distance, up to a persistence threshold.
//
// Distance:
//
//	saddle–minimum: |highest value of the saddle − value of the minimum|
//	saddle–maximum: |highest value of the saddle − highest value of the maximum|
//
// Eligibility:
//
//	– only a connection of multiplicity exactly 1 can be cancelled; a
//	  double connection encircles a loop of the surface and is kept forever;
//	– with WithSalientPoints, a connection whose path touches three or more
//	  salient vertices is kept as well.
//
// Algorithm:
//
//  1. Deep-copy the input. The input complex is never modified.
//  2. Seed a Queue with every saddle whose closest eligible extremum lies
//     within τ.
//  3. Pop the closest saddle and recompute its closest eligible extremum
//     (earlier cancellations may have rewired it). Cancel if the refreshed
//     distance is not larger than the next queued distance; otherwise put
//     it back, as long as the refreshed distance is still within τ.
//  4. Stop when the queue is empty.
//
// The loop is sequential: every cancellation may rewire its neighbours.
// Independent thresholds can run concurrently through ReduceAll.
//
// Errors (sentinel):
//
//	– ErrNilComplex    if the complex or its mesh is nil.
//	– ErrBadThreshold  if τ is negative or NaN.
//	– morse.ErrLoopCancellation, morse.ErrEulerDrift, … bubble up from the
//	  splice and indicate an internal defect.
//
// Example usage:
//
//	out, err := reduce.Reduce(ctx, c, 0.05)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out.Counts())
package reduce
