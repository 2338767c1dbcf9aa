// Package rejection counts, by exhaustive enumeration, the exact output
// distribution of a two-round Fiat-Shamir-with-aborts signing loop.
//
// Two loop variants are covered: the vanilla procedure, which resamples both
// response coordinates together whenever an attempt aborts, and the z-trick
// optimization, which resamples only the coordinate that failed its bound
// check. For every mask tuple and every challenge combination the package
// decides whether the attempt accepts and, if so, counts the number of
// complete random-oracle programmings consistent with that acceptance. A
// uniform total per accepted signature means the output distribution carries
// no information about the masks that produced it.
package rejection
