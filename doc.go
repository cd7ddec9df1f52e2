/*
Package bubble implements a bucketed index: a fixed-capacity array of
"buckets", each of which may own an AVL tree absorbing keys which overflow the
bucket's range.

Bubbles

A bubble of capacity N starts out as a plain append log. Inserted keys are
appended to the bucket array, in insertion order, until N keys have been
collected. The next insertion sorts the array once and the bubble becomes
saturated. From then on, the array of primary keys is searched by binary
search, and a key which is not a primary key itself is routed to the overflow
tree of the bucket preceding its insertion point:

	 -50    -20     0      20     50
	  |      |      |      |      |
	 { }    { }    { }   {22 30  { }
	                      35 36
	                      38 45}

Lookup, insertion and removal therefore take O(log N · log m) time, where m is
the size of the largest overflow tree.

	b, _ := bubble.New[int](5)
	b.Insert(-50, -20, 0, 20, 50)
	b.Insert(35, 30, 38)
	fmt.Println(b.Search(38)) // true

The index is designed to be used from a single goroutine. Clients using a
bubble from more than one goroutine have to serialize access themselves.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bubble

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// BubbleError is an error type for the bubble module
type BubbleError string

func (e BubbleError) Error() string {
	return string(e)
}

// ErrCapacityMismatch signals an attempt to copy a bubble into a bubble of
// different capacity.
const ErrCapacityMismatch = BubbleError("bubble: capacity mismatch")

// ErrIndexOutOfRange is flagged whenever a bucket position is not a valid
// index into the bucket array. Positional access panics with this error, as
// an invalid position is a programming error.
const ErrIndexOutOfRange = BubbleError("bubble: index out of range")

// ErrInvalidConfig is flagged whenever a bubble configuration is invalid.
const ErrInvalidConfig = BubbleError("bubble: invalid configuration")

// ErrInvariant is flagged by Check for a structurally broken bubble.
const ErrInvariant = BubbleError("bubble: invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
