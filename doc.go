/*
Package sortedset offers ordered sets over any type with a strict order.

Sets

A Set stores distinct values in ascending order. Values are distinct with
respect to the order of the set: two values a and b are the same element if
neither a < b nor b < a. Sets support membership tests, insertion and removal,
lower-bound search and bidirectional iteration.

	s := sortedset.From(5, 3, 8, 1)
	s.Insert(4)
	for v := range s.All() {
		fmt.Println(v) // 1 3 4 5 8
	}

Internally a set is backed by a balanced (2,4)-tree (see package btree), with
every value held in a leaf and inner nodes caching the minimum and maximum of
their subtrees. All leaves are at the same depth, so

	Operation     |   Set
	--------------+------------
	Insert        |   O(log n)
	Erase         |   O(log n)
	Find          |   O(log n)
	LowerBound    |   O(log n)
	Len           |   O(1)
	Iterate       |   O(n)

Sets are not safe for concurrent use. Iterators are invalidated by any
mutation of the set they were obtained from.

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
package sortedset

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer writes to trace with key 'sortedset'
func tracer() tracing.Trace {
	return tracing.Select("sortedset")
}

func must(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
