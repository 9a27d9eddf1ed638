/*
Package list implements an immutable persistent singly-linked list.

A list is either empty or a cell holding a value together with a reference to
another, previously constructed list. Prepending a value never touches the
original list; instead a new cell is created which points to it. Many lists may
therefore share a common suffix:

	base := list.Of(3, 4, 5)
	a := base.Prepend(2)     // (2 3 4 5)
	b := base.Prepend(7)     // (7 3 4 5), sharing (3 4 5) with a

Lists are values. The zero value is the empty list and is ready to use.
Suffixes are kept alive by the garbage collector as long as any list built on
top of them is reachable, so there is no lifetime contract for clients.

Queries which may not find a result (Front, Get, Tail, Skip, …) return a
maybe.Maybe instead of panicking.

Immutable lists are inherently concurrency-safe.

Tracing

Iterators trace every step at debug level, using tracing key 'plist.list'.
Traces are silent unless this key is configured for level Debug.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'plist.list'.
func tracer() tracing.Trace {
	return tracing.Select("plist.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
