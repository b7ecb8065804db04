// Package acmatch implements multi-pattern string search over UTF-8 text
// using the Aho-Corasick algorithm.
//
// acmatch builds a packed automaton from a fixed set of byte-encoded
// needles, each carrying an arbitrary payload, then scans input text in a
// single pass, invoking a caller-supplied reducer for every occurrence in
// the order occurrences end in the input. The packed representation (dense
// transition arrays plus a root ASCII jump table) is built once and is
// then immutable and safe to share across any number of concurrent
// scans — construction itself is not concurrency-safe.
//
// Basic usage:
//
//	builder := acmatch.NewBuilder[int]()
//	builder.AddPattern([]byte("he"), 1)
//	builder.AddPattern([]byte("she"), 2)
//	builder.AddPattern([]byte("his"), 3)
//	builder.AddPattern([]byte("hers"), 4)
//	automaton, err := builder.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	matches := acmatch.FindAll(automaton, acmatch.NewText([]byte("ushers")), acmatch.CaseSensitive)
//	for _, m := range matches {
//	    fmt.Println(m.EndIndex, m.Value)
//	}
//
// Callers who want to stop early, or who don't want an intermediate slice
// of matches, drive Run or RunLower directly with their own reducer:
//
//	count := acmatch.Run(automaton, acmatch.NewText(text), 0, func(acc int, m acmatch.Match[int]) acmatch.Next[int] {
//	    if acc+1 >= limit {
//	        return acmatch.Done(acc + 1)
//	    }
//	    return acmatch.Step(acc + 1)
//	})
//
// RunLower performs the same scan case-insensitively by folding each input
// code point to lowercase on the fly; the automaton must have been built
// from needles the caller already lowercased.
package acmatch
