// Package resolver answers a free-text question by trying a fixed chain of
// knowledge sources until one of them produces an answer.
//
// The default chain built by [NewDefault] is:
//
//  1. Wikipedia: the first two sentences of the best matching article.
//  2. Google Custom Search: the snippet of the first result.
//  3. A chat model: the completion text, returned as-is.
//
// Each step is a [Strategy] returning an [Outcome]. A failed outcome moves
// on to the next step; an error aborts resolution. The first answered
// outcome wins and nothing is merged or retried.
//
// Example:
//
//	r := resolver.NewDefault(cfg, wiki, google, groq)
//	answer, err := r.Resolve(ctx, "Who wrote Dune?")
//	if err != nil {
//	    return err
//	}
//	return resolver.Render(os.Stdout, answer)
package resolver
