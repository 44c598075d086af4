package wikipedia

// Summary is the lead of an article.
type Summary struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
	URL     string `json:"url,omitempty"`
}

// queryResponse covers the parts of an action=query response (formatversion=2)
// used by the client.
type queryResponse struct {
	Error *APIError `json:"error,omitempty"`
	Query struct {
		SearchInfo struct {
			Suggestion string `json:"suggestion"`
		} `json:"searchinfo"`
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
		Pages []page `json:"pages"`
	} `json:"query"`
}

type page struct {
	Title     string            `json:"title"`
	Missing   bool              `json:"missing,omitempty"`
	Invalid   bool              `json:"invalid,omitempty"`
	FullURL   string            `json:"fullurl,omitempty"`
	PageProps map[string]string `json:"pageprops,omitempty"`
	Extract   string            `json:"extract,omitempty"`
	Links     []struct {
		NS    int    `json:"ns"`
		Title string `json:"title"`
	} `json:"links,omitempty"`
}

func (p page) isDisambiguation() bool {
	_, ok := p.PageProps["disambiguation"]
	return ok
}
