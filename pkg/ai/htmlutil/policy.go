package htmlutil

import "github.com/microcosm-cc/bluemonday"

// The assistant prompts constrain the model to a small semantic HTML
// subset, but model output is still untrusted. Everything returned to
// the client goes through this policy: allowed elements survive bare
// (no attributes), anything else is stripped.
var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"p", "em", "strong", "b", "i",
		"ul", "ol", "li",
		"h1", "h2", "h3", "h4",
		"br", "section",
	)
	return p
}

// Sanitize reduces s to the allowed HTML subset.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}
